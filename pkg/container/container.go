package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"labelhub-backend/internal/config"
	infraCache "labelhub-backend/internal/infrastructure/cache"
	"labelhub-backend/internal/infrastructure/database"
	"labelhub-backend/internal/infrastructure/queue"
	"labelhub-backend/internal/infrastructure/storage"
	pkgdb "labelhub-backend/pkg/database"
	"labelhub-backend/pkg/jwt"

	artistHandler "labelhub-backend/internal/domains/artist/handler"
	artistRepo "labelhub-backend/internal/domains/artist/repository"
	artistService "labelhub-backend/internal/domains/artist/service"
	dashboardHandler "labelhub-backend/internal/domains/dashboard/handler"
	dashboardRepo "labelhub-backend/internal/domains/dashboard/repository"
	dashboardService "labelhub-backend/internal/domains/dashboard/service"
	formValidationHandler "labelhub-backend/internal/domains/formvalidation/handler"
	formValidationService "labelhub-backend/internal/domains/formvalidation/service"
	labelHandler "labelhub-backend/internal/domains/label/handler"
	labelRepo "labelhub-backend/internal/domains/label/repository"
	labelService "labelhub-backend/internal/domains/label/service"
	releaseHandler "labelhub-backend/internal/domains/release/handler"
	releaseRepo "labelhub-backend/internal/domains/release/repository"
	releaseService "labelhub-backend/internal/domains/release/service"
	submissionHandler "labelhub-backend/internal/domains/submission/handler"
	submissionRepo "labelhub-backend/internal/domains/submission/repository"
	submissionService "labelhub-backend/internal/domains/submission/service"
	uploadHandler "labelhub-backend/internal/domains/upload/handler"
	uploadRepo "labelhub-backend/internal/domains/upload/repository"
	uploadService "labelhub-backend/internal/domains/upload/service"
	userHandler "labelhub-backend/internal/domains/user/handler"
	userRepo "labelhub-backend/internal/domains/user/repository"
	userService "labelhub-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa toàn bộ dependencies của API process.
// Thứ tự khởi tạo: Config -> Infrastructure -> Repositories -> Services -> Handlers
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      *infraCache.RedisCache
	Queue      *asynq.Client
	Storage    storage.ObjectStorage
	Media      storage.Media
	Tx         pkgdb.Transactor
	JWTManager *jwt.Manager
	Refresher  *queue.StatsRefresher

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	UserRepo       userRepo.Repository
	ArtistRepo     artistRepo.Repository
	LabelRepo      labelRepo.Repository
	ReleaseRepo    releaseRepo.Repository
	SubmissionRepo submissionRepo.Repository
	UploadRepo     uploadRepo.Repository
	DashboardRepo  dashboardRepo.Repository

	// ========================================
	// SERVICE LAYER
	// ========================================
	UserService           userService.Service
	ArtistService         artistService.Service
	LabelService          labelService.Service
	ReleaseService        releaseService.Service
	SubmissionService     submissionService.Service
	UploadService         uploadService.Service
	DashboardService      dashboardService.Service
	FormValidationService formValidationService.Service

	// ========================================
	// HANDLER LAYER
	// ========================================
	UserHandler           *userHandler.UserHandler
	ArtistHandler         *artistHandler.ArtistHandler
	LabelHandler          *labelHandler.LabelHandler
	ReleaseHandler        *releaseHandler.ReleaseHandler
	SubmissionHandler     *submissionHandler.SubmissionHandler
	UploadHandler         *uploadHandler.UploadHandler
	DashboardHandler      *dashboardHandler.DashboardHandler
	FormValidationHandler *formValidationHandler.FormValidationHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer tạo toàn bộ dependency graph cho cmd/api
func NewContainer(cfg *config.Config) (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{Config: cfg}

	// ========================================
	// STEP 1: DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db
	c.Tx = pkgdb.NewTransactor(db.Pool)
	log.Println("✅ Database connected")

	// ========================================
	// STEP 2: REDIS (cache + queue)
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	c.Cache = infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Cache.Connect(ctx); err != nil {
		// Redis không critical cho API: cache miss đọc thẳng database
		log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
	} else {
		log.Println("✅ Redis connected")
	}

	c.Queue = queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	c.Refresher = queue.NewStatsRefresher(c.Queue)

	// ========================================
	// STEP 3: OBJECT STORAGE
	// ========================================
	log.Println("🪣 Connecting to MinIO...")

	minioStorage, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = minioStorage
	c.Media = storage.NewMediaStore(
		c.Storage,
		storage.NewImageProcessor(cfg.Upload.MaxFileSize, cfg.Upload.CoverMinSize),
		cfg.Upload.MaxFileSize,
		cfg.Upload.AllowedTypes,
	)
	log.Println("✅ Object storage ready")

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn)

	// ========================================
	// STEP 4-6: REPOSITORIES -> SERVICES -> HANDLERS
	// ========================================
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.ArtistRepo = artistRepo.NewPostgresRepository(pool)
	c.LabelRepo = labelRepo.NewPostgresRepository(pool)
	c.ReleaseRepo = releaseRepo.NewPostgresRepository(pool)
	c.SubmissionRepo = submissionRepo.NewPostgresRepository(pool)
	c.UploadRepo = uploadRepo.NewPostgresRepository(pool)
	c.DashboardRepo = dashboardRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager, 0)
	c.ArtistService = artistService.NewArtistService(c.ArtistRepo, c.Cache)
	c.LabelService = labelService.NewLabelService(c.LabelRepo, c.Cache)
	c.ReleaseService = releaseService.NewReleaseService(c.ReleaseRepo, c.Media, c.Refresher)

	// Cross-domain: release-form ghi artists + releases + uploads trong một transaction
	c.SubmissionService = submissionService.NewSubmissionService(
		c.SubmissionRepo,
		c.ReleaseRepo,
		c.ArtistRepo,
		c.Tx,
		c.Media,
		c.Refresher,
	)

	c.UploadService = uploadService.NewUploadService(c.UploadRepo, c.Tx, c.Media, c.Config.Upload.MaxFiles)
	c.DashboardService = dashboardService.NewDashboardService(c.DashboardRepo, c.Cache)
	c.FormValidationService = formValidationService.NewFormValidationService(
		c.ArtistService,
		c.LabelService,
		c.ReleaseRepo,
		c.Cache,
	)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.ArtistHandler = artistHandler.NewArtistHandler(c.ArtistService)
	c.LabelHandler = labelHandler.NewLabelHandler(c.LabelService)
	c.ReleaseHandler = releaseHandler.NewReleaseHandler(c.ReleaseService)
	c.SubmissionHandler = submissionHandler.NewSubmissionHandler(c.SubmissionService)
	c.UploadHandler = uploadHandler.NewUploadHandler(c.UploadService)
	c.DashboardHandler = dashboardHandler.NewDashboardHandler(c.DashboardService)
	c.FormValidationHandler = formValidationHandler.NewFormValidationHandler(c.FormValidationService)
}

// ========================================
// HEALTH & CLEANUP
// ========================================

// Health trả về trạng thái từng dependency; "ok" hoặc message lỗi
func (c *Container) Health(ctx context.Context) map[string]string {
	status := map[string]string{"database": "ok", "redis": "ok"}
	if err := c.DB.HealthCheck(ctx); err != nil {
		status["database"] = err.Error()
	}
	if err := c.Cache.Ping(ctx); err != nil {
		status["redis"] = err.Error()
	}
	return status
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			log.Printf("⚠️  Failed to close queue client: %v", err)
		}
	}

	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			log.Printf("⚠️  Failed to close Redis: %v", err)
		} else {
			log.Println("✅ Redis connections closed")
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}

	log.Println("✅ Container cleanup completed")
}
