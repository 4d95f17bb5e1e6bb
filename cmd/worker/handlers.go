package main

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"labelhub-backend/internal/config"
	dashboardRepo "labelhub-backend/internal/domains/dashboard/repository"
	dashboardService "labelhub-backend/internal/domains/dashboard/service"
	infraCache "labelhub-backend/internal/infrastructure/cache"
	"labelhub-backend/internal/infrastructure/database"
	"labelhub-backend/internal/infrastructure/queue/handlers"
	"labelhub-backend/internal/shared"
)

// workerDeps: worker chỉ cần database + Redis cache (không cần MinIO)
type workerDeps struct {
	db    *database.PostgresDB
	cache *infraCache.RedisCache
}

func newWorkerDeps(cfg *config.Config) (*workerDeps, error) {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("load database config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return &workerDeps{
		db:    db,
		cache: infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB),
	}, nil
}

func (d *workerDeps) Close() {
	_ = d.cache.Close()
	d.db.Close()
}

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	refreshStats func(ctx context.Context, t *asynq.Task) error
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(deps *workerDeps) *HandlerRegistry {
	dashboard := dashboardService.NewDashboardService(
		dashboardRepo.NewPostgresRepository(deps.db.Pool),
		deps.cache,
	)

	return &HandlerRegistry{
		refreshStats: handlers.RefreshStatsHandler(dashboard),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeRefreshDashboardStats, h.refreshStats)
}
