package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"labelhub-backend/internal/shared/middleware"
	"labelhub-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = 32 << 20

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
	)

	auth := middleware.AuthMiddleware(c.JWTManager)

	router.GET("/health", healthCheckHandler(c))

	setupAuthRoutes(router, c, auth)
	setupUserRoutes(router, c, auth)
	setupArtistRoutes(router, c, auth)
	setupLabelRoutes(router, c, auth)
	setupReleaseRoutes(router, c, auth)
	setupReleaseFormRoutes(router, c, auth)
	setupUploadRoutes(router, c, auth)
	setupDashboardRoutes(router, c, auth)
	setupFormValidationRoutes(router, c)

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(r *gin.Engine, c *container.Container, auth gin.HandlerFunc) {
	g := r.Group("/auth")
	{
		g.POST("/register", c.UserHandler.Register)
		g.POST("/login", c.UserHandler.Login)
		g.GET("/profile", auth, c.UserHandler.GetProfile)
		g.PUT("/profile", auth, c.UserHandler.UpdateProfile)
	}
}

// ========================================
// USER ROUTES (admin)
// ========================================
func setupUserRoutes(r *gin.Engine, c *container.Container, auth gin.HandlerFunc) {
	g := r.Group("/user", auth, middleware.AdminOnly())
	{
		g.GET("", c.UserHandler.ListUsers)
		g.POST("", c.UserHandler.CreateUser)
		g.GET("/:id", c.UserHandler.GetUser)
		g.PUT("/:id", c.UserHandler.UpdateUser)
		g.PATCH("/:id/password", c.UserHandler.ChangePassword)
		g.PATCH("/:id/deactivate", c.UserHandler.Deactivate)
		g.DELETE("/:id", c.UserHandler.DeleteUser)
	}
}

// ========================================
// ARTIST ROUTES
// ========================================
func setupArtistRoutes(r *gin.Engine, c *container.Container, auth gin.HandlerFunc) {
	g := r.Group("/artist", auth)
	{
		g.GET("", c.ArtistHandler.List)
		g.GET("/:id", c.ArtistHandler.Get)
		g.POST("", middleware.StaffOnly(), c.ArtistHandler.Create)
		g.PUT("/:id", middleware.StaffOnly(), c.ArtistHandler.Update)
		g.DELETE("/:id", middleware.AdminOnly(), c.ArtistHandler.Delete)
	}
}

// ========================================
// LABEL ROUTES
// ========================================
func setupLabelRoutes(r *gin.Engine, c *container.Container, auth gin.HandlerFunc) {
	g := r.Group("/label", auth)
	{
		g.GET("", c.LabelHandler.List)
		g.GET("/:id", c.LabelHandler.Get)
		g.POST("", middleware.StaffOnly(), c.LabelHandler.Create)
		g.PUT("/:id", middleware.StaffOnly(), c.LabelHandler.Update)
		g.DELETE("/:id", middleware.AdminOnly(), c.LabelHandler.Delete)
	}
}

// ========================================
// RELEASE ROUTES
// ========================================
func setupReleaseRoutes(r *gin.Engine, c *container.Container, auth gin.HandlerFunc) {
	g := r.Group("/releases", auth)
	{
		g.GET("", c.ReleaseHandler.List)
		g.GET("/export", middleware.StaffOnly(), c.ReleaseHandler.Export)
		g.GET("/:id", c.ReleaseHandler.Get)
		g.POST("", middleware.StaffOnly(), c.ReleaseHandler.Create)
		g.PUT("/:id", middleware.StaffOnly(), c.ReleaseHandler.Update)
		g.PATCH("/:id/status", middleware.StaffOnly(), c.ReleaseHandler.UpdateStatus)
		g.DELETE("/:id", middleware.AdminOnly(), c.ReleaseHandler.Delete)
	}
}

// ========================================
// RELEASE FORM ROUTES
// ========================================
func setupReleaseFormRoutes(r *gin.Engine, c *container.Container, auth gin.HandlerFunc) {
	g := r.Group("/release-form", auth)
	{
		g.POST("/create", c.SubmissionHandler.Create)
		g.GET("/submission/:id", c.SubmissionHandler.Get)
		g.GET("/my-submissions", c.SubmissionHandler.MySubmissions)
		g.GET("/all-submissions", middleware.StaffOnly(), c.SubmissionHandler.AllSubmissions)
		g.PATCH("/submission/:id/status", middleware.StaffOnly(), c.SubmissionHandler.UpdateStatus)
		g.GET("/statistics", middleware.StaffOnly(), c.SubmissionHandler.Statistics)
	}
}

// ========================================
// UPLOAD ROUTES
// ========================================
func setupUploadRoutes(r *gin.Engine, c *container.Container, auth gin.HandlerFunc) {
	g := r.Group("/uploads", auth)
	{
		g.POST("/single", c.UploadHandler.Single)
		g.POST("/multiple", c.UploadHandler.Multiple)
		g.GET("/my-uploads", c.UploadHandler.MyUploads)
		g.DELETE("/:id", c.UploadHandler.Delete)
	}
}

// ========================================
// DASHBOARD ROUTES
// ========================================
func setupDashboardRoutes(r *gin.Engine, c *container.Container, auth gin.HandlerFunc) {
	g := r.Group("/api/dashboard", auth)
	{
		g.GET("/stats", c.DashboardHandler.Stats)
		g.GET("/activity", c.DashboardHandler.Activity)
		g.GET("/recent-releases", c.DashboardHandler.RecentReleases)
	}
}

// ========================================
// FORM VALIDATION ROUTES (public)
// ========================================
func setupFormValidationRoutes(r *gin.Engine, c *container.Container) {
	g := r.Group("/form-validation")
	{
		g.POST("/validate-upc", c.FormValidationHandler.ValidateUPC)
		g.GET("/validate-upc", c.FormValidationHandler.ValidateUPC)
		g.GET("/artists", c.FormValidationHandler.Artists)
		g.GET("/labels", c.FormValidationHandler.Labels)
		g.GET("/genres", c.FormValidationHandler.Genres)
		g.GET("/languages", c.FormValidationHandler.Languages)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 5*time.Second)
		defer cancel()

		services := c.Health(checkCtx)
		status, code := "healthy", http.StatusOK
		if services["database"] != "ok" {
			status, code = "unhealthy", http.StatusServiceUnavailable
		} else if services["redis"] != "ok" {
			status = "degraded"
		}

		ctx.JSON(code, gin.H{
			"status":    status,
			"version":   c.Config.App.Version,
			"timestamp": time.Now().UTC(),
			"services":  services,
		})
	}
}
