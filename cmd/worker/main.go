// cmd/worker/main.go
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"labelhub-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg := loadConfig()
	logger.Init(cfg.App.Environment)

	deps, err := newWorkerDeps(cfg)
	if err != nil {
		log.Fatalf("[Worker] Failed to initialize: %v", err)
	}
	defer deps.Close()

	// Initialize handlers
	handlers := initializeHandlers(deps)

	// Setup Asynq server
	srv := setupAsynqServer(cfg, handlers)

	// Setup scheduler
	scheduler := setupScheduler(cfg)

	// Perform health checks and log startup
	if err := startServices(cfg, deps); err != nil {
		log.Fatalf("[Startup] Health check failed: %v", err)
	}

	// Wait for shutdown signal
	waitForShutdown(srv, scheduler)
}

func waitForShutdown(srv *asynqServer, scheduler *asynqScheduler) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("[Shutdown] Gracefully stopping...")
	scheduler.Shutdown()
	srv.Shutdown()
	log.Println("[Shutdown] ✓ Stopped")
}
