// cmd/worker/startup.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"labelhub-backend/internal/config"
)

// HealthChecker performs startup health checks
type HealthChecker struct {
	deps *workerDeps
}

// startServices performs health checks and starts the health endpoint
func startServices(cfg *config.Config, deps *workerDeps) error {
	log.Println("============================================")
	log.Println("🚀 Label Worker Starting...")
	log.Println("============================================")

	checker := &HealthChecker{deps: deps}
	if err := checker.checkAll(); err != nil {
		log.Printf("❌ Health check failed: %v\n", err)
		return err
	}

	go startHealthCheckServer(cfg.Worker.HealthPort, checker)

	return nil
}

// checkAll runs all health checks
func (h *HealthChecker) checkAll() error {
	checks := []struct {
		name string
		fn   func() error
	}{
		{"Redis Connection", h.checkRedis},
		{"Database Connection", h.checkDatabase},
	}

	for _, check := range checks {
		log.Printf("⏳ Checking %s...\n", check.name)
		if err := check.fn(); err != nil {
			log.Printf("❌ %s: %v\n", check.name, err)
			return fmt.Errorf("%s failed: %w", check.name, err)
		}
		log.Printf("✓ %s: OK\n", check.name)
	}

	return nil
}

func (h *HealthChecker) checkRedis() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return h.deps.cache.Ping(ctx)
}

func (h *HealthChecker) checkDatabase() error {
	return h.deps.db.HealthCheck(context.Background())
}

// startHealthCheckServer starts HTTP server for health checks
func startHealthCheckServer(port string, checker *HealthChecker) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := checker.checkRedis(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"DOWN","service":"labelhub-worker"}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":"UP","service":"labelhub-worker"}`))
	})
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"READY"}`))
	})

	log.Printf("[Health] Starting health check server on :%s", port)
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Printf("[Health] Failed to start: %v\n", err)
	}
}
