package main

import (
	"log"

	"github.com/joho/godotenv"

	"labelhub-backend/internal/config"
)

// loadConfig đọc .env (nếu có) rồi dùng chung config với cmd/api
func loadConfig() *config.Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[Config] No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Config] %v", err)
	}

	log.Printf("[Config] Redis: %s, Concurrency: %d, Stats refresh: %s",
		cfg.Redis.Host, cfg.Worker.Concurrency, cfg.Worker.StatsRefreshSpec)

	return cfg
}
