package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	MinIO    MinIOConfig
	Upload   UploadConfig
	CORS     CORSConfig
	Worker   WorkerConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production, test
	Port        string
	Version     string
}

type DatabaseConfig struct {
	// URL takes precedence over the individual fields when set
	URL      string
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret    string
	ExpiresIn time.Duration
}

type MinIOConfig struct {
	Endpoint  string // localhost:9000
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string // base URL used to build file URLs; empty = endpoint
}

type UploadConfig struct {
	MaxFileSize  int64 // bytes
	MaxFiles     int
	AllowedTypes []string
	CoverMinSize int // 0 = không kiểm tra kích thước cover art
}

type WorkerConfig struct {
	Concurrency      int
	StatsRefreshSpec string // cron spec hoặc "@every 5m"
	HealthPort       string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	expiresIn, err := ParseExpiry(getEnv("JWT_EXPIRES_IN", "7d"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRES_IN: %w", err)
	}

	port := getEnv("APP_PORT", "")
	if port == "" {
		port = getEnv("PORT", "5000")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Label Back-office API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        port,
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Database: DatabaseConfig{
			URL:      getEnv("DATABASE_URL", ""),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "labelhub"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "labelhub"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:    getEnv("JWT_SECRET", defaultJWTSecret),
			ExpiresIn: expiresIn,
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "labelhub"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			PublicURL: getEnv("MINIO_PUBLIC_URL", ""),
		},
		Upload: UploadConfig{
			MaxFileSize: int64(getEnvInt("UPLOAD_MAX_SIZE_MB", 100)) * 1024 * 1024,
			MaxFiles:    getEnvInt("UPLOAD_MAX_FILES", 5),
			AllowedTypes: getEnvList("UPLOAD_ALLOWED_TYPES", []string{
				"image/", "audio/", "application/pdf", "application/zip",
			}),
			CoverMinSize: getEnvInt("UPLOAD_COVER_MIN_SIZE", 0),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{
				"http://localhost:3000", "http://localhost:5173",
			}),
		},
		Worker: WorkerConfig{
			Concurrency:      getEnvInt("WORKER_CONCURRENCY", 5),
			StatsRefreshSpec: getEnv("STATS_REFRESH_SPEC", "@every 5m"),
			HealthPort:       getEnv("WORKER_HEALTH_PORT", "9999"),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.JWT.Secret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Database.URL == "" && c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD or DATABASE_URL must be set in production")
		}
	}
	if c.Upload.MaxFiles <= 0 {
		return fmt.Errorf("UPLOAD_MAX_FILES must be positive")
	}
	return nil
}

// ParseExpiry accepts Go durations ("15m", "24h") plus a day suffix ("7d")
func ParseExpiry(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil {
			return 0, err
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	return time.ParseDuration(s)
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
