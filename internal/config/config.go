package config

import (
	"fmt"
	"os"
)

const (
	DriverPostgres = "postgres"
	DriverFile     = "file"
	DriverMemory   = "memory"
)

type Config struct {
	Port        string
	Environment string

	// Persistence backend, selected once at startup.
	StorageDriver string
	StorageFile   string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	// Optional; enables idempotent replay of email dispatches when set.
	RedisAddr string

	// Outbound email workflow endpoint (n8n webhook).
	WebhookURL string

	// Bundled UI build dir; SPA fallback is disabled when empty.
	StaticDir string
}

func Load() (Config, error) {
	cfg := Config{
		Port:          getenv("PORT", "5000"),
		Environment:   getenv("APP_ENV", "development"),
		StorageDriver: getenv("STORAGE_DRIVER", DriverMemory),
		StorageFile:   getenv("STORAGE_FILE", "data/employees.json"),
		DBHost:        os.Getenv("DB_HOST"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBSSLMode:     getenv("DB_SSLMODE", "disable"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		WebhookURL:    getenv("N8N_WEBHOOK_URL", "https://maxwell-rubert.app.n8n.cloud/webhook/send-email"),
		StaticDir:     os.Getenv("STATIC_DIR"),
	}

	switch cfg.StorageDriver {
	case DriverPostgres:
		if cfg.DBHost == "" || cfg.DBName == "" {
			return Config{}, fmt.Errorf("DB_HOST and DB_NAME required for storage driver %q", DriverPostgres)
		}
	case DriverFile, DriverMemory:
	default:
		return Config{}, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
