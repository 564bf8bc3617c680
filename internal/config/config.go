package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/wordbin/wordbin/internal/logger"
)

type Config struct {
	Addr              string
	DBPath            string
	LogLevel          string
	ImportWorkerCount int
	ImportQueueSize   int
	DueItemsLimit     int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:              envOr("ADDR", ":8080"),
		DBPath:            envOr("DB_PATH", "file:wordbin.db"),
		LogLevel:          envOr("LOG_LEVEL", "INFO"),
		ImportWorkerCount: envIntOr("IMPORT_WORKER_COUNT", 2),
		ImportQueueSize:   envIntOr("IMPORT_QUEUE_SIZE", 32),
		DueItemsLimit:     envIntOr("DUE_ITEMS_LIMIT", 20),
	}
}

// Validate reports every configuration problem at once.
func (c Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, fmt.Errorf("ADDR cannot be empty"))
	}
	if c.DBPath == "" {
		errs = append(errs, fmt.Errorf("DB_PATH cannot be empty"))
	}
	switch c.LogLevel {
	case "DEBUG", "INFO", "WARN", "ERROR", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR"))
	}
	if c.ImportWorkerCount <= 0 {
		errs = append(errs, fmt.Errorf("IMPORT_WORKER_COUNT must be positive"))
	}
	if c.ImportQueueSize <= 0 {
		errs = append(errs, fmt.Errorf("IMPORT_QUEUE_SIZE must be positive"))
	}
	if c.DueItemsLimit <= 0 {
		errs = append(errs, fmt.Errorf("DUE_ITEMS_LIMIT must be positive"))
	}
	return errors.Join(errs...)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		logger.Warn("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
