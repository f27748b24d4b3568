package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/DukeRupert/pagelinks/internal/domain"
)

type Config struct {
	Env      string
	LogLevel string

	// Pagination defaults, overridable per invocation
	Limit    int // Items per page
	MaxItems int // Page links shown around the current page
}

func NewConfig() (*Config, error) {
	const op = "Config.New"

	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		Limit:    getEnvInt("PAGINATION_LIMIT", 10),
		MaxItems: getEnvInt("PAGINATION_MAX_ITEMS", 10),
	}

	if cfg.Limit <= 0 {
		return nil, domain.Invalid(op, fmt.Sprintf("PAGINATION_LIMIT must be positive, got: %d", cfg.Limit))
	}
	if cfg.MaxItems < 0 {
		return nil, domain.Invalid(op, fmt.Sprintf("PAGINATION_MAX_ITEMS must not be negative, got: %d", cfg.MaxItems))
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
