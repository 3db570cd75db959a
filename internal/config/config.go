package config

import (
	"os"
	"strconv"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Redis
	RedisURL string

	// Catalog
	// Path to an operator-supplied catalog JSON; empty means the embedded
	// catalog is used.
	CatalogPath string

	// Pagination
	DefaultPageSize int
	MaxPageSize     int

	// Storefront settings
	DefaultCurrency string
}

func Load() *Config {
	defaultPageSize, _ := strconv.Atoi(getEnv("DEFAULT_PAGE_SIZE", "20"))
	maxPageSize, _ := strconv.Atoi(getEnv("MAX_PAGE_SIZE", "100"))

	return &Config{
		// Server
		Port:        getEnv("PORT", "8088"),
		Environment: getEnv("ENVIRONMENT", "development"),

		// Redis
		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),

		// Catalog
		CatalogPath: getEnv("CATALOG_PATH", ""),

		// Pagination
		DefaultPageSize: defaultPageSize,
		MaxPageSize:     maxPageSize,

		// Storefront settings
		DefaultCurrency: getEnv("DEFAULT_CURRENCY", "INR"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
