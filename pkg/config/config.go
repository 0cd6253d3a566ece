package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort int

	// CatalogURL points at the external products.json resource. Empty
	// means no source is configured; the built-in catalog is used.
	CatalogURL     string
	CatalogTimeout time.Duration

	// StorePath is the sqlite file backing the local cart/wishlist slots.
	StorePath string
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppEnv:         getEnv("APP_ENV", "dev"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		HTTPPort:       getEnvInt("HTTP_PORT", 8080),
		CatalogURL:     getEnv("CATALOG_URL", ""),
		CatalogTimeout: getEnvDuration("CATALOG_TIMEOUT", 10*time.Second),
		StorePath:      getEnv("STORE_PATH", "storefront.db"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}

	return d
}
