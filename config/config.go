package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the runtime settings read from the environment
type Config struct {
	Env      string
	LogLevel string

	Port    string
	BaseURL string // Base URL for self-referencing requests (e.g., "http://localhost:8080")

	SeedPath  string // Optional YAML catalog; the embedded sample catalog is used when empty
	StaticDir string
	CacheDir  string

	ChromePath      string
	ExportTimeout   time.Duration
	ShutdownTimeout time.Duration
}

// Load reads the configuration from environment variables, applying defaults
func Load() Config {
	port := strings.TrimPrefix(getEnv("PORT", "8080"), ":")

	cfg := Config{
		Env:             strings.ToLower(getEnv("ENV", "development")),
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", "info")),
		Port:            port,
		BaseURL:         strings.TrimRight(getEnv("BASE_URL", "http://localhost:"+port), "/"),
		SeedPath:        getEnv("CATALOG_SEED_PATH", ""),
		StaticDir:       getEnv("STATIC_DIR", "static"),
		CacheDir:        getEnv("CACHE_DIR", "cache/images"),
		ChromePath:      getEnv("CHROME_PATH", ""),
		ExportTimeout:   time.Duration(getEnvInt("EXPORT_TIMEOUT_SECONDS", 30)) * time.Second,
		ShutdownTimeout: time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
	}

	if cfg.ExportTimeout <= 0 {
		cfg.ExportTimeout = 30 * time.Second
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	return cfg
}

// IsProduction reports whether the service runs with ENV=production
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Addr returns the listen address; 0.0.0.0 accepts connections from all interfaces
func (c Config) Addr() string {
	return "0.0.0.0:" + c.Port
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
