package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Yalanday/test-selsup/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ENV", "LOG_LEVEL", "PORT", "BASE_URL", "CATALOG_SEED_PATH", "STATIC_DIR", "CACHE_DIR", "CHROME_PATH", "EXPORT_TIMEOUT_SECONDS", "SHUTDOWN_TIMEOUT_SECONDS"} {
		t.Setenv(key, "")
	}

	cfg := config.Load()
	require.Equal(t, "development", cfg.Env)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "http://localhost:8080", cfg.BaseURL)
	require.Equal(t, "", cfg.SeedPath)
	require.Equal(t, "static", cfg.StaticDir)
	require.Equal(t, "cache/images", cfg.CacheDir)
	require.Equal(t, 30*time.Second, cfg.ExportTimeout)
	require.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	require.Equal(t, "0.0.0.0:8080", cfg.Addr())
	require.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV", "Production")
	t.Setenv("PORT", ":9090")
	t.Setenv("BASE_URL", "http://catalog.local/")
	t.Setenv("CATALOG_SEED_PATH", "/tmp/catalog.yaml")
	t.Setenv("EXPORT_TIMEOUT_SECONDS", "-5")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "abc")

	cfg := config.Load()
	require.True(t, cfg.IsProduction())
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "http://catalog.local", cfg.BaseURL)
	require.Equal(t, "/tmp/catalog.yaml", cfg.SeedPath)
	require.Equal(t, 30*time.Second, cfg.ExportTimeout)
	require.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}
