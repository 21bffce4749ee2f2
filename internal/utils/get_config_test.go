package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	t.Run("missing file uses defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "1234", cfg.Port)
		assert.Equal(t, "postgres", cfg.DBDriver)
		assert.Equal(t, "RECIPE-SHARE", cfg.JWTIssuer)
		assert.False(t, cfg.AuthEnabled)
	})

	t.Run("yaml values", func(t *testing.T) {
		path := writeConfig(t, "PORT: \"8080\"\nDB_DRIVER: sqlite\nRATE_LIMIT_MAX: 5\nAUTH_ENABLED: true\n")
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "sqlite", cfg.DBDriver)
		assert.Equal(t, 5, cfg.RateLimitMax)
		assert.True(t, cfg.AuthEnabled)
		assert.Equal(t, "UTC", cfg.DBTimeZone)
	})

	t.Run("env overrides yaml", func(t *testing.T) {
		path := writeConfig(t, "PORT: \"8080\"\n")
		t.Setenv("PORT", "9090")
		t.Setenv("RATE_LIMIT_MAX", "12")
		t.Setenv("AUTH_ENABLED", "true")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, 12, cfg.RateLimitMax)
		assert.True(t, cfg.AuthEnabled)
	})

	t.Run("bad env value", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_MAX", "lots")
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := writeConfig(t, "PORT: [\n")
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}
