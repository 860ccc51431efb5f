package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnvVars(t *testing.T) {
	t.Helper()
	vars := []string{
		"PORT", "LOG_LEVEL", "LOG_FORMAT", "SERVICE_NAME", "VERSION",
		"ENVIRONMENT", "CONTENT_DIR", "SCHEMA_DIR", "VALIDATE_CONTENT",
		"MAX_SEARCH_RESULTS", "SEARCH_SNIPPET_LENGTH",
		"CACHE_ENABLED", "CACHE_SIZE", "CACHE_TTL", "DEFAULT_LANGUAGE",
	}
	for _, v := range vars {
		// t.Setenv registers the restore; Unsetenv removes the variable
		// so Load sees it as absent rather than empty.
		t.Setenv(v, "")
		_ = os.Unsetenv(v)
	}
}

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "content", cfg.ContentDir)
		assert.Equal(t, 100, cfg.MaxSearchResults)
		assert.Equal(t, 150, cfg.SnippetLength)
		assert.False(t, cfg.CacheEnabled)
		assert.Equal(t, "en", cfg.DefaultLanguage)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv("PORT", "3000")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "prod")
		t.Setenv("CONTENT_DIR", "/srv/fibula/content")
		t.Setenv("MAX_SEARCH_RESULTS", "25")
		t.Setenv("SEARCH_SNIPPET_LENGTH", "80")
		t.Setenv("CACHE_ENABLED", "true")
		t.Setenv("CACHE_TTL", "2m")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "prod", cfg.Environment)
		assert.Equal(t, "/srv/fibula/content", cfg.ContentDir)
		assert.Equal(t, 25, cfg.MaxSearchResults)
		assert.Equal(t, 80, cfg.SnippetLength)
		assert.True(t, cfg.CacheEnabled)
		assert.Equal(t, 2*time.Minute, cfg.CacheTTL)
	})

	t.Run("rejects invalid port", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "not-a-port")

		_, err := Load()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "PORT")
	})

	t.Run("rejects non-positive search cap", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("MAX_SEARCH_RESULTS", "0")

		_, err := Load()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "MAX_SEARCH_RESULTS")
	})

	t.Run("rejects invalid cache TTL", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("CACHE_TTL", "soon")

		_, err := Load()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "CACHE_TTL")
	})
}

func TestContentFile(t *testing.T) {
	cfg := &Config{ContentDir: "content", SchemaDir: "configs/schemas"}

	assert.Equal(t, "content/weapons.json", cfg.ContentFile("weapons.json"))
	assert.Equal(t, "configs/schemas/weapons.schema.json", cfg.SchemaFile("weapons.schema.json"))
}
