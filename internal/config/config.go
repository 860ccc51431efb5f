package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string

	// Content settings
	ContentDir      string
	SchemaDir       string
	ValidateContent bool

	// Search settings
	MaxSearchResults int
	SnippetLength    int

	// Catalog cache settings
	CacheEnabled bool
	CacheSize    int
	CacheTTL     time.Duration

	// Proxies whose X-Forwarded-For header is trusted
	TrustedProxies []string

	// Declared for future multi-language content; currently unused
	DefaultLanguage string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
		ServiceName:     getEnv("SERVICE_NAME", "fibulopedia"),
		Version:         getEnv("VERSION", "dev"),
		Environment:     getEnv("ENVIRONMENT", "dev"),
		ContentDir:      getEnv("CONTENT_DIR", DefaultContentDir),
		SchemaDir:       getEnv("SCHEMA_DIR", DefaultSchemaDir),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),
		TrustedProxies:  getEnvList("TRUSTED_PROXIES"),
	}

	var err error
	if cfg.Port, err = getEnvInt("PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.MaxSearchResults, err = getEnvInt("MAX_SEARCH_RESULTS", 100); err != nil {
		return nil, err
	}
	if cfg.SnippetLength, err = getEnvInt("SEARCH_SNIPPET_LENGTH", 150); err != nil {
		return nil, err
	}
	if cfg.CacheSize, err = getEnvInt("CACHE_SIZE", 64); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = getEnvDuration("CACHE_TTL", 30*time.Second); err != nil {
		return nil, err
	}
	cfg.CacheEnabled = getEnvBool("CACHE_ENABLED", false)
	cfg.ValidateContent = getEnvBool("VALIDATE_CONTENT", true)

	if cfg.MaxSearchResults <= 0 {
		return nil, fmt.Errorf("MAX_SEARCH_RESULTS must be positive, got %d", cfg.MaxSearchResults)
	}
	if cfg.SnippetLength <= 0 {
		return nil, fmt.Errorf("SEARCH_SNIPPET_LENGTH must be positive, got %d", cfg.SnippetLength)
	}

	return cfg, nil
}

// ContentFile returns the path of a content file inside the content directory
func (c *Config) ContentFile(name string) string {
	return filepath.Join(c.ContentDir, name)
}

// SchemaFile returns the path of a schema file inside the schema directory
func (c *Config) SchemaFile(name string) string {
	return filepath.Join(c.SchemaDir, name)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

// getEnvList splits a comma-separated environment variable into a slice,
// dropping empty entries
func getEnvList(key string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return d, nil
}
