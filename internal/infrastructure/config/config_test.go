package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacetraders-dashboard/internal/infrastructure/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_DefaultsWithTokenFromEnv(t *testing.T) {
	// Arrange
	t.Setenv("ST_API_TOKEN", "agent-token")

	// Act
	cfg, err := config.LoadConfig("")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "agent-token", cfg.API.Token)
	assert.Equal(t, "https://api.spacetraders.io/v2", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 20, cfg.Cache.PageSize)
	assert.Equal(t, "0.0.0.0:3001", cfg.Server.Address)
	assert.Equal(t, "public", cfg.Server.StaticDir)
	assert.Equal(t, uint32(5), cfg.API.CircuitBreaker.MaxFailures)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadConfig_FileWithEnvOverride(t *testing.T) {
	path := writeConfig(t, `
api:
  token: file-token
  rate_limit:
    requests: 3
cache:
  ttl: 2m
  page_size: 10
server:
  address: 127.0.0.1:8080
metrics:
  enabled: true
logging:
  format: console
`)
	t.Setenv("ST_API_TOKEN", "")
	t.Setenv("ST_CACHE_TTL", "90s")

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "file-token", cfg.API.Token)
	assert.Equal(t, 3, cfg.API.RateLimit.Requests)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
	assert.Equal(t, 10, cfg.Cache.PageSize)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Address)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadConfig_MissingToken(t *testing.T) {
	t.Setenv("ST_API_TOKEN", "")

	_, err := config.LoadConfig("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "api.token")
}

func TestLoadConfig_MissingFileIsAnError(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}

func TestValidateConfig_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		key    string
	}{
		{"page size above api max", func(c *config.Config) { c.Cache.PageSize = 50 }, "cache.page_size"},
		{"unknown log level", func(c *config.Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"spinning janitor", func(c *config.Config) { c.Cache.SweepInterval = 10 * time.Millisecond }, "sweep_interval"},
		{"relative metrics path", func(c *config.Config) { c.Metrics.Path = "metrics" }, "metrics.path"},
		{"bad base url", func(c *config.Config) { c.API.BaseURL = "not a url" }, "api.base_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{API: config.APIConfig{Token: "t"}}
			config.SetDefaults(cfg)
			tt.mutate(cfg)

			err := config.ValidateConfig(cfg)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestValidateConfig_RedactsToken(t *testing.T) {
	cfg := &config.Config{API: config.APIConfig{Token: "secret-token"}}
	config.SetDefaults(cfg)
	cfg.API.BaseURL = "::"

	err := config.ValidateConfig(cfg)

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret-token")
}

func TestLoadConfig_RetryDefaults(t *testing.T) {
	// Arrange
	t.Setenv("ST_API_TOKEN", "agent-token")

	// Act
	cfg, err := config.LoadConfig("")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, config.DefaultMaxRetries, cfg.API.Retry.MaxRetries)
	assert.Equal(t, 30*time.Second, cfg.API.Retry.MaxWait)
}

func TestLoadConfig_ZeroRetriesDisablesRetrying(t *testing.T) {
	// Arrange
	path := writeConfig(t, `
api:
  token: file-token
  retry:
    max_retries: 0
`)

	// Act
	cfg, err := config.LoadConfig(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.API.Retry.MaxRetries)
}

func TestLoadConfig_ZeroRetriesFromEnv(t *testing.T) {
	t.Setenv("ST_API_TOKEN", "agent-token")
	t.Setenv("ST_API_RETRY_MAX_RETRIES", "0")

	cfg, err := config.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, 0, cfg.API.Retry.MaxRetries)
}
