package config

import (
	"time"

	"github.com/spf13/viper"
)

// DefaultMaxRetries applies when api.retry.max_retries is absent. It is a viper
// default rather than a zero check in SetDefaults so an explicit 0 survives.
const DefaultMaxRetries = 3

// setViperDefaults registers defaults for keys whose zero value is meaningful
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("api.retry.max_retries", DefaultMaxRetries)
}

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// API defaults
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "https://api.spacetraders.io/v2"
	}
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = 30 * time.Second
	}
	if cfg.API.RateLimit.Requests == 0 {
		cfg.API.RateLimit.Requests = 2
	}
	if cfg.API.RateLimit.Burst == 0 {
		cfg.API.RateLimit.Burst = 10
	}
	if cfg.API.Retry.BackoffBase == 0 {
		cfg.API.Retry.BackoffBase = 1 * time.Second
	}
	if cfg.API.Retry.MaxWait == 0 {
		cfg.API.Retry.MaxWait = 30 * time.Second
	}
	if cfg.API.CircuitBreaker.MaxFailures == 0 {
		cfg.API.CircuitBreaker.MaxFailures = 5
	}
	if cfg.API.CircuitBreaker.Timeout == 0 {
		cfg.API.CircuitBreaker.Timeout = 30 * time.Second
	}

	// Cache defaults
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = 5 * time.Minute
	}
	if cfg.Cache.SweepInterval == 0 {
		cfg.Cache.SweepInterval = time.Minute
	}
	if cfg.Cache.PageSize == 0 {
		cfg.Cache.PageSize = 20
	}

	// Server defaults
	if cfg.Server.Address == "" {
		cfg.Server.Address = "0.0.0.0:3001"
	}
	if cfg.Server.StaticDir == "" {
		cfg.Server.StaticDir = "public"
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}
	if cfg.Server.PIDFile == "" {
		cfg.Server.PIDFile = "/tmp/spacetraders-dashboard.pid"
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}

	// Metrics defaults
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}
