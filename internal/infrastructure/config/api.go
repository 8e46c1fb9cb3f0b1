package config

import "time"

// APIConfig holds SpaceTraders API client configuration
type APIConfig struct {
	// Base URL for SpaceTraders API
	BaseURL string `mapstructure:"base_url" validate:"required,url"`

	// Agent bearer token (ST_API_TOKEN)
	Token string `mapstructure:"token" validate:"required"`

	// Rate limiting settings
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// Request timeout
	Timeout time.Duration `mapstructure:"timeout" validate:"required"`

	// Retry configuration
	Retry RetryConfig `mapstructure:"retry"`

	// Circuit breaker configuration
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	// Maximum requests per second
	Requests int `mapstructure:"requests" validate:"min=1"`

	// Burst size for token bucket
	Burst int `mapstructure:"burst" validate:"min=1"`
}

// RetryConfig holds retry configuration for failed requests
type RetryConfig struct {
	// Retries after the first attempt; 0 disables retrying
	MaxRetries int `mapstructure:"max_retries" validate:"min=0"`

	// Base duration for exponential backoff
	BackoffBase time.Duration `mapstructure:"backoff_base"`

	// Upper bound on a single wait, including one requested by Retry-After
	MaxWait time.Duration `mapstructure:"max_wait" validate:"min=0"`
}

// CircuitBreakerConfig holds the API circuit breaker thresholds
type CircuitBreakerConfig struct {
	// Consecutive failures before the circuit opens
	MaxFailures uint32 `mapstructure:"max_failures" validate:"min=1"`

	// How long the circuit stays open before a probe request
	Timeout time.Duration `mapstructure:"timeout"`
}
