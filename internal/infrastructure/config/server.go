package config

import "time"

// ServerConfig holds the dashboard HTTP server configuration
type ServerConfig struct {
	// Listen address
	Address string `mapstructure:"address" validate:"required,hostname_port"`

	// Directory served for unmatched paths (css, js, icons)
	StaticDir string `mapstructure:"static_dir"`

	// Grace period for in-flight requests on shutdown
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required"`

	// Requests per minute per client IP, 0 disables limiting
	RateLimit int `mapstructure:"rate_limit" validate:"min=0"`

	// PID file guarding against a second dashboard on the same host
	PIDFile string `mapstructure:"pid_file"`
}
