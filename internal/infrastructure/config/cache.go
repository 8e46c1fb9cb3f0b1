package config

import "time"

// CacheConfig holds the waypoint cache configuration
type CacheConfig struct {
	// How long a system's waypoint list is served before it is fetched again
	TTL time.Duration `mapstructure:"ttl" validate:"required"`

	// How often the janitor evicts expired entries. Zero disables the janitor.
	SweepInterval time.Duration `mapstructure:"sweep_interval" validate:"min=0"`

	// Waypoints requested per page, at most 20
	PageSize int `mapstructure:"page_size" validate:"min=1,max=20"`
}
