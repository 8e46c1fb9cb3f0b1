package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/andrescamacho/spacetraders-dashboard/internal/adapters/api"
	"github.com/andrescamacho/spacetraders-dashboard/internal/adapters/graph"
	"github.com/andrescamacho/spacetraders-dashboard/internal/adapters/metrics"
	"github.com/andrescamacho/spacetraders-dashboard/internal/application/dashboard"
	"github.com/andrescamacho/spacetraders-dashboard/internal/application/mediator"
	shipCmd "github.com/andrescamacho/spacetraders-dashboard/internal/application/ship/commands"
	"github.com/andrescamacho/spacetraders-dashboard/internal/application/shipyard"
	"github.com/andrescamacho/spacetraders-dashboard/internal/cache"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/ports"
	"github.com/andrescamacho/spacetraders-dashboard/internal/infrastructure/config"
	"github.com/andrescamacho/spacetraders-dashboard/internal/infrastructure/logging"
)

// app is the wired object graph shared by every subcommand
type app struct {
	client     ports.APIClient
	waypoints  *graph.WaypointCache
	aggregator *dashboard.Aggregator
	mediator   mediator.Mediator
	collectors *metrics.Collectors
}

// loadConfig reads configuration and configures the global logger from it
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	logging.Init(logging.Config{
		Level:  level,
		Format: cfg.Logging.Format,
		Output: logOutput(cfg.Logging.Output),
	})
	return cfg, nil
}

func logOutput(name string) io.Writer {
	if name == "stdout" {
		return os.Stdout
	}
	return os.Stderr
}

// newClient builds the rate-limited, retrying SpaceTraders client from config
func newClient(cfg *config.Config) *api.SpaceTradersClient {
	return api.NewSpaceTradersClient(api.ClientConfig{
		BaseURL:      cfg.API.BaseURL,
		Token:        cfg.API.Token,
		Timeout:      cfg.API.Timeout,
		RateLimit:    float64(cfg.API.RateLimit.Requests),
		Burst:        cfg.API.RateLimit.Burst,
		MaxRetries:   cfg.API.Retry.MaxRetries,
		BackoffBase:  cfg.API.Retry.BackoffBase,
		MaxRetryWait: cfg.API.Retry.MaxWait,
		Breaker: api.BreakerConfig{
			MaxFailures: cfg.API.CircuitBreaker.MaxFailures,
			Timeout:     cfg.API.CircuitBreaker.Timeout,
		},
	}, nil)
}

// newApp wires the waypoint cache, aggregator and mediator around client.
// collectors may be nil when metrics are disabled.
func newApp(cacheCfg config.CacheConfig, client ports.APIClient, collectors *metrics.Collectors) (*app, error) {
	var opts []cache.Option
	var commandMetrics *metrics.CommandMetricsCollector
	if collectors != nil {
		opts = append(opts, cache.WithMetrics(collectors.Cache))
		commandMetrics = collectors.Command
	}

	waypoints := graph.NewWaypointCache(api.NewWaypointFetcher(client, cacheCfg.PageSize), cacheCfg.TTL, opts...)
	aggregator := dashboard.NewAggregator(client, waypoints)

	med := mediator.NewMediator()
	med.RegisterMiddleware(metrics.PrometheusMiddleware(commandMetrics))
	med.RegisterMiddleware(mediator.LoggingMiddleware())

	if err := dashboard.RegisterHandlers(med, aggregator); err != nil {
		return nil, fmt.Errorf("failed to register dashboard handlers: %w", err)
	}
	if err := shipCmd.RegisterHandlers(med, client); err != nil {
		return nil, fmt.Errorf("failed to register ship handlers: %w", err)
	}
	if err := shipyard.RegisterHandlers(med, client); err != nil {
		return nil, fmt.Errorf("failed to register shipyard handlers: %w", err)
	}

	return &app{
		client:     client,
		waypoints:  waypoints,
		aggregator: aggregator,
		mediator:   med,
		collectors: collectors,
	}, nil
}
