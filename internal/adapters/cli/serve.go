package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spacetraders-dashboard/internal/adapters/metrics"
	"github.com/andrescamacho/spacetraders-dashboard/internal/adapters/web"
	"github.com/andrescamacho/spacetraders-dashboard/internal/infrastructure/config"
	"github.com/andrescamacho/spacetraders-dashboard/internal/infrastructure/logging"
	"github.com/andrescamacho/spacetraders-dashboard/internal/infrastructure/pidfile"
	"github.com/andrescamacho/spacetraders-dashboard/internal/supervisor"
	"github.com/andrescamacho/spacetraders-dashboard/internal/supervisor/services"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard web server",
		Long: `Run the dashboard web server until interrupted.

The server and the waypoint cache janitor run under a supervisor that restarts
them on failure. SIGINT or SIGTERM drains in-flight requests and exits.

Examples:
  spacetraders-dashboard serve
  spacetraders-dashboard serve --address 127.0.0.1:8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if address != "" {
				cfg.Server.Address = address
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, cfg)
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "Listen address (overrides server.address)")

	return cmd
}

func runServe(ctx context.Context, cfg *config.Config) error {
	if cfg.Server.PIDFile != "" {
		pf := pidfile.New(cfg.Server.PIDFile)
		if err := pf.Acquire(); err != nil {
			return fmt.Errorf("failed to acquire PID file lock: %w", err)
		}
		defer func() {
			if err := pf.Release(); err != nil {
				logging.Warn().Err(err).Str("path", pf.Path()).Msg("failed to release PID file")
			}
		}()
	}

	var collectors *metrics.Collectors
	if cfg.Metrics.Enabled {
		c, err := metrics.Setup()
		if err != nil {
			return fmt.Errorf("failed to register metrics: %w", err)
		}
		collectors = c
	}

	a, err := newApp(cfg.Cache, newClient(cfg), collectors)
	if err != nil {
		return err
	}

	webCfg := web.Config{
		StaticDir: cfg.Server.StaticDir,
		RateLimit: cfg.Server.RateLimit,
	}
	var httpMetrics *metrics.HTTPMetricsCollector
	if collectors != nil {
		webCfg.MetricsPath = cfg.Metrics.Path
		httpMetrics = collectors.HTTP
	}

	srv, err := web.NewServer(webCfg, a.mediator, nil, httpMetrics)
	if err != nil {
		return fmt.Errorf("failed to build web server: %w", err)
	}

	httpServer := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	tree := supervisor.NewTree(supervisor.TreeConfig{ShutdownTimeout: cfg.Server.ShutdownTimeout})
	tree.AddServingService(services.NewHTTPServerService(httpServer, cfg.Server.ShutdownTimeout))
	if cfg.Cache.SweepInterval > 0 {
		tree.AddMaintenanceService(services.NewCacheJanitorService("waypoints", a.waypoints, cfg.Cache.SweepInterval))
	}

	logging.Info().
		Str("address", cfg.Server.Address).
		Dur("cache_ttl", cfg.Cache.TTL).
		Bool("metrics", collectors != nil).
		Msg("dashboard listening")

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor stopped: %w", err)
	}

	logging.Info().Msg("dashboard stopped")
	return nil
}
