package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/andrescamacho/spacetraders-dashboard/internal/adapters/metrics"
	"github.com/andrescamacho/spacetraders-dashboard/internal/application/mediator"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/shared"
)

// Config controls the dashboard's HTTP surface
type Config struct {
	StaticDir       string
	RateLimit       int           // requests per window per client IP, 0 disables limiting
	RateLimitWindow time.Duration // defaults to one minute
	MetricsPath     string        // empty disables the metrics endpoint
}

// Server renders the dashboard pages and fragments. Every page is assembled
// through the mediator so commands and queries share one middleware chain.
type Server struct {
	cfg         Config
	mediator    mediator.Mediator
	clock       shared.Clock
	views       *views
	httpMetrics *metrics.HTTPMetricsCollector
}

// NewServer creates the web adapter. httpMetrics may be nil when metrics are disabled.
func NewServer(cfg Config, med mediator.Mediator, clock shared.Clock, httpMetrics *metrics.HTTPMetricsCollector) (*Server, error) {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	if cfg.RateLimitWindow <= 0 {
		cfg.RateLimitWindow = time.Minute
	}

	v, err := newViews(clock)
	if err != nil {
		return nil, err
	}

	return &Server{
		cfg:         cfg,
		mediator:    med,
		clock:       clock,
		views:       v,
		httpMetrics: httpMetrics,
	}, nil
}

// Routes builds the chi router with the global middleware stack
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	if s.httpMetrics != nil {
		r.Use(s.httpMetrics.Middleware)
	}
	if s.cfg.RateLimit > 0 {
		r.Use(httprate.Limit(s.cfg.RateLimit, s.cfg.RateLimitWindow, httprate.WithKeyFuncs(httprate.KeyByIP)))
	}

	r.Get("/", s.handleIndex)
	r.Get("/ship/{ship}", s.handleShip)

	r.Route("/ship_nav/{ship}", func(r chi.Router) {
		r.Get("/choices", s.handleNavChoices)
		r.Post("/go/{waypoint}", s.handleNavGo)
		r.Post("/dock", s.handleDock)
		r.Post("/orbit", s.handleOrbit)
		r.Post("/refuel", s.handleRefuel)
		r.Post("/extract", s.handleExtract)
	})

	r.Post("/ship_cargo/{ship}/dump", s.handleDumpCargo)
	r.Get("/shipyard/{system}/{waypoint}", s.handleShipyard)
	r.Post("/waypoints/{waypoint}/buy_ship/{shipType}", s.handleBuyShip)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if s.cfg.MetricsPath != "" {
		r.Handle(s.cfg.MetricsPath, metrics.Handler())
	}

	if s.cfg.StaticDir != "" {
		r.Handle("/*", NoCache(http.FileServer(http.Dir(s.cfg.StaticDir))))
	}

	return r
}
