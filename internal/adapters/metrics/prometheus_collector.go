package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// Namespace for all metrics
	namespace = "spacetraders"
	// Subsystem for dashboard metrics
	subsystem = "dashboard"
)

var (
	// Registry is the global Prometheus registry for all metrics.
	// Nil while metrics are disabled.
	Registry *prometheus.Registry

	// globalAPICollector is set by SetGlobalAPICollector when metrics are enabled
	globalAPICollector APIMetricsRecorder
)

// APIMetricsRecorder records outbound SpaceTraders API activity
type APIMetricsRecorder interface {
	RecordAPIRequest(method, op string, statusCode int, duration float64)
	RecordAPIRetry(method, op, reason string)
	RecordRateLimitWait(method, op string, duration float64)
	RecordCircuitState(name, state string)
}

// Collectors bundles every collector the dashboard registers
type Collectors struct {
	API     *APIMetricsCollector
	Cache   *CacheMetricsCollector
	HTTP    *HTTPMetricsCollector
	Command *CommandMetricsCollector
}

// InitRegistry initializes the Prometheus registry with Go runtime and process collectors.
// Should be called once at startup if metrics are enabled.
func InitRegistry() {
	Registry = prometheus.NewRegistry()
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// Setup initializes the registry, registers all dashboard collectors and installs
// the API collector globally.
func Setup() (*Collectors, error) {
	InitRegistry()

	c := &Collectors{
		API:     NewAPIMetricsCollector(),
		Cache:   NewCacheMetricsCollector("waypoints"),
		HTTP:    NewHTTPMetricsCollector(),
		Command: NewCommandMetricsCollector(),
	}

	for _, r := range []interface{ Register() error }{c.API, c.Cache, c.HTTP, c.Command} {
		if err := r.Register(); err != nil {
			return nil, err
		}
	}

	SetGlobalAPICollector(c.API)
	return c, nil
}

// Handler serves the registry in the Prometheus exposition format
func Handler() http.Handler {
	if Registry == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}

// SetGlobalAPICollector sets the global API metrics collector
func SetGlobalAPICollector(collector APIMetricsRecorder) {
	globalAPICollector = collector
}

// RecordAPIRequest records an API request completion globally
func RecordAPIRequest(method, op string, statusCode int, duration float64) {
	if globalAPICollector != nil {
		globalAPICollector.RecordAPIRequest(method, op, statusCode, duration)
	}
}

// RecordAPIRetry records an API retry attempt globally
func RecordAPIRetry(method, op, reason string) {
	if globalAPICollector != nil {
		globalAPICollector.RecordAPIRetry(method, op, reason)
	}
}

// RecordRateLimitWait records time spent waiting for the rate limiter globally
func RecordRateLimitWait(method, op string, duration float64) {
	if globalAPICollector != nil {
		globalAPICollector.RecordRateLimitWait(method, op, duration)
	}
}

// RecordCircuitState records a circuit breaker transition globally
func RecordCircuitState(name, state string) {
	if globalAPICollector != nil {
		globalAPICollector.RecordCircuitState(name, state)
	}
}
