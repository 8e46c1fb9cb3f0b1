package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// APIMetricsCollector records outbound SpaceTraders API traffic. Series are
// labelled by operation ("list waypoints", "navigate ship") rather than URL
// path so ship and waypoint symbols never become label values.
type APIMetricsCollector struct {
	requests      *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	retries       *prometheus.CounterVec
	throttleWait  *prometheus.HistogramVec
	breakerStates *prometheus.GaugeVec
}

// NewAPIMetricsCollector creates a new API metrics collector
func NewAPIMetricsCollector() *APIMetricsCollector {
	return &APIMetricsCollector{
		// status_code 0 marks a transport failure
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "api_requests_total",
				Help:      "Upstream API attempts by operation and status code",
			},
			[]string{"method", "op", "status_code"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "api_request_duration_seconds",
				Help:      "Upstream API attempt latency",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0},
			},
			[]string{"method", "op"},
		),
		retries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "api_retries_total",
				Help:      "Upstream API retries by reason (network, rate_limited, server_error)",
			},
			[]string{"method", "op", "reason"},
		),
		throttleWait: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "api_rate_limit_wait_seconds",
				Help:      "Time spent queued behind the client-side rate limiter",
				Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1.0, 2.0, 5.0},
			},
			[]string{"method", "op"},
		),
		breakerStates: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "api_circuit_state",
				Help:      "Circuit breaker state (0 closed, 1 half-open, 2 open)",
			},
			[]string{"breaker"},
		),
	}
}

// Register registers all API metrics with the Prometheus registry
func (c *APIMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	for _, metric := range []prometheus.Collector{c.requests, c.latency, c.retries, c.throttleWait, c.breakerStates} {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}
	return nil
}

func (c *APIMetricsCollector) RecordAPIRequest(method, op string, statusCode int, duration float64) {
	c.requests.WithLabelValues(method, op, strconv.Itoa(statusCode)).Inc()
	c.latency.WithLabelValues(method, op).Observe(duration)
}

func (c *APIMetricsCollector) RecordAPIRetry(method, op, reason string) {
	c.retries.WithLabelValues(method, op, reason).Inc()
}

func (c *APIMetricsCollector) RecordRateLimitWait(method, op string, duration float64) {
	c.throttleWait.WithLabelValues(method, op).Observe(duration)
}

// RecordCircuitState maps gobreaker state names onto the gauge
func (c *APIMetricsCollector) RecordCircuitState(name, state string) {
	value := 0.0
	switch state {
	case "half-open":
		value = 1
	case "open":
		value = 2
	}
	c.breakerStates.WithLabelValues(name).Set(value)
}
