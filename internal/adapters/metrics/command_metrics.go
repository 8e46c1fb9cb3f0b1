package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// CommandMetricsCollector records mediator dispatches. Queries render pages and
// are expected to be fast; commands carry an upstream mutation.
type CommandMetricsCollector struct {
	duration *prometheus.HistogramVec
	total    *prometheus.CounterVec
}

// NewCommandMetricsCollector creates a new command metrics collector
func NewCommandMetricsCollector() *CommandMetricsCollector {
	return &CommandMetricsCollector{
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "mediator_request_duration_seconds",
				Help:      "Mediator dispatch duration by request, kind and outcome",
				Buckets:   []float64{0.005, 0.025, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 15.0},
			},
			[]string{"request", "kind", "status"},
		),
		total: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "mediator_requests_total",
				Help:      "Mediator dispatches by request, kind and outcome",
			},
			[]string{"request", "kind", "status"},
		),
	}
}

// Register registers all command metrics with the Prometheus registry
func (c *CommandMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	for _, metric := range []prometheus.Collector{c.duration, c.total} {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}
	return nil
}

// RecordCommandExecution records one dispatch
func (c *CommandMetricsCollector) RecordCommandExecution(requestName string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	kind := requestKind(requestName)

	c.duration.WithLabelValues(requestName, kind, status).Observe(duration)
	c.total.WithLabelValues(requestName, kind, status).Inc()
}

// requestKind classifies by naming convention: *Query types are reads
func requestKind(requestName string) string {
	if strings.HasSuffix(requestName, "Query") {
		return "query"
	}
	return "command"
}
