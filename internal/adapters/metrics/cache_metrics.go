package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/spacetraders-dashboard/internal/cache"
)

// CacheMetricsCollector exports cache.Metrics events for one named cache
type CacheMetricsCollector struct {
	hits          prometheus.Counter
	misses        prometheus.Counter
	coalesced     prometheus.Counter
	fetchDuration *prometheus.HistogramVec
	evictions     *prometheus.CounterVec
	entries       prometheus.Gauge
}

// NewCacheMetricsCollector creates a collector labelled with the cache name
func NewCacheMetricsCollector(name string) *CacheMetricsCollector {
	labels := prometheus.Labels{"cache": name}

	return &CacheMetricsCollector{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "cache_hits_total",
			Help:        "Lookups served from a fresh entry",
			ConstLabels: labels,
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "cache_misses_total",
			Help:        "Lookups that started an upstream fetch",
			ConstLabels: labels,
		}),
		coalesced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "cache_coalesced_total",
			Help:        "Lookups that joined a fetch already in flight",
			ConstLabels: labels,
		}),
		fetchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   namespace,
				Subsystem:   subsystem,
				Name:        "cache_fetch_duration_seconds",
				Help:        "Upstream fetch duration by outcome",
				Buckets:     []float64{0.1, 0.25, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0},
				ConstLabels: labels,
			},
			[]string{"status"},
		),
		evictions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   subsystem,
				Name:        "cache_evictions_total",
				Help:        "Entries removed, by reason",
				ConstLabels: labels,
			},
			[]string{"reason"},
		),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "cache_entries",
			Help:        "Resident entries",
			ConstLabels: labels,
		}),
	}
}

// Register registers all cache metrics with the Prometheus registry
func (c *CacheMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	for _, metric := range []prometheus.Collector{c.hits, c.misses, c.coalesced, c.fetchDuration, c.evictions, c.entries} {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}
	return nil
}

func (c *CacheMetricsCollector) Hit()       { c.hits.Inc() }
func (c *CacheMetricsCollector) Miss()      { c.misses.Inc() }
func (c *CacheMetricsCollector) Coalesced() { c.coalesced.Inc() }

func (c *CacheMetricsCollector) Fetched(d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.fetchDuration.WithLabelValues(status).Observe(d.Seconds())
}

func (c *CacheMetricsCollector) Evict(reason cache.EvictReason) {
	c.evictions.WithLabelValues(reason.String()).Inc()
}

func (c *CacheMetricsCollector) Size(entries int) {
	c.entries.Set(float64(entries))
}

var _ cache.Metrics = (*CacheMetricsCollector)(nil)
