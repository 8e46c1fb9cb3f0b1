// Package cache provides a read-through, time-bounded cache that coalesces
// concurrent fetches of the same key.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/shared"
)

// DefaultTTL is how long a fetched value is served before it is refetched
const DefaultTTL = 5 * time.Minute

// FetchFunc loads the value for key from the system of record
type FetchFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)

// Cache maps keys to values loaded on demand by a FetchFunc.
//
// Concurrency contract:
//   - At most one fetch per key is in flight. Callers arriving while it runs
//     wait for it and receive the same value or the same error.
//   - Fetches for different keys never wait on each other.
//   - mu guards the entry and in-flight maps only; it is never held while
//     fetching.
//   - The fetch runs detached from the caller that started it. A caller whose
//     ctx ends stops waiting and gets ctx.Err(); the fetch still completes
//     and populates the entry for everyone else.
//
// Entries expire lazily: a lookup past expiresAt refetches and replaces the
// whole value. Failed fetches are never stored.
type Cache[K comparable, V any] struct {
	ttl     time.Duration
	clock   shared.Clock
	metrics Metrics

	mu       sync.Mutex
	entries  map[K]entry[V]
	inflight map[K]*call[V]
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

type call[V any] struct {
	done chan struct{} // closed once val/err are published
	val  V
	err  error
}

type settings struct {
	clock   shared.Clock
	metrics Metrics
}

// Option configures a Cache
type Option func(*settings)

// WithClock replaces the wall clock used for expiry
func WithClock(clock shared.Clock) Option {
	return func(s *settings) { s.clock = clock }
}

// WithMetrics reports cache activity to m
func WithMetrics(m Metrics) Option {
	return func(s *settings) { s.metrics = m }
}

// New creates an empty cache. A non-positive ttl falls back to DefaultTTL.
func New[K comparable, V any](ttl time.Duration, opts ...Option) *Cache[K, V] {
	s := settings{clock: shared.NewRealClock(), metrics: NoopMetrics{}}
	for _, opt := range opts {
		opt(&s)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Cache[K, V]{
		ttl:      ttl,
		clock:    s.clock,
		metrics:  s.metrics,
		entries:  make(map[K]entry[V]),
		inflight: make(map[K]*call[V]),
	}
}

// TTL returns the configured time-to-live
func (c *Cache[K, V]) TTL() time.Duration {
	return c.ttl
}

// GetOrFetch returns the fresh cached value for key, or fetches it.
func (c *Cache[K, V]) GetOrFetch(ctx context.Context, key K, fetch FetchFunc[K, V]) (V, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		if c.clock.Now().Before(e.expiresAt) {
			c.mu.Unlock()
			c.metrics.Hit()
			return e.value, nil
		}
		delete(c.entries, key)
		c.metrics.Evict(EvictExpired)
	}

	cl, waiting := c.inflight[key]
	if !waiting {
		cl = &call[V]{done: make(chan struct{})}
		c.inflight[key] = cl
		go c.fetch(context.WithoutCancel(ctx), key, cl, fetch)
	}
	c.mu.Unlock()

	if waiting {
		c.metrics.Coalesced()
	} else {
		c.metrics.Miss()
	}

	select {
	case <-cl.done:
		return cl.val, cl.err
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}

func (c *Cache[K, V]) fetch(ctx context.Context, key K, cl *call[V], fetch FetchFunc[K, V]) {
	start := time.Now()
	val, err := safeFetch(ctx, key, fetch)
	c.metrics.Fetched(time.Since(start), err)

	c.mu.Lock()
	if err == nil {
		c.entries[key] = entry[V]{value: val, expiresAt: c.clock.Now().Add(c.ttl)}
	}
	delete(c.inflight, key)
	size := len(c.entries)
	c.mu.Unlock()

	c.metrics.Size(size)

	cl.val, cl.err = val, err
	close(cl.done)
}

// safeFetch turns a panicking fetch into an error so waiters are always released.
func safeFetch[K comparable, V any](ctx context.Context, key K, fetch FetchFunc[K, V]) (val V, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cache fetch for %v panicked: %v", key, r)
		}
	}()
	return fetch(ctx, key)
}

// Sweep evicts every expired entry and returns how many were removed.
// Lookups never depend on it; it only bounds memory for keys nobody asks for again.
func (c *Cache[K, V]) Sweep() int {
	now := c.clock.Now()

	c.mu.Lock()
	removed := 0
	for k, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, k)
			removed++
		}
	}
	size := len(c.entries)
	c.mu.Unlock()

	for i := 0; i < removed; i++ {
		c.metrics.Evict(EvictSwept)
	}
	c.metrics.Size(size)
	return removed
}

// Len returns the number of stored entries, expired or not
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
