// Package graph serves the waypoint layout of star systems.
package graph

import (
	"context"
	"time"

	"github.com/andrescamacho/spacetraders-dashboard/internal/cache"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/shared"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/system"
)

// SystemFetcher loads a system's full, ordered waypoint list from upstream
type SystemFetcher interface {
	FetchSystemWaypoints(ctx context.Context, systemSymbol string) ([]shared.Waypoint, error)
}

// WaypointCache is the read-through waypoint cache keyed by system symbol.
//
// Two ships in the same system share one entry. Ship actions never
// invalidate it: waypoint layout is treated as static for the TTL window.
type WaypointCache struct {
	cache   *cache.Cache[string, []shared.Waypoint]
	fetcher SystemFetcher
}

var _ system.WaypointProvider = (*WaypointCache)(nil)

// NewWaypointCache wraps fetcher with a cache of the given TTL
func NewWaypointCache(fetcher SystemFetcher, ttl time.Duration, opts ...cache.Option) *WaypointCache {
	return &WaypointCache{
		cache:   cache.New[string, []shared.Waypoint](ttl, opts...),
		fetcher: fetcher,
	}
}

// GetSystemWaypoints returns the cached waypoints of systemSymbol, fetching
// them on a miss or after expiry. Callers must treat the slice as read-only:
// it is shared with every other caller until the entry is refreshed.
func (w *WaypointCache) GetSystemWaypoints(ctx context.Context, systemSymbol string) ([]shared.Waypoint, error) {
	return w.cache.GetOrFetch(ctx, systemSymbol, w.fetcher.FetchSystemWaypoints)
}

// GetWaypoint finds one waypoint in its system's cached list
func (w *WaypointCache) GetWaypoint(ctx context.Context, waypointSymbol string) (*shared.Waypoint, error) {
	systemSymbol := shared.ExtractSystemSymbol(waypointSymbol)
	waypoints, err := w.GetSystemWaypoints(ctx, systemSymbol)
	if err != nil {
		return nil, err
	}

	wp, ok := shared.FindWaypoint(waypoints, waypointSymbol)
	if !ok {
		return nil, shared.NewNotFoundError("waypoint", waypointSymbol, systemSymbol)
	}
	return wp, nil
}

// Sweep drops expired systems; see cache.Cache.Sweep
func (w *WaypointCache) Sweep() int {
	return w.cache.Sweep()
}

// Len returns the number of cached systems
func (w *WaypointCache) Len() int {
	return w.cache.Len()
}
