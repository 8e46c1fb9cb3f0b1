package api

import (
	"context"
	"fmt"
	"sort"

	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/shared"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/system"
)

// WaypointFetcher loads a system's complete waypoint list from the paged
// listing endpoint.
type WaypointFetcher struct {
	pager    system.WaypointPager
	pageSize int
}

// NewWaypointFetcher creates a fetcher. pageSize outside 1..MaxPageSize uses MaxPageSize.
func NewWaypointFetcher(pager system.WaypointPager, pageSize int) *WaypointFetcher {
	if pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return &WaypointFetcher{pager: pager, pageSize: pageSize}
}

// FetchSystemWaypoints returns every waypoint of systemSymbol ordered by type.
// Waypoints of the same type keep the order the API listed them in.
func (f *WaypointFetcher) FetchSystemWaypoints(ctx context.Context, systemSymbol string) ([]shared.Waypoint, error) {
	waypoints, err := Paginate(ctx, f.pageSize, func(ctx context.Context, page, limit int) ([]shared.Waypoint, system.PaginationMeta, error) {
		resp, err := f.pager.ListWaypoints(ctx, systemSymbol, page, limit)
		if err != nil {
			return nil, system.PaginationMeta{}, err
		}
		return resp.Data, resp.Meta, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list waypoints of %s: %w", systemSymbol, err)
	}

	SortByType(waypoints)
	return waypoints, nil
}

// SortByType stably orders waypoints by type rank (PLANET first, FUEL_STATION
// last among known types)
func SortByType(waypoints []shared.Waypoint) {
	sort.SliceStable(waypoints, func(i, j int) bool {
		return waypoints[i].Type.Rank() < waypoints[j].Type.Rank()
	})
}
