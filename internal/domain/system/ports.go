package system

import (
	"context"

	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/shared"
)

// WaypointsPage is one page of a system's waypoint listing
type WaypointsPage struct {
	Data []shared.Waypoint `json:"data"`
	Meta PaginationMeta    `json:"meta"`
}

// PaginationMeta is the API's paging envelope. Pages are 1-indexed.
type PaginationMeta struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// WaypointPager fetches a single page of a system's waypoints
type WaypointPager interface {
	ListWaypoints(ctx context.Context, systemSymbol string, page, limit int) (*WaypointsPage, error)
}

// WaypointProvider returns the full waypoint list of a system
type WaypointProvider interface {
	GetSystemWaypoints(ctx context.Context, systemSymbol string) ([]shared.Waypoint, error)
}
