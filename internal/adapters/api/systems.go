package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/market"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/shared"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/shipyard"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/system"
)

// ListWaypoints retrieves one page of a system's waypoints
func (c *SpaceTradersClient) ListWaypoints(ctx context.Context, systemSymbol string, page, limit int) (*system.WaypointsPage, error) {
	var response envelope[[]waypointDTO]
	path := pagedPath(fmt.Sprintf("/systems/%s/waypoints", systemSymbol), page, limit)
	if err := c.request(ctx, "ListWaypoints", http.MethodGet, path, nil, &response); err != nil {
		return nil, err
	}

	waypoints := make([]shared.Waypoint, len(response.Data))
	for i, wp := range response.Data {
		waypoints[i] = wp.toDomain()
	}

	return &system.WaypointsPage{Data: waypoints, Meta: response.Meta}, nil
}

// GetMarket retrieves the market at a waypoint
func (c *SpaceTradersClient) GetMarket(ctx context.Context, systemSymbol, waypointSymbol string) (*market.Market, error) {
	var response envelope[market.Market]
	path := fmt.Sprintf("/systems/%s/waypoints/%s/market", systemSymbol, waypointSymbol)
	if err := c.request(ctx, "GetMarket", http.MethodGet, path, nil, &response); err != nil {
		return nil, err
	}
	return &response.Data, nil
}

// GetShipyard retrieves the shipyard at a waypoint
func (c *SpaceTradersClient) GetShipyard(ctx context.Context, systemSymbol, waypointSymbol string) (*shipyard.Shipyard, error) {
	var response envelope[shipyard.Shipyard]
	path := fmt.Sprintf("/systems/%s/waypoints/%s/shipyard", systemSymbol, waypointSymbol)
	if err := c.request(ctx, "GetShipyard", http.MethodGet, path, nil, &response); err != nil {
		return nil, err
	}
	return &response.Data, nil
}
