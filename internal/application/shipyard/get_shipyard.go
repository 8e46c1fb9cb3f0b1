package shipyard

import (
	"context"
	"fmt"

	"github.com/andrescamacho/spacetraders-dashboard/internal/application/mediator"
	domainPorts "github.com/andrescamacho/spacetraders-dashboard/internal/domain/ports"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/shared"
)

// GetShipyardQuery requests a shipyard's ship types and, when a ship is present, its listings
type GetShipyardQuery struct {
	SystemSymbol   string
	WaypointSymbol string
}

// GetShipyardHandler - Handles get shipyard queries
type GetShipyardHandler struct {
	apiClient domainPorts.APIClient
}

// NewGetShipyardHandler creates a new get shipyard handler
func NewGetShipyardHandler(apiClient domainPorts.APIClient) *GetShipyardHandler {
	return &GetShipyardHandler{apiClient: apiClient}
}

// Handle executes the get shipyard query
func (h *GetShipyardHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetShipyardQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	systemSymbol := query.SystemSymbol
	if systemSymbol == "" {
		systemSymbol = shared.ExtractSystemSymbol(query.WaypointSymbol)
	}

	yard, err := h.apiClient.GetShipyard(ctx, systemSymbol, query.WaypointSymbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get shipyard: %w", err)
	}
	return yard, nil
}
