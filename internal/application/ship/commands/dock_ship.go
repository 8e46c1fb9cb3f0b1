package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/spacetraders-dashboard/internal/application/mediator"
	"github.com/andrescamacho/spacetraders-dashboard/internal/application/ship/types"
	domainPorts "github.com/andrescamacho/spacetraders-dashboard/internal/domain/ports"
)

// DockShipHandler - Handles dock ship commands
type DockShipHandler struct {
	apiClient domainPorts.APIClient
}

// NewDockShipHandler creates a new dock ship handler
func NewDockShipHandler(apiClient domainPorts.APIClient) *DockShipHandler {
	return &DockShipHandler{apiClient: apiClient}
}

// Handle executes the dock ship command
func (h *DockShipHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*types.DockShipCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	nav, err := h.apiClient.DockShip(ctx, cmd.ShipSymbol)
	if err != nil {
		return nil, fmt.Errorf("failed to dock ship: %w", err)
	}

	return &types.DockShipResponse{Nav: *nav}, nil
}
