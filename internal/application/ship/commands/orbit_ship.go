package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/spacetraders-dashboard/internal/application/mediator"
	"github.com/andrescamacho/spacetraders-dashboard/internal/application/ship/types"
	domainPorts "github.com/andrescamacho/spacetraders-dashboard/internal/domain/ports"
)

// OrbitShipHandler - Handles orbit ship commands
type OrbitShipHandler struct {
	apiClient domainPorts.APIClient
}

// NewOrbitShipHandler creates a new orbit ship handler
func NewOrbitShipHandler(apiClient domainPorts.APIClient) *OrbitShipHandler {
	return &OrbitShipHandler{apiClient: apiClient}
}

// Handle executes the orbit ship command
func (h *OrbitShipHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*types.OrbitShipCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	nav, err := h.apiClient.OrbitShip(ctx, cmd.ShipSymbol)
	if err != nil {
		return nil, fmt.Errorf("failed to orbit ship: %w", err)
	}

	return &types.OrbitShipResponse{Nav: *nav}, nil
}
