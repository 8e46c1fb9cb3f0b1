package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/spacetraders-dashboard/internal/application/mediator"
	"github.com/andrescamacho/spacetraders-dashboard/internal/application/ship/types"
	domainPorts "github.com/andrescamacho/spacetraders-dashboard/internal/domain/ports"
	"github.com/andrescamacho/spacetraders-dashboard/internal/infrastructure/logging"
)

// RefuelShipHandler - Handles refuel ship commands
type RefuelShipHandler struct {
	apiClient domainPorts.APIClient
}

// NewRefuelShipHandler creates a new refuel ship handler
func NewRefuelShipHandler(apiClient domainPorts.APIClient) *RefuelShipHandler {
	return &RefuelShipHandler{apiClient: apiClient}
}

// Handle executes the refuel ship command
func (h *RefuelShipHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*types.RefuelShipCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	result, err := h.apiClient.RefuelShip(ctx, cmd.ShipSymbol)
	if err != nil {
		return nil, fmt.Errorf("failed to refuel ship: %w", err)
	}

	logging.Ctx(ctx).Info().
		Str("ship", cmd.ShipSymbol).
		Int("fuel_added", result.FuelAdded).
		Int("credits_cost", result.CreditsCost).
		Msg("ship refueled")

	return &types.RefuelShipResponse{
		FuelAdded:    result.FuelAdded,
		CreditsCost:  result.CreditsCost,
		CurrentFuel:  result.Fuel.Current,
		FuelCapacity: result.Fuel.Capacity,
	}, nil
}
