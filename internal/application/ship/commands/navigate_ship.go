package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/spacetraders-dashboard/internal/application/mediator"
	"github.com/andrescamacho/spacetraders-dashboard/internal/application/ship/types"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/navigation"
	domainPorts "github.com/andrescamacho/spacetraders-dashboard/internal/domain/ports"
	"github.com/andrescamacho/spacetraders-dashboard/internal/infrastructure/logging"
)

// NavigateShipHandler - Handles navigate ship commands
//
// The API refuses to navigate a docked ship, so the handler loads the ship,
// orbits it when needed and only then issues the navigate call.
type NavigateShipHandler struct {
	apiClient domainPorts.APIClient
}

// NewNavigateShipHandler creates a new navigate ship handler
func NewNavigateShipHandler(apiClient domainPorts.APIClient) *NavigateShipHandler {
	return &NavigateShipHandler{apiClient: apiClient}
}

// Handle executes the navigate ship command
func (h *NavigateShipHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*types.NavigateShipCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	ship, err := h.apiClient.GetShip(ctx, cmd.ShipSymbol)
	if err != nil {
		return nil, fmt.Errorf("ship not found: %w", err)
	}

	orbited, err := h.ensureInOrbit(ctx, ship)
	if err != nil {
		return nil, err
	}

	result, err := h.apiClient.NavigateShip(ctx, cmd.ShipSymbol, cmd.Destination)
	if err != nil {
		return nil, fmt.Errorf("failed to navigate ship: %w", err)
	}

	logging.Ctx(ctx).Info().
		Str("ship", cmd.ShipSymbol).
		Str("destination", cmd.Destination).
		Int("fuel_consumed", result.FuelConsumed).
		Str("arrival", result.Nav.Route.Arrival).
		Msg("ship departed")

	return &types.NavigateShipResponse{Orbited: orbited, Result: *result}, nil
}

func (h *NavigateShipHandler) ensureInOrbit(ctx context.Context, ship *navigation.Ship) (bool, error) {
	if !ship.IsDocked() {
		return false, nil
	}
	if _, err := h.apiClient.OrbitShip(ctx, ship.Symbol); err != nil {
		return false, fmt.Errorf("failed to orbit ship before navigation: %w", err)
	}
	return true, nil
}
