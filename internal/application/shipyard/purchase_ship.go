package shipyard

import (
	"context"
	"fmt"

	"github.com/andrescamacho/spacetraders-dashboard/internal/application/mediator"
	domainPorts "github.com/andrescamacho/spacetraders-dashboard/internal/domain/ports"
	"github.com/andrescamacho/spacetraders-dashboard/internal/infrastructure/logging"
)

// PurchaseShipCommand buys a ship of ShipType at the shipyard on WaypointSymbol.
// One of the agent's ships must be present there.
type PurchaseShipCommand struct {
	ShipType       string
	WaypointSymbol string
}

// PurchaseShipHandler - Handles purchase ship commands
type PurchaseShipHandler struct {
	apiClient domainPorts.APIClient
}

// NewPurchaseShipHandler creates a new purchase ship handler
func NewPurchaseShipHandler(apiClient domainPorts.APIClient) *PurchaseShipHandler {
	return &PurchaseShipHandler{apiClient: apiClient}
}

// Handle executes the purchase ship command
func (h *PurchaseShipHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*PurchaseShipCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if cmd.ShipType == "" {
		return nil, fmt.Errorf("ship type cannot be empty")
	}

	result, err := h.apiClient.PurchaseShip(ctx, cmd.ShipType, cmd.WaypointSymbol)
	if err != nil {
		return nil, fmt.Errorf("failed to purchase %s at %s: %w", cmd.ShipType, cmd.WaypointSymbol, err)
	}

	logging.Ctx(ctx).Info().
		Str("ship", result.ShipSymbol).
		Str("type", result.ShipType).
		Int("price", result.Price).
		Msg("ship purchased")

	return result, nil
}

// RegisterHandlers wires the shipyard query and command into the mediator
func RegisterHandlers(m mediator.Mediator, apiClient domainPorts.APIClient) error {
	if err := mediator.RegisterHandler[*GetShipyardQuery](m, NewGetShipyardHandler(apiClient)); err != nil {
		return err
	}
	return mediator.RegisterHandler[*PurchaseShipCommand](m, NewPurchaseShipHandler(apiClient))
}
