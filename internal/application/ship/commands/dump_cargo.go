package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/spacetraders-dashboard/internal/application/mediator"
	"github.com/andrescamacho/spacetraders-dashboard/internal/application/ship/types"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/market"
	domainPorts "github.com/andrescamacho/spacetraders-dashboard/internal/domain/ports"
	"github.com/andrescamacho/spacetraders-dashboard/internal/infrastructure/logging"
)

// DumpCargoHandler - Handles dump cargo commands
//
// Sells every inventory line of the ship in hold order. Stops at the first
// rejected sale; lines sold before it stay sold and are reported in the error.
type DumpCargoHandler struct {
	apiClient domainPorts.APIClient
}

// NewDumpCargoHandler creates a new dump cargo handler
func NewDumpCargoHandler(apiClient domainPorts.APIClient) *DumpCargoHandler {
	return &DumpCargoHandler{apiClient: apiClient}
}

// Handle executes the dump cargo command
func (h *DumpCargoHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*types.DumpCargoCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	ship, err := h.apiClient.GetShip(ctx, cmd.ShipSymbol)
	if err != nil {
		return nil, fmt.Errorf("ship not found: %w", err)
	}

	response := &types.DumpCargoResponse{Sales: []market.SellResult{}}
	for _, item := range ship.Cargo.Inventory {
		if item.Units <= 0 {
			continue
		}

		sale, err := h.apiClient.SellCargo(ctx, cmd.ShipSymbol, item.Symbol, item.Units)
		if err != nil {
			return nil, fmt.Errorf("failed to sell %d %s after %d sales: %w", item.Units, item.Symbol, len(response.Sales), err)
		}

		response.Sales = append(response.Sales, *sale)
		response.UnitsSold += sale.UnitsSold
		response.TotalRevenue += sale.TotalRevenue
	}

	logging.Ctx(ctx).Info().
		Str("ship", cmd.ShipSymbol).
		Int("units_sold", response.UnitsSold).
		Int("revenue", response.TotalRevenue).
		Msg("cargo dumped")

	return response, nil
}
