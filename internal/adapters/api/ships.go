package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/market"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/navigation"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/shipyard"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/system"
)

// GetShip retrieves ship details
func (c *SpaceTradersClient) GetShip(ctx context.Context, symbol string) (*navigation.Ship, error) {
	var response envelope[shipDTO]
	if err := c.request(ctx, "GetShip", http.MethodGet, "/my/ships/"+symbol, nil, &response); err != nil {
		return nil, err
	}
	ship := response.Data.toDomain()
	return &ship, nil
}

// ListShips retrieves every ship of the agent, all pages
func (c *SpaceTradersClient) ListShips(ctx context.Context) ([]navigation.Ship, error) {
	return Paginate(ctx, MaxPageSize, func(ctx context.Context, page, limit int) ([]navigation.Ship, system.PaginationMeta, error) {
		var response envelope[[]shipDTO]
		if err := c.request(ctx, "ListShips", http.MethodGet, pagedPath("/my/ships", page, limit), nil, &response); err != nil {
			return nil, system.PaginationMeta{}, err
		}
		ships := make([]navigation.Ship, len(response.Data))
		for i, s := range response.Data {
			ships[i] = s.toDomain()
		}
		return ships, response.Meta, nil
	})
}

// NavigateShip sends the ship to destination. The ship must be in orbit.
func (c *SpaceTradersClient) NavigateShip(ctx context.Context, symbol, destination string) (*navigation.NavigationResult, error) {
	var response envelope[struct {
		Nav  navDTO `json:"nav"`
		Fuel struct {
			Current  int `json:"current"`
			Capacity int `json:"capacity"`
			Consumed struct {
				Amount int `json:"amount"`
			} `json:"consumed"`
		} `json:"fuel"`
	}]
	body := map[string]string{"waypointSymbol": destination}
	if err := c.request(ctx, "NavigateShip", http.MethodPost, fmt.Sprintf("/my/ships/%s/navigate", symbol), body, &response); err != nil {
		return nil, err
	}

	fuel := response.Data.Fuel
	return &navigation.NavigationResult{
		Nav:          response.Data.Nav.toDomain(),
		Fuel:         navigation.Fuel{Current: fuel.Current, Capacity: fuel.Capacity},
		FuelConsumed: fuel.Consumed.Amount,
	}, nil
}

// OrbitShip moves a docked ship into orbit
func (c *SpaceTradersClient) OrbitShip(ctx context.Context, symbol string) (*navigation.Nav, error) {
	return c.navAction(ctx, "OrbitShip", symbol, "orbit")
}

// DockShip docks a ship in orbit
func (c *SpaceTradersClient) DockShip(ctx context.Context, symbol string) (*navigation.Nav, error) {
	return c.navAction(ctx, "DockShip", symbol, "dock")
}

func (c *SpaceTradersClient) navAction(ctx context.Context, op, symbol, action string) (*navigation.Nav, error) {
	var response envelope[struct {
		Nav navDTO `json:"nav"`
	}]
	if err := c.request(ctx, op, http.MethodPost, fmt.Sprintf("/my/ships/%s/%s", symbol, action), nil, &response); err != nil {
		return nil, err
	}
	nav := response.Data.Nav.toDomain()
	return &nav, nil
}

// RefuelShip fills the tank at the current market. The ship must be docked.
func (c *SpaceTradersClient) RefuelShip(ctx context.Context, symbol string) (*navigation.RefuelResult, error) {
	var response envelope[struct {
		Fuel        navigation.Fuel `json:"fuel"`
		Transaction transactionDTO  `json:"transaction"`
	}]
	if err := c.request(ctx, "RefuelShip", http.MethodPost, fmt.Sprintf("/my/ships/%s/refuel", symbol), map[string]any{}, &response); err != nil {
		return nil, err
	}

	return &navigation.RefuelResult{
		Fuel:        response.Data.Fuel,
		FuelAdded:   response.Data.Transaction.Units,
		CreditsCost: response.Data.Transaction.TotalPrice,
	}, nil
}

// ExtractResources mines the waypoint the ship is orbiting
func (c *SpaceTradersClient) ExtractResources(ctx context.Context, symbol string) (*navigation.ExtractionResult, error) {
	var response envelope[struct {
		Cooldown   navigation.Cooldown `json:"cooldown"`
		Extraction struct {
			Yield navigation.ExtractionYield `json:"yield"`
		} `json:"extraction"`
		Cargo navigation.Cargo `json:"cargo"`
	}]
	if err := c.request(ctx, "ExtractResources", http.MethodPost, fmt.Sprintf("/my/ships/%s/extract", symbol), nil, &response); err != nil {
		return nil, err
	}

	return &navigation.ExtractionResult{
		Yield:    response.Data.Extraction.Yield,
		Cooldown: response.Data.Cooldown,
		Cargo:    response.Data.Cargo,
	}, nil
}

// SellCargo sells units of tradeSymbol at the current market. The ship must be docked.
func (c *SpaceTradersClient) SellCargo(ctx context.Context, symbol, tradeSymbol string, units int) (*market.SellResult, error) {
	var response envelope[struct {
		Transaction transactionDTO `json:"transaction"`
	}]
	body := map[string]any{"symbol": tradeSymbol, "units": units}
	if err := c.request(ctx, "SellCargo", http.MethodPost, fmt.Sprintf("/my/ships/%s/sell", symbol), body, &response); err != nil {
		return nil, err
	}

	return &market.SellResult{
		TradeSymbol:  response.Data.Transaction.TradeSymbol,
		UnitsSold:    response.Data.Transaction.Units,
		TotalRevenue: response.Data.Transaction.TotalPrice,
	}, nil
}

// PurchaseShip buys a ship of shipType at the shipyard on waypointSymbol
func (c *SpaceTradersClient) PurchaseShip(ctx context.Context, shipType, waypointSymbol string) (*shipyard.PurchaseResult, error) {
	var response envelope[struct {
		Agent       agentRef       `json:"agent"`
		Ship        shipDTO        `json:"ship"`
		Transaction transactionDTO `json:"transaction"`
	}]
	body := map[string]string{"shipType": shipType, "waypointSymbol": waypointSymbol}
	if err := c.request(ctx, "PurchaseShip", http.MethodPost, "/my/ships", body, &response); err != nil {
		return nil, err
	}

	return &shipyard.PurchaseResult{
		ShipSymbol: response.Data.Ship.Symbol,
		ShipType:   response.Data.Transaction.ShipType,
		Price:      response.Data.Transaction.Price,
		Credits:    response.Data.Agent.Credits,
	}, nil
}
