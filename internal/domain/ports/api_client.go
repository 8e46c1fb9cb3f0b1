package ports

import (
	"context"

	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/contract"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/market"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/navigation"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/player"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/shipyard"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/system"
)

// APIClient is the domain's view of the SpaceTraders API.
//
// Defined here rather than next to the HTTP adapter so the application layer
// depends on the port and the adapter implements it:
//
//	application (queries/commands) ──► ports.APIClient ◄── adapters/api.Client
//
// Every method is a single request/response round trip. Failures surface as
// *shared.UpstreamError.
type APIClient interface {
	// Agent
	GetAgent(ctx context.Context) (*player.Agent, error)

	// Contracts
	ListContracts(ctx context.Context) ([]contract.Contract, error)

	// Waypoints
	ListWaypoints(ctx context.Context, systemSymbol string, page, limit int) (*system.WaypointsPage, error)

	// Markets and shipyards
	GetMarket(ctx context.Context, systemSymbol, waypointSymbol string) (*market.Market, error)
	GetShipyard(ctx context.Context, systemSymbol, waypointSymbol string) (*shipyard.Shipyard, error)

	// Ships
	GetShip(ctx context.Context, symbol string) (*navigation.Ship, error)
	ListShips(ctx context.Context) ([]navigation.Ship, error)
	NavigateShip(ctx context.Context, symbol, destination string) (*navigation.NavigationResult, error)
	OrbitShip(ctx context.Context, symbol string) (*navigation.Nav, error)
	DockShip(ctx context.Context, symbol string) (*navigation.Nav, error)
	RefuelShip(ctx context.Context, symbol string) (*navigation.RefuelResult, error)
	ExtractResources(ctx context.Context, symbol string) (*navigation.ExtractionResult, error)
	SellCargo(ctx context.Context, symbol, tradeSymbol string, units int) (*market.SellResult, error)
	PurchaseShip(ctx context.Context, shipType, waypointSymbol string) (*shipyard.PurchaseResult, error)
}
