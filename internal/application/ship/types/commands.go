package types

import (
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/market"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/navigation"
)

// Ship command types - shared between handlers and the web layer

// OrbitShipCommand - Command to put a ship into orbit at its current waypoint
type OrbitShipCommand struct {
	ShipSymbol string
}

// OrbitShipResponse - Response from orbit ship command
type OrbitShipResponse struct {
	Nav navigation.Nav
}

// DockShipCommand - Command to dock a ship at its current waypoint
type DockShipCommand struct {
	ShipSymbol string
}

// DockShipResponse - Response from dock ship command
type DockShipResponse struct {
	Nav navigation.Nav
}

// NavigateShipCommand - Command to fly a ship to a waypoint in its system.
// A docked ship is put into orbit first.
type NavigateShipCommand struct {
	ShipSymbol  string
	Destination string
}

// NavigateShipResponse - Response from navigate ship command
type NavigateShipResponse struct {
	Orbited bool
	Result  navigation.NavigationResult
}

// RefuelShipCommand - Command to fill a docked ship's tank at the current market
type RefuelShipCommand struct {
	ShipSymbol string
}

// RefuelShipResponse - Response from refuel ship command
type RefuelShipResponse struct {
	FuelAdded    int
	CreditsCost  int
	CurrentFuel  int
	FuelCapacity int
}

// ExtractResourcesCommand - Command to run the mining laser once
type ExtractResourcesCommand struct {
	ShipSymbol string
}

// ExtractResourcesResponse - Response from extract resources command
type ExtractResourcesResponse struct {
	Yield    navigation.ExtractionYield
	Cooldown navigation.Cooldown
}

// DumpCargoCommand - Command to sell the ship's whole hold at its current market
type DumpCargoCommand struct {
	ShipSymbol string
}

// DumpCargoResponse - Response from dump cargo command
type DumpCargoResponse struct {
	Sales        []market.SellResult
	UnitsSold    int
	TotalRevenue int
}
