package navigation

import (
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/shared"
)

// NavStatus represents ship navigation status
type NavStatus string

const (
	NavStatusDocked    NavStatus = "DOCKED"
	NavStatusInOrbit   NavStatus = "IN_ORBIT"
	NavStatusInTransit NavStatus = "IN_TRANSIT"
)

// Ship is a snapshot of a ship as last reported by the API.
//
// Ships are never cached: every view re-fetches them because nav status,
// fuel and cargo change far more often than waypoint layout.
type Ship struct {
	Symbol   string   `json:"symbol"`
	Role     string   `json:"role"`
	Nav      Nav      `json:"nav"`
	Fuel     Fuel     `json:"fuel"`
	Cargo    Cargo    `json:"cargo"`
	Cooldown Cooldown `json:"cooldown"`
}

type Nav struct {
	SystemSymbol   string    `json:"systemSymbol"`
	WaypointSymbol string    `json:"waypointSymbol"`
	Status         NavStatus `json:"status"`
	FlightMode     string    `json:"flightMode"`
	Route          Route     `json:"route"`
}

type Route struct {
	OriginSymbol      string `json:"originSymbol"`
	DestinationSymbol string `json:"destinationSymbol"`
	DepartureTime     string `json:"departureTime"`
	Arrival           string `json:"arrival"`
}

type Fuel struct {
	Current  int `json:"current"`
	Capacity int `json:"capacity"`
}

type Cargo struct {
	Capacity  int         `json:"capacity"`
	Units     int         `json:"units"`
	Inventory []CargoItem `json:"inventory"`
}

type CargoItem struct {
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Units       int    `json:"units"`
}

// Cooldown mirrors the API's reactor cooldown. Expiration is empty when the
// ship is not cooling down.
type Cooldown struct {
	TotalSeconds     int    `json:"totalSeconds"`
	RemainingSeconds int    `json:"remainingSeconds"`
	Expiration       string `json:"expiration,omitempty"`
}

func (s *Ship) IsDocked() bool {
	return s.Nav.Status == NavStatusDocked
}

func (s *Ship) IsInOrbit() bool {
	return s.Nav.Status == NavStatusInOrbit
}

func (s *Ship) IsInTransit() bool {
	return s.Nav.Status == NavStatusInTransit
}

// OnCooldown reports whether the reactor cooldown is still running at clock.Now()
func (s *Ship) OnCooldown(clock shared.Clock) bool {
	if s.Cooldown.Expiration == "" {
		return false
	}
	at, err := shared.NewArrivalTime(s.Cooldown.Expiration)
	if err != nil {
		return false
	}
	return !at.HasArrived(clock)
}

// NeedsPolling reports whether the ship's view should keep refreshing itself:
// the ship is moving or cooling down, so its state will change without user input.
func (s *Ship) NeedsPolling(clock shared.Clock) bool {
	return s.IsInTransit() || s.OnCooldown(clock)
}

func (s *Ship) FuelFull() bool {
	return s.Fuel.Current >= s.Fuel.Capacity
}

func (s *Ship) HasCargo() bool {
	return s.Cargo.Units > 0
}

// NavigationResult is the API's answer to a navigate request
type NavigationResult struct {
	Nav          Nav
	Fuel         Fuel
	FuelConsumed int
}

type RefuelResult struct {
	Fuel        Fuel
	FuelAdded   int
	CreditsCost int
}

// ExtractionYield is what a single extraction put in the hold
type ExtractionYield struct {
	Symbol string
	Units  int
}

type ExtractionResult struct {
	Yield    ExtractionYield
	Cooldown Cooldown
	Cargo    Cargo
}
