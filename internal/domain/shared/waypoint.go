package shared

import (
	"fmt"
	"math"
)

// WaypointType is the upstream waypoint type tag (PLANET, MOON, ASTEROID, ...)
type WaypointType string

const (
	WaypointTypePlanet         WaypointType = "PLANET"
	WaypointTypeGasGiant       WaypointType = "GAS_GIANT"
	WaypointTypeMoon           WaypointType = "MOON"
	WaypointTypeOrbitalStation WaypointType = "ORBITAL_STATION"
	WaypointTypeJumpGate       WaypointType = "JUMP_GATE"
	WaypointTypeAsteroidField  WaypointType = "ASTEROID_FIELD"
	WaypointTypeAsteroid       WaypointType = "ASTEROID"
	WaypointTypeEngineeredAst  WaypointType = "ENGINEERED_ASTEROID"
	WaypointTypeAsteroidBase   WaypointType = "ASTEROID_BASE"
	WaypointTypeNebula         WaypointType = "NEBULA"
	WaypointTypeDebrisField    WaypointType = "DEBRIS_FIELD"
	WaypointTypeGravityWell    WaypointType = "GRAVITY_WELL"
	WaypointTypeArtificialGrav WaypointType = "ARTIFICIAL_GRAVITY_WELL"
	WaypointTypeFuelStation    WaypointType = "FUEL_STATION"
)

var waypointTypeRank = map[WaypointType]int{
	WaypointTypePlanet:         0,
	WaypointTypeGasGiant:       1,
	WaypointTypeMoon:           2,
	WaypointTypeOrbitalStation: 3,
	WaypointTypeJumpGate:       4,
	WaypointTypeAsteroidField:  5,
	WaypointTypeAsteroid:       6,
	WaypointTypeEngineeredAst:  7,
	WaypointTypeAsteroidBase:   8,
	WaypointTypeNebula:         9,
	WaypointTypeDebrisField:    10,
	WaypointTypeGravityWell:    11,
	WaypointTypeArtificialGrav: 12,
	WaypointTypeFuelStation:    13,
}

// Rank is the type's position in the upstream enum, which is the order the
// dashboard lists waypoints in. Unknown types rank after every known one.
func (t WaypointType) Rank() int {
	if r, ok := waypointTypeRank[t]; ok {
		return r
	}
	return len(waypointTypeRank)
}

// Trait symbols the dashboard reacts to. Every other trait is display-only.
const (
	TraitMarketplace = "MARKETPLACE"
	TraitShipyard    = "SHIPYARD"
)

// WaypointTrait is a descriptive tag on a waypoint
type WaypointTrait struct {
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Waypoint represents an immutable location in space.
// Waypoints are fetched per system and never mutated locally.
type Waypoint struct {
	Symbol       string          `json:"symbol"`
	Type         WaypointType    `json:"type"`
	SystemSymbol string          `json:"systemSymbol"`
	X            int             `json:"x"`
	Y            int             `json:"y"`
	Traits       []WaypointTrait `json:"traits,omitempty"`
	Orbitals     []string        `json:"orbitals,omitempty"`
}

// NewWaypoint creates a new waypoint with validation
func NewWaypoint(symbol string, waypointType WaypointType, x, y int) (*Waypoint, error) {
	if symbol == "" {
		return nil, NewValidationError("symbol", "cannot be empty")
	}

	return &Waypoint{
		Symbol:       symbol,
		Type:         waypointType,
		SystemSymbol: ExtractSystemSymbol(symbol),
		X:            x,
		Y:            y,
		Traits:       []WaypointTrait{},
		Orbitals:     []string{},
	}, nil
}

// DistanceTo calculates Euclidean distance to another waypoint
func (w *Waypoint) DistanceTo(other *Waypoint) float64 {
	dx := float64(other.X - w.X)
	dy := float64(other.Y - w.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// HasTrait reports whether the waypoint carries the given trait symbol
func (w *Waypoint) HasTrait(symbol string) bool {
	for _, t := range w.Traits {
		if t.Symbol == symbol {
			return true
		}
	}
	return false
}

// IsOrbitalOf checks if this waypoint orbits another
func (w *Waypoint) IsOrbitalOf(other *Waypoint) bool {
	for _, orbital := range w.Orbitals {
		if orbital == other.Symbol {
			return true
		}
	}
	for _, orbital := range other.Orbitals {
		if orbital == w.Symbol {
			return true
		}
	}
	return false
}

func (w *Waypoint) String() string {
	return fmt.Sprintf("Waypoint(%s)", w.Symbol)
}

// FindWaypoint returns the waypoint with the given symbol from a list
func FindWaypoint(waypoints []Waypoint, symbol string) (*Waypoint, bool) {
	for i := range waypoints {
		if waypoints[i].Symbol == symbol {
			wp := waypoints[i]
			return &wp, true
		}
	}
	return nil, false
}

// ExtractSystemSymbol extracts the system symbol from a waypoint symbol
// by finding the last hyphen and returning everything before it.
// Example: "X1-AB12-C3D4" -> "X1-AB12"
func ExtractSystemSymbol(waypointSymbol string) string {
	systemSymbol := waypointSymbol
	for i := len(waypointSymbol) - 1; i >= 0; i-- {
		if waypointSymbol[i] == '-' {
			systemSymbol = waypointSymbol[:i]
			break
		}
	}
	return systemSymbol
}
