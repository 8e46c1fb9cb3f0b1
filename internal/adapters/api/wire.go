package api

import (
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/navigation"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/shared"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/system"
)

// Response shapes that differ from the domain types. Everything else
// (agent, contracts, markets, shipyards) decodes straight into the domain.

type envelope[T any] struct {
	Data T                     `json:"data"`
	Meta system.PaginationMeta `json:"meta"`
}

type symbolRef struct {
	Symbol string `json:"symbol"`
}

type waypointDTO struct {
	Symbol       string                 `json:"symbol"`
	Type         string                 `json:"type"`
	SystemSymbol string                 `json:"systemSymbol"`
	X            int                    `json:"x"`
	Y            int                    `json:"y"`
	Orbitals     []symbolRef            `json:"orbitals"`
	Traits       []shared.WaypointTrait `json:"traits"`
}

func (w waypointDTO) toDomain() shared.Waypoint {
	orbitals := make([]string, len(w.Orbitals))
	for i, o := range w.Orbitals {
		orbitals[i] = o.Symbol
	}
	systemSymbol := w.SystemSymbol
	if systemSymbol == "" {
		systemSymbol = shared.ExtractSystemSymbol(w.Symbol)
	}
	traits := w.Traits
	if traits == nil {
		traits = []shared.WaypointTrait{}
	}

	return shared.Waypoint{
		Symbol:       w.Symbol,
		Type:         shared.WaypointType(w.Type),
		SystemSymbol: systemSymbol,
		X:            w.X,
		Y:            w.Y,
		Traits:       traits,
		Orbitals:     orbitals,
	}
}

type navDTO struct {
	SystemSymbol   string `json:"systemSymbol"`
	WaypointSymbol string `json:"waypointSymbol"`
	Status         string `json:"status"`
	FlightMode     string `json:"flightMode"`
	Route          struct {
		Origin        symbolRef `json:"origin"`
		Destination   symbolRef `json:"destination"`
		DepartureTime string    `json:"departureTime"`
		Arrival       string    `json:"arrival"`
	} `json:"route"`
}

func (n navDTO) toDomain() navigation.Nav {
	return navigation.Nav{
		SystemSymbol:   n.SystemSymbol,
		WaypointSymbol: n.WaypointSymbol,
		Status:         navigation.NavStatus(n.Status),
		FlightMode:     n.FlightMode,
		Route: navigation.Route{
			OriginSymbol:      n.Route.Origin.Symbol,
			DestinationSymbol: n.Route.Destination.Symbol,
			DepartureTime:     n.Route.DepartureTime,
			Arrival:           n.Route.Arrival,
		},
	}
}

type shipDTO struct {
	Symbol       string `json:"symbol"`
	Registration struct {
		Role string `json:"role"`
	} `json:"registration"`
	Nav      navDTO              `json:"nav"`
	Fuel     navigation.Fuel     `json:"fuel"`
	Cargo    navigation.Cargo    `json:"cargo"`
	Cooldown navigation.Cooldown `json:"cooldown"`
}

func (s shipDTO) toDomain() navigation.Ship {
	return navigation.Ship{
		Symbol:   s.Symbol,
		Role:     s.Registration.Role,
		Nav:      s.Nav.toDomain(),
		Fuel:     s.Fuel,
		Cargo:    s.Cargo,
		Cooldown: s.Cooldown,
	}
}

type transactionDTO struct {
	WaypointSymbol string `json:"waypointSymbol"`
	ShipSymbol     string `json:"shipSymbol"`
	ShipType       string `json:"shipType"`
	TradeSymbol    string `json:"tradeSymbol"`
	Units          int    `json:"units"`
	TotalPrice     int    `json:"totalPrice"`
	Price          int    `json:"price"`
}

type agentRef struct {
	Credits int64 `json:"credits"`
}
