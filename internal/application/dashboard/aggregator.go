package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/contract"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/market"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/navigation"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/player"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/ports"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/shared"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/system"
)

// maxConcurrentResolves bounds the ship contexts resolved in parallel for the overview
const maxConcurrentResolves = 4

// ShipRef names a ship either by symbol or by an already fetched snapshot
type ShipRef struct {
	Symbol string
	Ship   *navigation.Ship
}

// BySymbol refers to a ship that still has to be fetched
func BySymbol(symbol string) ShipRef {
	return ShipRef{Symbol: symbol}
}

// FromShip refers to a ship the caller already holds
func FromShip(ship *navigation.Ship) ShipRef {
	return ShipRef{Symbol: ship.Symbol, Ship: ship}
}

// ShipContext is a ship together with the waypoint it is at and what that waypoint offers
type ShipContext struct {
	Ship     navigation.Ship
	Waypoint shared.Waypoint
	Features market.FeatureSet
}

// NavChoices is the ranked list of destinations for a ship
type NavChoices struct {
	Ship    navigation.Ship
	Origin  shared.Waypoint
	Choices []navigation.RankedWaypoint
}

// WaypointGroups splits a system's waypoints into the overview's sections.
// A shipyard also appears in its type section.
type WaypointGroups struct {
	Shipyards    []shared.Waypoint
	Other        []shared.Waypoint
	FuelStations []shared.Waypoint
	Asteroids    []shared.Waypoint
}

// Overview is everything the index page shows
type Overview struct {
	Agent        player.Agent
	Contracts    []contract.Contract
	Ships        []ShipContext
	SystemSymbol string
	Waypoints    WaypointGroups
}

// Aggregator combines API reads with cached waypoint lists into view models.
// It never retries: upstream failures go straight back to the caller.
type Aggregator struct {
	client    ports.APIClient
	waypoints system.WaypointProvider
}

// NewAggregator creates an aggregator over the API client and the waypoint cache
func NewAggregator(client ports.APIClient, waypoints system.WaypointProvider) *Aggregator {
	return &Aggregator{
		client:    client,
		waypoints: waypoints,
	}
}

// ResolveShipContext loads the ship if needed, locates its current waypoint in the
// cached system listing and classifies that waypoint's features.
func (a *Aggregator) ResolveShipContext(ctx context.Context, ref ShipRef) (*ShipContext, error) {
	ship, waypoint, _, err := a.locate(ctx, ref)
	if err != nil {
		return nil, err
	}

	features, err := market.Classify(ctx, *waypoint, a.client)
	if err != nil {
		return nil, fmt.Errorf("failed to classify waypoint %s: %w", waypoint.Symbol, err)
	}

	return &ShipContext{
		Ship:     *ship,
		Waypoint: *waypoint,
		Features: features,
	}, nil
}

// NavChoices ranks every waypoint of the ship's system by distance from its current waypoint
func (a *Aggregator) NavChoices(ctx context.Context, shipSymbol string) (*NavChoices, error) {
	ship, origin, waypoints, err := a.locate(ctx, BySymbol(shipSymbol))
	if err != nil {
		return nil, err
	}

	return &NavChoices{
		Ship:    *ship,
		Origin:  *origin,
		Choices: navigation.Rank(*origin, waypoints),
	}, nil
}

// Overview gathers the agent, its contracts, every ship with its context and the
// headquarters system's waypoints.
func (a *Aggregator) Overview(ctx context.Context) (*Overview, error) {
	agent, err := a.client.GetAgent(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	systemSymbol := agent.HomeSystem()

	var (
		contracts []contract.Contract
		ships     []navigation.Ship
		waypoints []shared.Waypoint
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if contracts, err = a.client.ListContracts(gctx); err != nil {
			return fmt.Errorf("failed to list contracts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if ships, err = a.client.ListShips(gctx); err != nil {
			return fmt.Errorf("failed to list ships: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if waypoints, err = a.waypoints.GetSystemWaypoints(gctx, systemSymbol); err != nil {
			return fmt.Errorf("failed to get waypoints for %s: %w", systemSymbol, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	contexts, err := a.resolveAll(ctx, ships)
	if err != nil {
		return nil, err
	}

	return &Overview{
		Agent:        *agent,
		Contracts:    contracts,
		Ships:        contexts,
		SystemSymbol: systemSymbol,
		Waypoints:    GroupWaypoints(waypoints),
	}, nil
}

// resolveAll resolves ship contexts concurrently, keeping the input order
func (a *Aggregator) resolveAll(ctx context.Context, ships []navigation.Ship) ([]ShipContext, error) {
	contexts := make([]ShipContext, len(ships))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentResolves)
	for i := range ships {
		g.Go(func() error {
			sc, err := a.ResolveShipContext(gctx, FromShip(&ships[i]))
			if err != nil {
				return err
			}
			contexts[i] = *sc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return contexts, nil
}

func (a *Aggregator) locate(ctx context.Context, ref ShipRef) (*navigation.Ship, *shared.Waypoint, []shared.Waypoint, error) {
	ship := ref.Ship
	if ship == nil {
		var err error
		ship, err = a.client.GetShip(ctx, ref.Symbol)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to get ship %s: %w", ref.Symbol, err)
		}
	}

	systemSymbol := ship.Nav.SystemSymbol
	if systemSymbol == "" {
		systemSymbol = shared.ExtractSystemSymbol(ship.Nav.WaypointSymbol)
	}

	waypoints, err := a.waypoints.GetSystemWaypoints(ctx, systemSymbol)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to get waypoints for %s: %w", systemSymbol, err)
	}

	waypoint, ok := shared.FindWaypoint(waypoints, ship.Nav.WaypointSymbol)
	if !ok {
		return nil, nil, nil, shared.NewNotFoundError("waypoint", ship.Nav.WaypointSymbol, systemSymbol)
	}

	return ship, waypoint, waypoints, nil
}

// GroupWaypoints partitions waypoints into the overview sections, preserving order
func GroupWaypoints(waypoints []shared.Waypoint) WaypointGroups {
	var groups WaypointGroups
	for _, wp := range waypoints {
		if wp.HasTrait(shared.TraitShipyard) {
			groups.Shipyards = append(groups.Shipyards, wp)
		}
		switch wp.Type {
		case shared.WaypointTypeAsteroid:
			groups.Asteroids = append(groups.Asteroids, wp)
		case shared.WaypointTypeFuelStation:
			groups.FuelStations = append(groups.FuelStations, wp)
		default:
			groups.Other = append(groups.Other, wp)
		}
	}
	return groups
}
