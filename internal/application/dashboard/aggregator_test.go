package dashboard_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacetraders-dashboard/internal/adapters/api"
	"github.com/andrescamacho/spacetraders-dashboard/internal/adapters/graph"
	"github.com/andrescamacho/spacetraders-dashboard/internal/application/dashboard"
	"github.com/andrescamacho/spacetraders-dashboard/internal/application/mediator"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/contract"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/market"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/navigation"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/player"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/shared"
	"github.com/andrescamacho/spacetraders-dashboard/test/helpers"
)

const systemSymbol = "X1-GZ7"

func trait(symbol string) shared.WaypointTrait {
	return shared.WaypointTrait{Symbol: symbol, Name: symbol}
}

func fixtureWaypoints() []shared.Waypoint {
	return []shared.Waypoint{
		{Symbol: "X1-GZ7-A1", SystemSymbol: systemSymbol, Type: shared.WaypointTypePlanet, X: 0, Y: 0,
			Traits: []shared.WaypointTrait{trait(shared.TraitMarketplace), trait(shared.TraitShipyard)}},
		{Symbol: "X1-GZ7-B2", SystemSymbol: systemSymbol, Type: shared.WaypointTypeMoon, X: 3, Y: 4},
		{Symbol: "X1-GZ7-C3", SystemSymbol: systemSymbol, Type: shared.WaypointTypeAsteroid, X: 10, Y: 0,
			Traits: []shared.WaypointTrait{trait("COMMON_METAL_DEPOSITS")}},
		{Symbol: "X1-GZ7-D4", SystemSymbol: systemSymbol, Type: shared.WaypointTypeFuelStation, X: 1, Y: 1,
			Traits: []shared.WaypointTrait{trait(shared.TraitMarketplace)}},
	}
}

func shipAt(symbol, waypoint string) *navigation.Ship {
	return &navigation.Ship{
		Symbol: symbol,
		Nav: navigation.Nav{
			SystemSymbol:   systemSymbol,
			WaypointSymbol: waypoint,
			Status:         navigation.NavStatusDocked,
		},
		Fuel: navigation.Fuel{Current: 100, Capacity: 400},
	}
}

type fixture struct {
	client     *helpers.MockAPIClient
	aggregator *dashboard.Aggregator
}

func newFixture() *fixture {
	client := helpers.NewMockAPIClient()
	client.SetAgent(&player.Agent{Symbol: "DASH", Headquarters: "X1-GZ7-A1", Credits: 175000})
	client.SetSystemWaypoints(systemSymbol, fixtureWaypoints())
	client.SetMarket("X1-GZ7-A1", &market.Market{
		Symbol:   "X1-GZ7-A1",
		Exchange: []market.TradeRef{{Symbol: market.FuelSymbol}},
	})
	client.SetMarket("X1-GZ7-D4", &market.Market{
		Symbol:  "X1-GZ7-D4",
		Exports: []market.TradeRef{{Symbol: "IRON"}},
	})

	waypoints := graph.NewWaypointCache(api.NewWaypointFetcher(client, api.MaxPageSize), time.Minute)
	return &fixture{
		client:     client,
		aggregator: dashboard.NewAggregator(client, waypoints),
	}
}

func TestResolveShipContext_BySymbol(t *testing.T) {
	// Arrange
	f := newFixture()
	f.client.AddShip(shipAt("DASH-1", "X1-GZ7-A1"))

	// Act
	sc, err := f.aggregator.ResolveShipContext(context.Background(), dashboard.BySymbol("DASH-1"))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "DASH-1", sc.Ship.Symbol)
	assert.Equal(t, "X1-GZ7-A1", sc.Waypoint.Symbol)
	assert.Equal(t, market.FeatureSet{market.FeatureMarketplace, market.FeatureShipyard, market.FeatureFuel}, sc.Features)
	assert.Equal(t, 1, f.client.CallCount("GetShip"))
	assert.Equal(t, 1, f.client.CallCount("GetMarket"))
}

func TestResolveShipContext_FromShipSkipsFetch(t *testing.T) {
	f := newFixture()

	sc, err := f.aggregator.ResolveShipContext(context.Background(), dashboard.FromShip(shipAt("DASH-2", "X1-GZ7-D4")))

	require.NoError(t, err)
	assert.Equal(t, market.FeatureSet{market.FeatureMarketplace}, sc.Features)
	assert.Zero(t, f.client.CallCount("GetShip"))
}

func TestResolveShipContext_NoMarketplaceNoLookup(t *testing.T) {
	f := newFixture()

	sc, err := f.aggregator.ResolveShipContext(context.Background(), dashboard.FromShip(shipAt("DASH-3", "X1-GZ7-C3")))

	require.NoError(t, err)
	assert.Empty(t, sc.Features)
	assert.Zero(t, f.client.CallCount("GetMarket"))
}

func TestResolveShipContext_WaypointMissingFromSystem(t *testing.T) {
	f := newFixture()

	_, err := f.aggregator.ResolveShipContext(context.Background(), dashboard.FromShip(shipAt("DASH-4", "X1-GZ7-ZZ9")))

	require.Error(t, err)
	assert.True(t, shared.IsNotFound(err))
	var nf *shared.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "X1-GZ7-ZZ9", nf.Symbol)
	assert.Equal(t, systemSymbol, nf.Scope)
}

func TestResolveShipContext_MarketFailurePropagates(t *testing.T) {
	f := newFixture()
	f.client.SetError("GetMarket", shared.NewUpstreamError("get market", 503, "maintenance", nil))

	_, err := f.aggregator.ResolveShipContext(context.Background(), dashboard.FromShip(shipAt("DASH-1", "X1-GZ7-A1")))

	require.Error(t, err)
	assert.True(t, shared.IsUpstream(err))
}

func TestResolveShipContext_ShipFetchFailure(t *testing.T) {
	f := newFixture()

	_, err := f.aggregator.ResolveShipContext(context.Background(), dashboard.BySymbol("GHOST"))

	require.Error(t, err)
	assert.True(t, shared.IsUpstream(err))
	assert.Zero(t, f.client.CallCount("ListWaypoints"))
}

func TestNavChoices_RankedFromCurrentWaypoint(t *testing.T) {
	// Arrange
	f := newFixture()
	f.client.AddShip(shipAt("DASH-1", "X1-GZ7-A1"))

	// Act
	choices, err := f.aggregator.NavChoices(context.Background(), "DASH-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "X1-GZ7-A1", choices.Origin.Symbol)

	var symbols []string
	for _, c := range choices.Choices {
		symbols = append(symbols, c.Waypoint.Symbol)
	}
	assert.Equal(t, []string{"X1-GZ7-A1", "X1-GZ7-D4", "X1-GZ7-B2", "X1-GZ7-C3"}, symbols)
	assert.Zero(t, choices.Choices[0].Distance)
	assert.InDelta(t, math.Sqrt2, choices.Choices[1].Distance, 1e-9)
	assert.InDelta(t, 5.0, choices.Choices[2].Distance, 1e-9)
	assert.Zero(t, f.client.CallCount("GetMarket"))
}

func TestOverview_CollectsEverything(t *testing.T) {
	// Arrange
	f := newFixture()
	f.client.AddShip(shipAt("DASH-1", "X1-GZ7-A1"))
	f.client.AddShip(shipAt("DASH-2", "X1-GZ7-C3"))
	f.client.SetContracts([]contract.Contract{{ID: "c-1", FactionSymbol: "COSMIC"}})

	// Act
	ov, err := f.aggregator.Overview(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "DASH", ov.Agent.Symbol)
	assert.Equal(t, systemSymbol, ov.SystemSymbol)
	require.Len(t, ov.Contracts, 1)
	require.Len(t, ov.Ships, 2)
	assert.Equal(t, "DASH-1", ov.Ships[0].Ship.Symbol)
	assert.Equal(t, "DASH-2", ov.Ships[1].Ship.Symbol)
	assert.Equal(t, "X1-GZ7-C3", ov.Ships[1].Waypoint.Symbol)

	require.Len(t, ov.Waypoints.Shipyards, 1)
	assert.Equal(t, "X1-GZ7-A1", ov.Waypoints.Shipyards[0].Symbol)
	require.Len(t, ov.Waypoints.Asteroids, 1)
	require.Len(t, ov.Waypoints.FuelStations, 1)
	require.Len(t, ov.Waypoints.Other, 2)
	assert.Equal(t, "X1-GZ7-A1", ov.Waypoints.Other[0].Symbol, "planets sort before moons")

	// Every consumer of the system shares one cached listing
	assert.Equal(t, 1, f.client.CallCount("ListWaypoints"))
	assert.Zero(t, f.client.CallCount("GetShip"))
}

func TestOverview_AgentFailure(t *testing.T) {
	f := newFixture()
	f.client.SetError("GetAgent", shared.NewUpstreamError("get agent", 401, "bad token", nil))

	_, err := f.aggregator.Overview(context.Background())

	require.Error(t, err)
	assert.True(t, shared.IsUpstream(err))
	assert.Zero(t, f.client.CallCount("ListShips"))
}

func TestOverview_ContractsFailure(t *testing.T) {
	f := newFixture()
	boom := errors.New("boom")
	f.client.SetError("ListContracts", boom)

	_, err := f.aggregator.Overview(context.Background())

	assert.ErrorIs(t, err, boom)
}

func TestGroupWaypoints_ShipyardAlsoInTypeSection(t *testing.T) {
	groups := dashboard.GroupWaypoints(fixtureWaypoints())

	assert.Len(t, groups.Shipyards, 1)
	assert.Equal(t, []string{"X1-GZ7-A1", "X1-GZ7-B2"}, []string{groups.Other[0].Symbol, groups.Other[1].Symbol})
	assert.Equal(t, "X1-GZ7-C3", groups.Asteroids[0].Symbol)
	assert.Equal(t, "X1-GZ7-D4", groups.FuelStations[0].Symbol)
}

func TestQueries_DispatchThroughMediator(t *testing.T) {
	// Arrange
	f := newFixture()
	f.client.AddShip(shipAt("DASH-1", "X1-GZ7-B2"))
	med := mediator.NewMediator()
	require.NoError(t, dashboard.RegisterHandlers(med, f.aggregator))

	// Act
	sc, err := mediator.Send[*dashboard.ShipContext](context.Background(), med, &dashboard.GetShipContextQuery{ShipSymbol: "DASH-1"})
	require.NoError(t, err)
	choices, err := mediator.Send[*dashboard.NavChoices](context.Background(), med, &dashboard.GetNavChoicesQuery{ShipSymbol: "DASH-1"})
	require.NoError(t, err)

	// Assert
	assert.Equal(t, "X1-GZ7-B2", sc.Waypoint.Symbol)
	assert.Equal(t, "X1-GZ7-B2", choices.Choices[0].Waypoint.Symbol)
}
