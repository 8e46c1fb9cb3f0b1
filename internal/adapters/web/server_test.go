package web_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacetraders-dashboard/internal/adapters/api"
	"github.com/andrescamacho/spacetraders-dashboard/internal/adapters/graph"
	"github.com/andrescamacho/spacetraders-dashboard/internal/adapters/web"
	"github.com/andrescamacho/spacetraders-dashboard/internal/application/dashboard"
	"github.com/andrescamacho/spacetraders-dashboard/internal/application/mediator"
	shipCommands "github.com/andrescamacho/spacetraders-dashboard/internal/application/ship/commands"
	appShipyard "github.com/andrescamacho/spacetraders-dashboard/internal/application/shipyard"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/contract"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/market"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/navigation"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/player"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/shared"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/shipyard"
	"github.com/andrescamacho/spacetraders-dashboard/test/helpers"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type testServer struct {
	client  *helpers.MockAPIClient
	handler http.Handler
}

func newTestServer(t *testing.T, cfg web.Config) *testServer {
	t.Helper()

	client := helpers.NewMockAPIClient()
	client.SetAgent(&player.Agent{Symbol: "DASH", Headquarters: "X1-GZ7-A1", Credits: 175000, StartingFaction: "COSMIC"})
	client.SetSystemWaypoints("X1-GZ7", []shared.Waypoint{
		{Symbol: "X1-GZ7-A1", SystemSymbol: "X1-GZ7", Type: shared.WaypointTypePlanet,
			Traits: []shared.WaypointTrait{
				{Symbol: shared.TraitMarketplace, Name: "Marketplace"},
				{Symbol: shared.TraitShipyard, Name: "Shipyard"},
			}},
		{Symbol: "X1-GZ7-B2", SystemSymbol: "X1-GZ7", Type: shared.WaypointTypeAsteroid, X: 6, Y: 8},
	})
	client.SetMarket("X1-GZ7-A1", &market.Market{Symbol: "X1-GZ7-A1", Exchange: []market.TradeRef{{Symbol: market.FuelSymbol}}})
	client.AddShip(&navigation.Ship{
		Symbol: "DASH-1",
		Role:   "COMMAND",
		Nav:    navigation.Nav{SystemSymbol: "X1-GZ7", WaypointSymbol: "X1-GZ7-A1", Status: navigation.NavStatusDocked},
		Fuel:   navigation.Fuel{Current: 300, Capacity: 400},
		Cargo: navigation.Cargo{Capacity: 40, Units: 5, Inventory: []navigation.CargoItem{
			{Symbol: "IRON_ORE", Name: "Iron Ore", Units: 5},
		}},
	})

	clock := shared.NewMockClock(now)
	waypoints := graph.NewWaypointCache(api.NewWaypointFetcher(client, api.MaxPageSize), time.Minute)
	med := mediator.NewMediator()
	med.RegisterMiddleware(mediator.LoggingMiddleware())
	require.NoError(t, dashboard.RegisterHandlers(med, dashboard.NewAggregator(client, waypoints)))
	require.NoError(t, shipCommands.RegisterHandlers(med, client))
	require.NoError(t, appShipyard.RegisterHandlers(med, client))

	srv, err := web.NewServer(cfg, med, clock, nil)
	require.NoError(t, err)

	return &testServer{client: client, handler: srv.Routes()}
}

func (ts *testServer) do(method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func TestIndex_RendersOverview(t *testing.T) {
	// Arrange
	ts := newTestServer(t, web.Config{})
	ts.client.SetContracts([]contract.Contract{{
		ID:            "clx-1",
		FactionSymbol: "COSMIC",
		Expiration:    now.Add(26 * time.Hour).Format(time.RFC3339),
		Terms: contract.Terms{
			Deadline: now.Add(90 * time.Minute).Format(time.RFC3339),
			Deliver:  []contract.Delivery{{TradeSymbol: "IRON_ORE", DestinationSymbol: "X1-GZ7-A1", UnitsRequired: 30, UnitsFulfilled: 5}},
		},
	}})

	// Act
	rec := ts.do(http.MethodGet, "/")

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "ship-DASH-1")
	assert.Contains(t, body, "clx-1")
	assert.Contains(t, body, "1d 2h")
	assert.Contains(t, body, "1h 30m")
	assert.Contains(t, body, "5/30 IRON_ORE to X1-GZ7-A1")
	assert.Contains(t, body, `href="/shipyard/X1-GZ7/X1-GZ7-A1"`)
	assert.Contains(t, body, "bi-fuel-pump")
	assert.Contains(t, body, "Dump cargo")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestIndex_NoContracts(t *testing.T) {
	ts := newTestServer(t, web.Config{})

	rec := ts.do(http.MethodGet, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "You have no contracts.")
}

func TestShipFragment_PollsWhileInTransit(t *testing.T) {
	ts := newTestServer(t, web.Config{})
	ship, _ := ts.client.GetShipFromMock("DASH-1")
	ship.Nav.Status = navigation.NavStatusInTransit
	ship.Nav.Route.Arrival = now.Add(95 * time.Second).Format(time.RFC3339)

	rec := ts.do(http.MethodGet, "/ship/DASH-1")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "up-poll")
	assert.Contains(t, body, `up-source="/ship/DASH-1"`)
	assert.Contains(t, body, "ETA: 1m 35s")
	assert.NotContains(t, body, "<html")
}

func TestShipFragment_IdleShipDoesNotPoll(t *testing.T) {
	ts := newTestServer(t, web.Config{})

	rec := ts.do(http.MethodGet, "/ship/DASH-1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "up-poll")
	assert.Contains(t, rec.Body.String(), "/ship_nav/DASH-1/orbit")
}

func TestShipFragment_UnknownShipIsBadGateway(t *testing.T) {
	ts := newTestServer(t, web.Config{})

	rec := ts.do(http.MethodGet, "/ship/GHOST")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Something went wrong")
}

func TestIndex_UpstreamDeadlineIsGatewayTimeout(t *testing.T) {
	// Arrange
	ts := newTestServer(t, web.Config{})
	ts.client.SetError("GetAgent", shared.NewUpstreamError("GetAgent", 0, "", fmt.Errorf("rate limiter: %w", context.DeadlineExceeded)))

	// Act
	rec := ts.do(http.MethodGet, "/")

	// Assert
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}

func TestShipFragment_WaypointMissingIsNotFound(t *testing.T) {
	ts := newTestServer(t, web.Config{})
	ship, _ := ts.client.GetShipFromMock("DASH-1")
	ship.Nav.WaypointSymbol = "X1-GZ7-ZZ"

	rec := ts.do(http.MethodGet, "/ship/DASH-1")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNavChoices_RankedByDistance(t *testing.T) {
	ts := newTestServer(t, web.Config{})

	rec := ts.do(http.MethodGet, "/ship_nav/DASH-1/choices")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	first := strings.Index(body, `action="/ship_nav/DASH-1/go/X1-GZ7-A1"`)
	second := strings.Index(body, `action="/ship_nav/DASH-1/go/X1-GZ7-B2"`)
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
	assert.Contains(t, body, "10.0")
}

func TestNavGo_OrbitsThenNavigatesAndRedirects(t *testing.T) {
	ts := newTestServer(t, web.Config{})

	rec := ts.do(http.MethodPost, "/ship_nav/DASH-1/go/X1-GZ7-B2")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, 1, ts.client.CallCount("OrbitShip"))
	assert.Equal(t, 1, ts.client.CallCount("NavigateShip"))
}

func TestDockOrbitRefuel_RerenderFragment(t *testing.T) {
	ts := newTestServer(t, web.Config{})

	rec := ts.do(http.MethodPost, "/ship_nav/DASH-1/orbit")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/ship_nav/DASH-1/dock")

	rec = ts.do(http.MethodPost, "/ship_nav/DASH-1/dock")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/ship_nav/DASH-1/orbit")

	rec = ts.do(http.MethodPost, "/ship_nav/DASH-1/refuel")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Refueled 100 units")
	assert.Contains(t, rec.Body.String(), "(Fuel 400/400)")
}

func TestExtract_ShowsYieldAndCooldown(t *testing.T) {
	ts := newTestServer(t, web.Config{})
	ts.client.SetExtractYield(navigation.ExtractionYield{Symbol: "ICE_WATER", Units: 7})

	rec := ts.do(http.MethodPost, "/ship_nav/DASH-1/extract")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Extracted 7 ICE_WATER")
}

func TestDumpCargo_SellsHold(t *testing.T) {
	ts := newTestServer(t, web.Config{})

	rec := ts.do(http.MethodPost, "/ship_cargo/DASH-1/dump")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sold 5 units for 50 credits")
	assert.NotContains(t, rec.Body.String(), "Dump cargo")
}

func TestShipyard_ListsShipsForSale(t *testing.T) {
	ts := newTestServer(t, web.Config{})
	ts.client.SetShipyard("X1-GZ7-A1", &shipyard.Shipyard{
		Symbol: "X1-GZ7-A1",
		Ships: []shipyard.Listing{{
			Type: "SHIP_MINING_DRONE", Name: "Mining Drone", Supply: "MODERATE", PurchasePrice: 42000,
			Frame: shipyard.Frame{FuelCapacity: 100},
		}},
	})

	rec := ts.do(http.MethodGet, "/shipyard/X1-GZ7/X1-GZ7-A1")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Mining Drone")
	assert.Contains(t, body, "Supply: moderate")
	assert.Contains(t, body, `action="/waypoints/X1-GZ7-A1/buy_ship/SHIP_MINING_DRONE"`)
}

func TestShipyard_NoShipPresent(t *testing.T) {
	ts := newTestServer(t, web.Config{})
	ts.client.SetShipyard("X1-GZ7-A1", &shipyard.Shipyard{Symbol: "X1-GZ7-A1", ShipTypes: []shipyard.ShipType{{Type: "SHIP_PROBE"}}})

	rec := ts.do(http.MethodGet, "/shipyard/X1-GZ7/X1-GZ7-A1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No ships available.")
	assert.Contains(t, rec.Body.String(), "ship probe")
}

func TestBuyShip_Redirects(t *testing.T) {
	ts := newTestServer(t, web.Config{})

	rec := ts.do(http.MethodPost, "/waypoints/X1-GZ7-A1/buy_ship/SHIP_PROBE")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, []string{"PurchaseShip(SHIP_PROBE,X1-GZ7-A1)"}, ts.client.Calls())
}

func TestStaticAssets_NoCache(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scripts.js"), []byte("console.log(1)"), 0o644))
	ts := newTestServer(t, web.Config{StaticDir: dir})

	rec := ts.do(http.MethodGet, "/scripts.js")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "console.log(1)", rec.Body.String())
}

func TestRateLimit(t *testing.T) {
	ts := newTestServer(t, web.Config{RateLimit: 1})

	first := ts.do(http.MethodGet, "/healthz")
	second := ts.do(http.MethodGet, "/healthz")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestRequestID_Echoed(t *testing.T) {
	ts := newTestServer(t, web.Config{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()

	ts.handler.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}
