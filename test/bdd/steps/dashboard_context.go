package steps

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/spacetraders-dashboard/internal/adapters/api"
	"github.com/andrescamacho/spacetraders-dashboard/internal/adapters/graph"
	"github.com/andrescamacho/spacetraders-dashboard/internal/application/dashboard"
	"github.com/andrescamacho/spacetraders-dashboard/internal/application/mediator"
	shipCmd "github.com/andrescamacho/spacetraders-dashboard/internal/application/ship/commands"
	shipTypes "github.com/andrescamacho/spacetraders-dashboard/internal/application/ship/types"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/market"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/navigation"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/shared"
	"github.com/andrescamacho/spacetraders-dashboard/test/helpers"
)

// dashboardContext drives ship commands and dashboard queries through a
// mediator backed by the in-memory API client
type dashboardContext struct {
	client   *helpers.MockAPIClient
	mediator mediator.Mediator

	shipContext *dashboard.ShipContext
	navChoices  *dashboard.NavChoices
	dumpResp    *shipTypes.DumpCargoResponse
	err         error
}

func (ctx *dashboardContext) reset() error {
	ctx.client = helpers.NewMockAPIClient()
	ctx.shipContext = nil
	ctx.navChoices = nil
	ctx.dumpResp = nil
	ctx.err = nil

	waypoints := graph.NewWaypointCache(api.NewWaypointFetcher(ctx.client, api.MaxPageSize), time.Minute)
	ctx.mediator = mediator.NewMediator()
	if err := dashboard.RegisterHandlers(ctx.mediator, dashboard.NewAggregator(ctx.client, waypoints)); err != nil {
		return err
	}
	return shipCmd.RegisterHandlers(ctx.mediator, ctx.client)
}

// Given steps

func (ctx *dashboardContext) theSystemHasWaypoints(systemSymbol string, table *godog.Table) error {
	var waypoints []shared.Waypoint
	for _, row := range table.Rows[1:] {
		x, err := strconv.Atoi(row.Cells[2].Value)
		if err != nil {
			return err
		}
		y, err := strconv.Atoi(row.Cells[3].Value)
		if err != nil {
			return err
		}

		wp := shared.Waypoint{
			Symbol:       row.Cells[0].Value,
			Type:         shared.WaypointType(row.Cells[1].Value),
			SystemSymbol: systemSymbol,
			X:            x,
			Y:            y,
		}
		if len(row.Cells) > 4 && row.Cells[4].Value != "" {
			for _, t := range strings.Split(row.Cells[4].Value, ",") {
				wp.Traits = append(wp.Traits, shared.WaypointTrait{Symbol: strings.TrimSpace(t)})
			}
		}
		waypoints = append(waypoints, wp)
	}

	ctx.client.SetSystemWaypoints(systemSymbol, waypoints)
	return nil
}

func (ctx *dashboardContext) theMarketAtTrades(waypointSymbol, goods string) error {
	mkt := &market.Market{Symbol: waypointSymbol}
	for _, g := range strings.Split(goods, ",") {
		mkt.Exchange = append(mkt.Exchange, market.TradeRef{Symbol: strings.TrimSpace(g)})
	}
	ctx.client.SetMarket(waypointSymbol, mkt)
	return nil
}

func (ctx *dashboardContext) aShipIsAt(shipSymbol, status, waypointSymbol string) error {
	navStatus := navigation.NavStatus(status)
	switch navStatus {
	case navigation.NavStatusDocked, navigation.NavStatusInOrbit, navigation.NavStatusInTransit:
	default:
		return fmt.Errorf("unknown nav status: %s", status)
	}

	ctx.client.AddShip(&navigation.Ship{
		Symbol: shipSymbol,
		Nav: navigation.Nav{
			SystemSymbol:   shared.ExtractSystemSymbol(waypointSymbol),
			WaypointSymbol: waypointSymbol,
			Status:         navStatus,
		},
		Fuel:  navigation.Fuel{Current: 100, Capacity: 400},
		Cargo: navigation.Cargo{Capacity: 40},
	})
	return nil
}

func (ctx *dashboardContext) theShipCarries(shipSymbol string, table *godog.Table) error {
	ship, ok := ctx.client.GetShipFromMock(shipSymbol)
	if !ok {
		return fmt.Errorf("ship %s not set up", shipSymbol)
	}

	for _, row := range table.Rows[1:] {
		units, err := strconv.Atoi(row.Cells[1].Value)
		if err != nil {
			return err
		}
		ship.Cargo.Inventory = append(ship.Cargo.Inventory, navigation.CargoItem{Symbol: row.Cells[0].Value, Units: units})
		ship.Cargo.Units += units
	}
	return nil
}

func (ctx *dashboardContext) theUpstreamRejects(method string) error {
	ctx.client.SetError(method, shared.NewUpstreamError(method, 400, "rejected", nil))
	return nil
}

// When steps

func (ctx *dashboardContext) iSendShipTo(shipSymbol, destination string) error {
	ctx.client.ResetCalls()
	_, ctx.err = ctx.mediator.Send(context.Background(), &shipTypes.NavigateShipCommand{ShipSymbol: shipSymbol, Destination: destination})
	return nil
}

func (ctx *dashboardContext) iDockShip(shipSymbol string) error {
	_, ctx.err = ctx.mediator.Send(context.Background(), &shipTypes.DockShipCommand{ShipSymbol: shipSymbol})
	return nil
}

func (ctx *dashboardContext) iOrbitShip(shipSymbol string) error {
	_, ctx.err = ctx.mediator.Send(context.Background(), &shipTypes.OrbitShipCommand{ShipSymbol: shipSymbol})
	return nil
}

func (ctx *dashboardContext) iDumpTheCargoOfShip(shipSymbol string) error {
	ctx.dumpResp, ctx.err = mediator.Send[*shipTypes.DumpCargoResponse](context.Background(), ctx.mediator, &shipTypes.DumpCargoCommand{ShipSymbol: shipSymbol})
	return nil
}

func (ctx *dashboardContext) iAskForNavigationChoicesForShip(shipSymbol string) error {
	ctx.navChoices, ctx.err = mediator.Send[*dashboard.NavChoices](context.Background(), ctx.mediator, &dashboard.GetNavChoicesQuery{ShipSymbol: shipSymbol})
	return nil
}

func (ctx *dashboardContext) iResolveTheContextOfShip(shipSymbol string) error {
	ctx.shipContext, ctx.err = mediator.Send[*dashboard.ShipContext](context.Background(), ctx.mediator, &dashboard.GetShipContextQuery{ShipSymbol: shipSymbol})
	return nil
}

// Then steps

func (ctx *dashboardContext) theOperationShouldSucceed() error {
	if ctx.err != nil {
		return fmt.Errorf("expected success, got: %w", ctx.err)
	}
	return nil
}

func (ctx *dashboardContext) theOperationShouldFailWith(expected string) error {
	if ctx.err == nil {
		return fmt.Errorf("expected error containing %q, got success", expected)
	}
	if !strings.Contains(ctx.err.Error(), expected) {
		return fmt.Errorf("expected error containing %q, got %q", expected, ctx.err.Error())
	}
	return nil
}

func (ctx *dashboardContext) theOperationShouldFailAsNotFound() error {
	if !shared.IsNotFound(ctx.err) {
		return fmt.Errorf("expected not found error, got %v", ctx.err)
	}
	return nil
}

func (ctx *dashboardContext) theShipShouldBe(shipSymbol, status string) error {
	ship, ok := ctx.client.GetShipFromMock(shipSymbol)
	if !ok {
		return fmt.Errorf("ship %s not found", shipSymbol)
	}
	if string(ship.Nav.Status) != status {
		return fmt.Errorf("expected ship %s to be %s, got %s", shipSymbol, status, ship.Nav.Status)
	}
	return nil
}

func (ctx *dashboardContext) theUpstreamCallsShouldBe(table *godog.Table) error {
	calls := ctx.client.Calls()
	if len(calls) != len(table.Rows) {
		return fmt.Errorf("expected %d calls, got %v", len(table.Rows), calls)
	}
	for i, row := range table.Rows {
		if calls[i] != row.Cells[0].Value {
			return fmt.Errorf("call %d: expected %s, got %s", i, row.Cells[0].Value, calls[i])
		}
	}
	return nil
}

func (ctx *dashboardContext) unitsShouldHaveBeenSoldFor(units, credits int) error {
	if ctx.dumpResp == nil {
		return errors.New("no cargo was dumped")
	}
	if ctx.dumpResp.UnitsSold != units || ctx.dumpResp.TotalRevenue != credits {
		return fmt.Errorf("expected %d units for %d credits, got %d units for %d credits",
			units, credits, ctx.dumpResp.UnitsSold, ctx.dumpResp.TotalRevenue)
	}
	return nil
}

func (ctx *dashboardContext) theShipShouldCarryUnits(shipSymbol string, units int) error {
	ship, ok := ctx.client.GetShipFromMock(shipSymbol)
	if !ok {
		return fmt.Errorf("ship %s not found", shipSymbol)
	}
	if ship.Cargo.Units != units {
		return fmt.Errorf("expected %d units in hold, got %d", units, ship.Cargo.Units)
	}
	return nil
}

func (ctx *dashboardContext) theChoicesShouldBeInOrder(table *godog.Table) error {
	if ctx.navChoices == nil {
		return fmt.Errorf("no navigation choices: %v", ctx.err)
	}

	rows := table.Rows[1:]
	if len(ctx.navChoices.Choices) != len(rows) {
		return fmt.Errorf("expected %d choices, got %d", len(rows), len(ctx.navChoices.Choices))
	}
	for i, row := range rows {
		got := ctx.navChoices.Choices[i]
		want, err := strconv.ParseFloat(row.Cells[1].Value, 64)
		if err != nil {
			return err
		}
		if got.Waypoint.Symbol != row.Cells[0].Value {
			return fmt.Errorf("choice %d: expected %s, got %s", i, row.Cells[0].Value, got.Waypoint.Symbol)
		}
		if math.Abs(got.Distance-want) > 0.05 {
			return fmt.Errorf("choice %d: expected distance %.1f, got %.2f", i, want, got.Distance)
		}
	}
	return nil
}

func (ctx *dashboardContext) theWaypointShouldOffer(expected string) error {
	if ctx.shipContext == nil {
		return fmt.Errorf("no ship context: %v", ctx.err)
	}

	got := make([]string, 0, len(ctx.shipContext.Features))
	for _, f := range ctx.shipContext.Features {
		got = append(got, f.String())
	}
	if strings.Join(got, ", ") != expected {
		return fmt.Errorf("expected features %q, got %q", expected, strings.Join(got, ", "))
	}
	return nil
}

func InitializeDashboardScenario(sc *godog.ScenarioContext) {
	ctx := &dashboardContext{}

	sc.Before(func(c context.Context, _ *godog.Scenario) (context.Context, error) {
		return c, ctx.reset()
	})

	sc.Step(`^the system "([^"]*)" has waypoints:$`, ctx.theSystemHasWaypoints)
	sc.Step(`^the market at "([^"]*)" trades "([^"]*)"$`, ctx.theMarketAtTrades)
	sc.Step(`^a ship "([^"]*)" is "([^"]*)" at "([^"]*)"$`, ctx.aShipIsAt)
	sc.Step(`^the ship "([^"]*)" carries:$`, ctx.theShipCarries)
	sc.Step(`^the upstream rejects "([^"]*)"$`, ctx.theUpstreamRejects)

	sc.Step(`^I send ship "([^"]*)" to "([^"]*)"$`, ctx.iSendShipTo)
	sc.Step(`^I dock ship "([^"]*)"$`, ctx.iDockShip)
	sc.Step(`^I orbit ship "([^"]*)"$`, ctx.iOrbitShip)
	sc.Step(`^I dump the cargo of ship "([^"]*)"$`, ctx.iDumpTheCargoOfShip)
	sc.Step(`^I ask for navigation choices for ship "([^"]*)"$`, ctx.iAskForNavigationChoicesForShip)
	sc.Step(`^I resolve the context of ship "([^"]*)"$`, ctx.iResolveTheContextOfShip)

	sc.Step(`^the operation should succeed$`, ctx.theOperationShouldSucceed)
	sc.Step(`^the operation should fail with "([^"]*)"$`, ctx.theOperationShouldFailWith)
	sc.Step(`^the operation should fail as not found$`, ctx.theOperationShouldFailAsNotFound)
	sc.Step(`^the ship "([^"]*)" should be "([^"]*)"$`, ctx.theShipShouldBe)
	sc.Step(`^the upstream calls should be:$`, ctx.theUpstreamCallsShouldBe)
	sc.Step(`^(\d+) units should have been sold for (\d+) credits$`, ctx.unitsShouldHaveBeenSoldFor)
	sc.Step(`^the ship "([^"]*)" should carry (\d+) units$`, ctx.theShipShouldCarryUnits)
	sc.Step(`^the choices should be in order:$`, ctx.theChoicesShouldBeInOrder)
	sc.Step(`^the waypoint should offer "([^"]*)"$`, ctx.theWaypointShouldOffer)
}
