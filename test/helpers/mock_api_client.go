package helpers

import (
	"context"
	"fmt"
	"sync"

	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/contract"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/market"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/navigation"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/player"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/shared"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/shipyard"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/system"
)

// MockAPIClient is an in-memory test double for ports.APIClient.
// Mutations update the stored ships so follow-up reads see the new state.
type MockAPIClient struct {
	mu sync.RWMutex

	agent     *player.Agent
	contracts []contract.Contract
	ships     map[string]*navigation.Ship
	shipOrder []string
	waypoints map[string][]shared.Waypoint // systemSymbol -> waypoints
	markets   map[string]*market.Market    // waypointSymbol -> market
	shipyards map[string]*shipyard.Shipyard

	// Call tracking, one entry per call in call order
	calls []string

	// Error injection keyed by method name
	errors map[string]error

	extractYield navigation.ExtractionYield
	sellPrice    int
}

// NewMockAPIClient creates a new mock API client
func NewMockAPIClient() *MockAPIClient {
	return &MockAPIClient{
		ships:     make(map[string]*navigation.Ship),
		waypoints: make(map[string][]shared.Waypoint),
		markets:   make(map[string]*market.Market),
		shipyards: make(map[string]*shipyard.Shipyard),
		errors:    make(map[string]error),
		sellPrice: 10,
	}
}

// SetAgent sets the agent returned by GetAgent
func (m *MockAPIClient) SetAgent(agent *player.Agent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.agent = agent
}

// SetContracts sets the contracts returned by ListContracts
func (m *MockAPIClient) SetContracts(contracts []contract.Contract) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contracts = contracts
}

// AddShip adds a ship, keeping insertion order for ListShips
func (m *MockAPIClient) AddShip(ship *navigation.Ship) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.ships[ship.Symbol]; !exists {
		m.shipOrder = append(m.shipOrder, ship.Symbol)
	}
	copied := *ship
	m.ships[ship.Symbol] = &copied
}

// GetShipFromMock returns the stored ship state
func (m *MockAPIClient) GetShipFromMock(symbol string) (*navigation.Ship, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ship, ok := m.ships[symbol]
	return ship, ok
}

// SetSystemWaypoints sets the waypoints served (in pages) by ListWaypoints
func (m *MockAPIClient) SetSystemWaypoints(systemSymbol string, waypoints []shared.Waypoint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.waypoints[systemSymbol] = waypoints
}

// SetMarket sets the market at a waypoint
func (m *MockAPIClient) SetMarket(waypointSymbol string, mkt *market.Market) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.markets[waypointSymbol] = mkt
}

// SetShipyard sets the shipyard at a waypoint
func (m *MockAPIClient) SetShipyard(waypointSymbol string, yard *shipyard.Shipyard) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shipyards[waypointSymbol] = yard
}

// SetExtractYield sets what ExtractResources puts into the hold
func (m *MockAPIClient) SetExtractYield(yield navigation.ExtractionYield) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.extractYield = yield
}

// SetError makes every subsequent call to method fail with err. A nil err clears it.
func (m *MockAPIClient) SetError(method string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.errors, method)
		return
	}
	m.errors[method] = err
}

// Calls returns the recorded calls as "Method(args)" strings
func (m *MockAPIClient) Calls() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.calls...)
}

// CallCount returns how many times method was called
func (m *MockAPIClient) CallCount(method string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	prefix := method + "("
	for _, c := range m.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

// ResetCalls clears call tracking
func (m *MockAPIClient) ResetCalls() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}

// record must be called with mu held
func (m *MockAPIClient) record(method string, args ...interface{}) error {
	call := method + "("
	for i, a := range args {
		if i > 0 {
			call += ","
		}
		call += fmt.Sprint(a)
	}
	m.calls = append(m.calls, call+")")
	if err, ok := m.errors[method]; ok {
		return err
	}
	return nil
}

func (m *MockAPIClient) GetAgent(ctx context.Context) (*player.Agent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("GetAgent"); err != nil {
		return nil, err
	}
	if m.agent == nil {
		return nil, shared.NewUpstreamError("get agent", 401, "no agent", nil)
	}
	agent := *m.agent
	return &agent, nil
}

func (m *MockAPIClient) ListContracts(ctx context.Context) ([]contract.Contract, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("ListContracts"); err != nil {
		return nil, err
	}
	return append([]contract.Contract(nil), m.contracts...), nil
}

func (m *MockAPIClient) ListWaypoints(ctx context.Context, systemSymbol string, page, limit int) (*system.WaypointsPage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("ListWaypoints", systemSymbol, page, limit); err != nil {
		return nil, err
	}

	all := m.waypoints[systemSymbol]
	start := (page - 1) * limit
	end := start + limit
	if start > len(all) {
		start = len(all)
	}
	if end > len(all) {
		end = len(all)
	}

	return &system.WaypointsPage{
		Data: append([]shared.Waypoint(nil), all[start:end]...),
		Meta: system.PaginationMeta{Total: len(all), Page: page, Limit: limit},
	}, nil
}

func (m *MockAPIClient) GetMarket(ctx context.Context, systemSymbol, waypointSymbol string) (*market.Market, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("GetMarket", waypointSymbol); err != nil {
		return nil, err
	}
	mkt, ok := m.markets[waypointSymbol]
	if !ok {
		return nil, shared.NewUpstreamError("get market", 404, "market not found", nil)
	}
	return mkt, nil
}

func (m *MockAPIClient) GetShipyard(ctx context.Context, systemSymbol, waypointSymbol string) (*shipyard.Shipyard, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("GetShipyard", waypointSymbol); err != nil {
		return nil, err
	}
	yard, ok := m.shipyards[waypointSymbol]
	if !ok {
		return nil, shared.NewUpstreamError("get shipyard", 404, "shipyard not found", nil)
	}
	return yard, nil
}

func (m *MockAPIClient) GetShip(ctx context.Context, symbol string) (*navigation.Ship, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("GetShip", symbol); err != nil {
		return nil, err
	}
	ship, err := m.shipLocked(symbol)
	if err != nil {
		return nil, err
	}
	copied := *ship
	return &copied, nil
}

func (m *MockAPIClient) ListShips(ctx context.Context) ([]navigation.Ship, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("ListShips"); err != nil {
		return nil, err
	}
	ships := make([]navigation.Ship, 0, len(m.shipOrder))
	for _, symbol := range m.shipOrder {
		ships = append(ships, *m.ships[symbol])
	}
	return ships, nil
}

func (m *MockAPIClient) NavigateShip(ctx context.Context, symbol, destination string) (*navigation.NavigationResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("NavigateShip", symbol, destination); err != nil {
		return nil, err
	}
	ship, err := m.shipLocked(symbol)
	if err != nil {
		return nil, err
	}
	if ship.IsDocked() {
		return nil, shared.NewUpstreamError("navigate ship", 400, "ship is docked", nil)
	}

	ship.Nav.Route = navigation.Route{
		OriginSymbol:      ship.Nav.WaypointSymbol,
		DestinationSymbol: destination,
	}
	ship.Nav.WaypointSymbol = destination
	ship.Nav.Status = navigation.NavStatusInTransit

	return &navigation.NavigationResult{Nav: ship.Nav, Fuel: ship.Fuel}, nil
}

func (m *MockAPIClient) OrbitShip(ctx context.Context, symbol string) (*navigation.Nav, error) {
	return m.setStatus("OrbitShip", symbol, navigation.NavStatusInOrbit)
}

func (m *MockAPIClient) DockShip(ctx context.Context, symbol string) (*navigation.Nav, error) {
	return m.setStatus("DockShip", symbol, navigation.NavStatusDocked)
}

func (m *MockAPIClient) setStatus(method, symbol string, status navigation.NavStatus) (*navigation.Nav, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(method, symbol); err != nil {
		return nil, err
	}
	ship, err := m.shipLocked(symbol)
	if err != nil {
		return nil, err
	}
	ship.Nav.Status = status
	nav := ship.Nav
	return &nav, nil
}

func (m *MockAPIClient) RefuelShip(ctx context.Context, symbol string) (*navigation.RefuelResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("RefuelShip", symbol); err != nil {
		return nil, err
	}
	ship, err := m.shipLocked(symbol)
	if err != nil {
		return nil, err
	}
	added := ship.Fuel.Capacity - ship.Fuel.Current
	ship.Fuel.Current = ship.Fuel.Capacity
	return &navigation.RefuelResult{Fuel: ship.Fuel, FuelAdded: added, CreditsCost: added}, nil
}

func (m *MockAPIClient) ExtractResources(ctx context.Context, symbol string) (*navigation.ExtractionResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("ExtractResources", symbol); err != nil {
		return nil, err
	}
	ship, err := m.shipLocked(symbol)
	if err != nil {
		return nil, err
	}

	yield := m.extractYield
	ship.Cargo.Units += yield.Units
	ship.Cargo.Inventory = append(ship.Cargo.Inventory, navigation.CargoItem{Symbol: yield.Symbol, Units: yield.Units})
	ship.Cooldown = navigation.Cooldown{TotalSeconds: 70, RemainingSeconds: 70}

	return &navigation.ExtractionResult{Yield: yield, Cooldown: ship.Cooldown, Cargo: ship.Cargo}, nil
}

func (m *MockAPIClient) SellCargo(ctx context.Context, symbol, tradeSymbol string, units int) (*market.SellResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("SellCargo", symbol, tradeSymbol, units); err != nil {
		return nil, err
	}
	ship, err := m.shipLocked(symbol)
	if err != nil {
		return nil, err
	}

	kept := make([]navigation.CargoItem, 0, len(ship.Cargo.Inventory))
	for _, item := range ship.Cargo.Inventory {
		if item.Symbol == tradeSymbol {
			ship.Cargo.Units -= units
			item.Units -= units
		}
		if item.Units > 0 {
			kept = append(kept, item)
		}
	}
	ship.Cargo.Inventory = kept

	return &market.SellResult{TradeSymbol: tradeSymbol, UnitsSold: units, TotalRevenue: units * m.sellPrice}, nil
}

func (m *MockAPIClient) PurchaseShip(ctx context.Context, shipType, waypointSymbol string) (*shipyard.PurchaseResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("PurchaseShip", shipType, waypointSymbol); err != nil {
		return nil, err
	}

	symbol := fmt.Sprintf("SHIP-%d", len(m.shipOrder)+1)
	m.ships[symbol] = &navigation.Ship{
		Symbol: symbol,
		Nav: navigation.Nav{
			SystemSymbol:   shared.ExtractSystemSymbol(waypointSymbol),
			WaypointSymbol: waypointSymbol,
			Status:         navigation.NavStatusDocked,
		},
	}
	m.shipOrder = append(m.shipOrder, symbol)

	return &shipyard.PurchaseResult{ShipSymbol: symbol, ShipType: shipType}, nil
}

func (m *MockAPIClient) shipLocked(symbol string) (*navigation.Ship, error) {
	ship, ok := m.ships[symbol]
	if !ok {
		return nil, shared.NewUpstreamError("get ship", 404, fmt.Sprintf("ship %s not found", symbol), nil)
	}
	return ship, nil
}
