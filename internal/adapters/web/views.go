package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/andrescamacho/spacetraders-dashboard/internal/application/dashboard"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/market"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/navigation"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/shared"
)

//go:embed templates/*.html
var templateFS embed.FS

// pollInterval is how often a moving or cooling-down ship refreshes itself, in ms
const pollInterval = 5000

type views struct {
	clock shared.Clock
	tmpl  *template.Template
}

func newViews(clock shared.Clock) (*views, error) {
	v := &views{clock: clock}

	funcs := template.FuncMap{
		"fromNow": func(timestamp string) string {
			return shared.FromNow(timestamp, v.clock)
		},
		"lower": func(v interface{}) string {
			return strings.ToLower(strings.ReplaceAll(fmt.Sprint(v), "_", " "))
		},
		"distance": func(d float64) string {
			return fmt.Sprintf("%.1f", d)
		},
		"isShipyard": func(symbol string) bool {
			return symbol == shared.TraitShipyard
		},
		"shipView": func(sc dashboard.ShipContext) shipView {
			return v.newShipView(sc, "")
		},
		"listed": func(wp shared.Waypoint) waypointItem {
			return waypointItem{Waypoint: wp}
		},
	}

	tmpl, err := template.New("dashboard").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	v.tmpl = tmpl
	return v, nil
}

// shipView is the ship fragment's model: the ship context plus what the
// fragment derives from the clock.
type shipView struct {
	Ship        navigation.Ship
	Waypoint    shared.Waypoint
	Marketplace bool
	Shipyard    bool
	Fuel        bool
	FuelFull    bool
	OnCooldown  bool
	Poll        bool
	Interval    int
	Notice      string
}

func (v *views) newShipView(sc dashboard.ShipContext, notice string) shipView {
	ship := sc.Ship
	return shipView{
		Ship:        ship,
		Waypoint:    sc.Waypoint,
		Marketplace: sc.Features.Has(market.FeatureMarketplace),
		Shipyard:    sc.Features.Has(market.FeatureShipyard),
		Fuel:        sc.Features.Has(market.FeatureFuel),
		FuelFull:    ship.FuelFull(),
		OnCooldown:  ship.OnCooldown(v.clock),
		Poll:        ship.NeedsPolling(v.clock),
		Interval:    pollInterval,
		Notice:      notice,
	}
}

// waypointItem is one waypoint row. ShipSymbol is set when the row is a
// navigation choice for that ship.
type waypointItem struct {
	Waypoint   shared.Waypoint
	ShipSymbol string
	Distance   float64
}

type navChoicesView struct {
	Ship    navigation.Ship
	Origin  shared.Waypoint
	Choices []waypointItem
}

func newNavChoicesView(choices *dashboard.NavChoices) navChoicesView {
	view := navChoicesView{Ship: choices.Ship, Origin: choices.Origin}
	for _, c := range choices.Choices {
		view.Choices = append(view.Choices, waypointItem{
			Waypoint:   c.Waypoint,
			ShipSymbol: choices.Ship.Symbol,
			Distance:   c.Distance,
		})
	}
	return view
}

// render executes into a buffer first so a failing template never leaves a
// half-written response behind.
func (v *views) render(w http.ResponseWriter, status int, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := v.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
