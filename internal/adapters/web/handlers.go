package web

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andrescamacho/spacetraders-dashboard/internal/application/dashboard"
	"github.com/andrescamacho/spacetraders-dashboard/internal/application/mediator"
	"github.com/andrescamacho/spacetraders-dashboard/internal/application/ship/types"
	appShipyard "github.com/andrescamacho/spacetraders-dashboard/internal/application/shipyard"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/shipyard"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	overview, err := mediator.Send[*dashboard.Overview](r.Context(), s.mediator, &dashboard.GetOverviewQuery{})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.renderOrFail(w, r, http.StatusOK, "overview", overview)
}

func (s *Server) handleShip(w http.ResponseWriter, r *http.Request) {
	s.renderShip(w, r, chi.URLParam(r, "ship"), "")
}

func (s *Server) handleNavChoices(w http.ResponseWriter, r *http.Request) {
	choices, err := mediator.Send[*dashboard.NavChoices](r.Context(), s.mediator,
		&dashboard.GetNavChoicesQuery{ShipSymbol: chi.URLParam(r, "ship")})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.renderOrFail(w, r, http.StatusOK, "nav_choices", newNavChoicesView(choices))
}

func (s *Server) handleNavGo(w http.ResponseWriter, r *http.Request) {
	cmd := &types.NavigateShipCommand{
		ShipSymbol:  chi.URLParam(r, "ship"),
		Destination: chi.URLParam(r, "waypoint"),
	}
	if _, err := s.mediator.Send(r.Context(), cmd); err != nil {
		s.writeError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleDock(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "ship")
	if _, err := s.mediator.Send(r.Context(), &types.DockShipCommand{ShipSymbol: symbol}); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.renderShip(w, r, symbol, "")
}

func (s *Server) handleOrbit(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "ship")
	if _, err := s.mediator.Send(r.Context(), &types.OrbitShipCommand{ShipSymbol: symbol}); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.renderShip(w, r, symbol, "")
}

func (s *Server) handleRefuel(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "ship")
	resp, err := mediator.Send[*types.RefuelShipResponse](r.Context(), s.mediator, &types.RefuelShipCommand{ShipSymbol: symbol})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.renderShip(w, r, symbol, fmt.Sprintf("Refueled %d units for %d credits", resp.FuelAdded, resp.CreditsCost))
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "ship")
	resp, err := mediator.Send[*types.ExtractResourcesResponse](r.Context(), s.mediator, &types.ExtractResourcesCommand{ShipSymbol: symbol})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.renderShip(w, r, symbol, fmt.Sprintf("Extracted %d %s", resp.Yield.Units, resp.Yield.Symbol))
}

func (s *Server) handleDumpCargo(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "ship")
	resp, err := mediator.Send[*types.DumpCargoResponse](r.Context(), s.mediator, &types.DumpCargoCommand{ShipSymbol: symbol})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.renderShip(w, r, symbol, fmt.Sprintf("Sold %d units for %d credits", resp.UnitsSold, resp.TotalRevenue))
}

func (s *Server) handleShipyard(w http.ResponseWriter, r *http.Request) {
	query := &appShipyard.GetShipyardQuery{
		SystemSymbol:   chi.URLParam(r, "system"),
		WaypointSymbol: chi.URLParam(r, "waypoint"),
	}
	yard, err := mediator.Send[*shipyard.Shipyard](r.Context(), s.mediator, query)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.renderOrFail(w, r, http.StatusOK, "shipyard", yard)
}

func (s *Server) handleBuyShip(w http.ResponseWriter, r *http.Request) {
	cmd := &appShipyard.PurchaseShipCommand{
		ShipType:       chi.URLParam(r, "shipType"),
		WaypointSymbol: chi.URLParam(r, "waypoint"),
	}
	if _, err := s.mediator.Send(r.Context(), cmd); err != nil {
		s.writeError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// renderShip re-reads the ship after an action and renders its fragment
func (s *Server) renderShip(w http.ResponseWriter, r *http.Request, symbol, notice string) {
	sc, err := mediator.Send[*dashboard.ShipContext](r.Context(), s.mediator, &dashboard.GetShipContextQuery{ShipSymbol: symbol})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.renderOrFail(w, r, http.StatusOK, "ship", s.views.newShipView(*sc, notice))
}

func (s *Server) renderOrFail(w http.ResponseWriter, r *http.Request, status int, name string, data interface{}) {
	if err := s.views.render(w, status, name, data); err != nil {
		s.writeError(w, r, err)
	}
}
