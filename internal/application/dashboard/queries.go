package dashboard

import (
	"context"
	"fmt"

	"github.com/andrescamacho/spacetraders-dashboard/internal/application/mediator"
)

// GetOverviewQuery requests the index page view model
type GetOverviewQuery struct{}

// GetShipContextQuery requests a ship with its current waypoint and features
type GetShipContextQuery struct {
	ShipSymbol string
}

// GetNavChoicesQuery requests the ranked destinations of a ship
type GetNavChoicesQuery struct {
	ShipSymbol string
}

// GetOverviewHandler - Handles overview queries
type GetOverviewHandler struct {
	aggregator *Aggregator
}

func NewGetOverviewHandler(aggregator *Aggregator) *GetOverviewHandler {
	return &GetOverviewHandler{aggregator: aggregator}
}

func (h *GetOverviewHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*GetOverviewQuery); !ok {
		return nil, fmt.Errorf("invalid request type")
	}
	return h.aggregator.Overview(ctx)
}

// GetShipContextHandler - Handles ship context queries
type GetShipContextHandler struct {
	aggregator *Aggregator
}

func NewGetShipContextHandler(aggregator *Aggregator) *GetShipContextHandler {
	return &GetShipContextHandler{aggregator: aggregator}
}

func (h *GetShipContextHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetShipContextQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}
	return h.aggregator.ResolveShipContext(ctx, BySymbol(query.ShipSymbol))
}

// GetNavChoicesHandler - Handles navigation choice queries
type GetNavChoicesHandler struct {
	aggregator *Aggregator
}

func NewGetNavChoicesHandler(aggregator *Aggregator) *GetNavChoicesHandler {
	return &GetNavChoicesHandler{aggregator: aggregator}
}

func (h *GetNavChoicesHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetNavChoicesQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}
	return h.aggregator.NavChoices(ctx, query.ShipSymbol)
}

// RegisterHandlers wires the dashboard queries into the mediator
func RegisterHandlers(m mediator.Mediator, aggregator *Aggregator) error {
	if err := mediator.RegisterHandler[*GetOverviewQuery](m, NewGetOverviewHandler(aggregator)); err != nil {
		return err
	}
	if err := mediator.RegisterHandler[*GetShipContextQuery](m, NewGetShipContextHandler(aggregator)); err != nil {
		return err
	}
	return mediator.RegisterHandler[*GetNavChoicesQuery](m, NewGetNavChoicesHandler(aggregator))
}
