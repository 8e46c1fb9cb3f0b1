package api

import (
	"context"
	"net/http"

	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/contract"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/player"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/system"
)

// GetAgent retrieves the authenticated agent
func (c *SpaceTradersClient) GetAgent(ctx context.Context) (*player.Agent, error) {
	var response envelope[player.Agent]
	if err := c.request(ctx, "GetAgent", http.MethodGet, "/my/agent", nil, &response); err != nil {
		return nil, err
	}
	return &response.Data, nil
}

// ListContracts retrieves every contract of the agent, all pages
func (c *SpaceTradersClient) ListContracts(ctx context.Context) ([]contract.Contract, error) {
	return Paginate(ctx, MaxPageSize, func(ctx context.Context, page, limit int) ([]contract.Contract, system.PaginationMeta, error) {
		var response envelope[[]contract.Contract]
		path := pagedPath("/my/contracts", page, limit)
		if err := c.request(ctx, "ListContracts", http.MethodGet, path, nil, &response); err != nil {
			return nil, system.PaginationMeta{}, err
		}
		return response.Data, response.Meta, nil
	})
}
