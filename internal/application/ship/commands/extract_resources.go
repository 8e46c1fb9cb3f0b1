package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/spacetraders-dashboard/internal/application/mediator"
	"github.com/andrescamacho/spacetraders-dashboard/internal/application/ship/types"
	domainPorts "github.com/andrescamacho/spacetraders-dashboard/internal/domain/ports"
)

// ExtractResourcesHandler - Handles extract resources commands
type ExtractResourcesHandler struct {
	apiClient domainPorts.APIClient
}

// NewExtractResourcesHandler creates a new extract resources handler
func NewExtractResourcesHandler(apiClient domainPorts.APIClient) *ExtractResourcesHandler {
	return &ExtractResourcesHandler{apiClient: apiClient}
}

// Handle executes the extract resources command
func (h *ExtractResourcesHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*types.ExtractResourcesCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	result, err := h.apiClient.ExtractResources(ctx, cmd.ShipSymbol)
	if err != nil {
		return nil, fmt.Errorf("failed to extract resources: %w", err)
	}

	return &types.ExtractResourcesResponse{
		Yield:    result.Yield,
		Cooldown: result.Cooldown,
	}, nil
}
