package api_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacetraders-dashboard/internal/adapters/api"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/shared"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/system"
)

func TestPaginate_EmptyPageBeforeTotalFails(t *testing.T) {
	// Arrange: upstream claims 30 items but the second page is empty
	calls := 0
	fetch := func(ctx context.Context, page, limit int) ([]int, system.PaginationMeta, error) {
		calls++
		if page == 1 {
			return make([]int, 20), system.PaginationMeta{Total: 30, Page: 1, Limit: limit}, nil
		}
		return nil, system.PaginationMeta{Total: 30, Page: page, Limit: limit}, nil
	}

	// Act
	_, err := api.Paginate(context.Background(), 20, fetch)

	// Assert
	require.Error(t, err)
	assert.True(t, shared.IsUpstream(err))
	assert.Equal(t, 2, calls)
}

func TestPaginate_StopsOnFirstError(t *testing.T) {
	boom := errors.New("boom")
	fetch := func(ctx context.Context, page, limit int) ([]int, system.PaginationMeta, error) {
		if page == 2 {
			return nil, system.PaginationMeta{}, boom
		}
		return []int{1, 2}, system.PaginationMeta{Total: 4}, nil
	}

	_, err := api.Paginate(context.Background(), 2, fetch)

	assert.ErrorIs(t, err, boom)
}

func TestPaginate_ClampsPageSize(t *testing.T) {
	var limits []int
	fetch := func(ctx context.Context, page, limit int) ([]int, system.PaginationMeta, error) {
		limits = append(limits, limit)
		return []int{1}, system.PaginationMeta{Total: 1}, nil
	}

	_, err := api.Paginate(context.Background(), 100, fetch)

	require.NoError(t, err)
	assert.Equal(t, []int{api.MaxPageSize}, limits)
}

type fakePager struct {
	pages map[int][]shared.Waypoint
	total int
}

func (p *fakePager) ListWaypoints(ctx context.Context, systemSymbol string, page, limit int) (*system.WaypointsPage, error) {
	return &system.WaypointsPage{Data: p.pages[page], Meta: system.PaginationMeta{Total: p.total, Page: page, Limit: limit}}, nil
}

func TestWaypointFetcher_StableTypeSort(t *testing.T) {
	// Arrange: types [B, A, C, A]
	pager := &fakePager{total: 4, pages: map[int][]shared.Waypoint{
		1: {
			{Symbol: "1", Type: "B"},
			{Symbol: "2", Type: "A"},
			{Symbol: "3", Type: "C"},
			{Symbol: "4", Type: "A"},
		},
	}}

	// Act
	waypoints, err := api.NewWaypointFetcher(pager, 20).FetchSystemWaypoints(context.Background(), "X1-GZ7")

	// Assert
	require.NoError(t, err)
	got := make([]string, len(waypoints))
	for i, wp := range waypoints {
		got[i] = string(wp.Type) + wp.Symbol
	}
	assert.Equal(t, []string{"A2", "A4", "B1", "C3"}, got)
}
