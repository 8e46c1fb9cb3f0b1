package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/shared"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/system"
)

// MaxPageSize is the largest page the API serves
const MaxPageSize = 20

// PageFunc fetches one 1-indexed page
type PageFunc[T any] func(ctx context.Context, page, limit int) ([]T, system.PaginationMeta, error)

// Paginate walks pages 1, 2, ... of size limit until meta.total items are
// collected, preserving fetch order. An empty page before the total is
// reached means the upstream listing shifted under us; that is reported as
// an UpstreamError rather than looping forever.
func Paginate[T any](ctx context.Context, limit int, fetch PageFunc[T]) ([]T, error) {
	if limit <= 0 || limit > MaxPageSize {
		limit = MaxPageSize
	}

	var all []T
	for page := 1; ; page++ {
		items, meta, err := fetch(ctx, page, limit)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}
		all = append(all, items...)

		if len(all) >= meta.Total {
			break
		}
		if len(items) == 0 {
			return nil, shared.NewUpstreamError("paginate", 0, "",
				fmt.Errorf("empty page %d after %d of %d items", page, len(all), meta.Total))
		}
	}

	if all == nil {
		all = []T{}
	}
	return all, nil
}

func pagedPath(path string, page, limit int) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	return path + "?" + q.Encode()
}
