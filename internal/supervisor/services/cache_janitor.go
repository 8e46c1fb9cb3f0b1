package services

import (
	"context"
	"time"

	"github.com/andrescamacho/spacetraders-dashboard/internal/infrastructure/logging"
)

// Sweeper evicts expired cache entries and reports how many it removed
type Sweeper interface {
	Sweep() int
}

// CacheJanitorService periodically sweeps a cache so systems nobody looks at
// any more do not hold memory until their next read.
type CacheJanitorService struct {
	cache    Sweeper
	interval time.Duration
	name     string
}

// NewCacheJanitorService creates the janitor. A non-positive interval means one minute.
func NewCacheJanitorService(name string, cache Sweeper, interval time.Duration) *CacheJanitorService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheJanitorService{
		cache:    cache,
		interval: interval,
		name:     name + "-janitor",
	}
}

// Serve implements suture.Service
func (j *CacheJanitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if n := j.cache.Sweep(); n > 0 {
				logging.Debug().Str("service", j.name).Int("evicted", n).Msg("swept expired entries")
			}
		}
	}
}

func (j *CacheJanitorService) String() string {
	return j.name
}
