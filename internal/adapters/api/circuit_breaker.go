package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/andrescamacho/spacetraders-dashboard/internal/adapters/metrics"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/shared"
	"github.com/andrescamacho/spacetraders-dashboard/internal/infrastructure/logging"
)

const breakerName = "spacetraders-api"

// BreakerConfig configures the API circuit breaker
type BreakerConfig struct {
	// MaxFailures consecutive failures open the circuit. Zero means 5.
	MaxFailures uint32
	// Timeout is how long the circuit stays open before a probe. Zero means 30s.
	Timeout time.Duration
}

func newBreaker(cfg BreakerConfig) *gobreaker.CircuitBreaker[[]byte] {
	if cfg.MaxFailures == 0 {
		cfg.MaxFailures = 5
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxFailures
		},
		// Client errors mean the API is up and answering
		IsSuccessful: func(err error) bool {
			return err == nil || isClientError(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
			metrics.RecordCircuitState(name, to.String())
		},
	})
}

func isClientError(err error) bool {
	var ue *shared.UpstreamError
	if !errors.As(err, &ue) {
		return false
	}
	return ue.StatusCode >= 400 && ue.StatusCode < 500 && ue.StatusCode != http.StatusTooManyRequests
}
