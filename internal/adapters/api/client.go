package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/andrescamacho/spacetraders-dashboard/internal/adapters/metrics"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/ports"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/shared"
)

const (
	DefaultBaseURL      = "https://api.spacetraders.io/v2"
	defaultTimeout      = 30 * time.Second
	defaultMaxRetries   = 3
	defaultBackoffBase  = time.Second
	defaultMaxRetryWait = 30 * time.Second
)

// ClientConfig configures the SpaceTraders client
type ClientConfig struct {
	BaseURL     string
	Token       string
	Timeout     time.Duration
	RateLimit   float64 // requests per second
	Burst       int
	MaxRetries  int
	BackoffBase time.Duration

	// MaxRetryWait caps every backoff, including one requested by Retry-After
	MaxRetryWait time.Duration
	Breaker      BreakerConfig
}

// SpaceTradersClient implements ports.APIClient over the public REST API.
//
// Every request waits on a shared rate limiter. 429 responses are retried for
// all methods (honouring Retry-After); transport errors and 5xx responses are
// retried only for GETs since the mutating endpoints are not idempotent.
// Retried-out failures count against a circuit breaker that fails fast while
// the API is down.
type SpaceTradersClient struct {
	httpClient   *http.Client
	rateLimiter  *rate.Limiter
	breaker      *gobreaker.CircuitBreaker[[]byte]
	baseURL      string
	token        string
	maxRetries   int
	backoffBase  time.Duration
	maxRetryWait time.Duration
	clock        shared.Clock
}

var _ ports.APIClient = (*SpaceTradersClient)(nil)

// NewSpaceTradersClient creates a client. Zero config fields take defaults
// (2 req/s with burst 2, 1s backoff base, 30s retry wait cap); MaxRetries of zero disables retries
// and a negative value selects the default of 3. If clock is nil, uses RealClock.
func NewSpaceTradersClient(cfg ClientConfig, clock shared.Clock) *SpaceTradersClient {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 2
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 2
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = defaultBackoffBase
	}
	if cfg.MaxRetryWait <= 0 {
		cfg.MaxRetryWait = defaultMaxRetryWait
	}

	return &SpaceTradersClient{
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		rateLimiter:  rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst),
		breaker:      newBreaker(cfg.Breaker),
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		token:        cfg.Token,
		maxRetries:   cfg.MaxRetries,
		backoffBase:  cfg.BackoffBase,
		maxRetryWait: cfg.MaxRetryWait,
		clock:        clock,
	}
}

// BreakerState reports the circuit breaker state ("closed", "half-open", "open")
func (c *SpaceTradersClient) BreakerState() string {
	return c.breaker.State().String()
}

// addJitter adds random jitter to a duration to avoid thundering herd.
// Returns a duration between 50% and 150% of the original value.
func addJitter(d time.Duration) time.Duration {
	jitter := 0.5 + rand.Float64()
	return time.Duration(float64(d) * jitter)
}

// request performs one logical API call and decodes the body into result.
// op names the call in errors and metrics.
func (c *SpaceTradersClient) request(ctx context.Context, op, method, path string, body, result interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return shared.NewUpstreamError(op, 0, "", fmt.Errorf("failed to marshal request body: %w", err))
		}
	}

	respBody, err := c.breaker.Execute(func() ([]byte, error) {
		return c.doWithRetries(ctx, op, method, path, payload)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return shared.NewUpstreamError(op, 0, "", err)
		}
		return err
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return shared.NewUpstreamError(op, http.StatusOK, truncate(respBody), fmt.Errorf("failed to unmarshal response: %w", err))
		}
	}
	return nil
}

func (c *SpaceTradersClient) doWithRetries(ctx context.Context, op, method, path string, payload []byte) ([]byte, error) {
	url := c.baseURL + path
	idempotent := method == http.MethodGet

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		waitStart := time.Now()
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, shared.NewUpstreamError(op, 0, "", fmt.Errorf("rate limiter: %w", err))
		}
		metrics.RecordRateLimitWait(method, op, time.Since(waitStart).Seconds())

		status, respBody, retryAfter, err := c.do(ctx, op, method, url, payload)

		var reason string
		switch {
		case err != nil:
			lastErr = shared.NewUpstreamError(op, 0, "", err)
			if !idempotent || ctx.Err() != nil {
				return nil, lastErr
			}
			reason = "network"
		case status == http.StatusTooManyRequests:
			lastErr = shared.NewUpstreamError(op, status, truncate(respBody), nil)
			reason = "rate_limited"
		case status >= 500:
			lastErr = shared.NewUpstreamError(op, status, truncate(respBody), nil)
			if !idempotent {
				return nil, lastErr
			}
			reason = "server_error"
		case status < 200 || status >= 300:
			return nil, shared.NewUpstreamError(op, status, truncate(respBody), nil)
		default:
			return respBody, nil
		}

		if attempt >= c.maxRetries {
			break
		}

		metrics.RecordAPIRetry(method, op, reason)
		delay := addJitter(c.backoffBase * time.Duration(1<<attempt))
		if retryAfter > 0 {
			delay = retryAfter
		}
		if delay > c.maxRetryWait {
			delay = c.maxRetryWait
		}
		select {
		case <-ctx.Done():
			return nil, shared.NewUpstreamError(op, 0, "", fmt.Errorf("retry wait: %w", ctx.Err()))
		case <-c.clock.After(delay):
		}
	}

	return nil, lastErr
}

// do executes a single HTTP round trip
func (c *SpaceTradersClient) do(ctx context.Context, op, method, url string, payload []byte) (int, []byte, time.Duration, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return 0, nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordAPIRequest(method, op, 0, time.Since(start).Seconds())
		return 0, nil, 0, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	metrics.RecordAPIRequest(method, op, resp.StatusCode, time.Since(start).Seconds())
	if err != nil {
		return resp.StatusCode, nil, 0, fmt.Errorf("failed to read response: %w", err)
	}

	var retryAfter time.Duration
	if v := resp.Header.Get("Retry-After"); v != "" {
		if seconds, err := strconv.ParseFloat(v, 64); err == nil && seconds > 0 {
			retryAfter = time.Duration(seconds * float64(time.Second))
		}
	}

	return resp.StatusCode, respBody, retryAfter, nil
}

// truncate keeps error bodies readable in logs and fragments
func truncate(body []byte) string {
	const max = 512
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
