// Package httpclient is the read-only JSON client used for the remote board
// registry. Every Get passes through, in order: a token-bucket rate limiter,
// a circuit breaker, request metadata headers, a client span, and retries
// with jittered exponential backoff.
//
//	c := httpclient.New(&cfg.Registry.Client, "board-registry", metrics, logger)
//	resp, err := c.Get(ctx, "/v3/boards/uno")
//
// Inbound middleware stores request and correlation IDs with WithRequestID
// and WithCorrelationID; Get forwards them as headers.
package httpclient

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/pio-home/internal/platform/config"
	"github.com/jsamuelsen11/pio-home/internal/platform/telemetry"
)

// retryConfig is the retry policy copied out of config.RetryConfig.
type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Client issues GET requests against one base URL. GETs are idempotent, so
// any attempt may be retried.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	serviceName string
	breaker     *gobreaker.CircuitBreaker[*http.Response]
	limiter     *rate.Limiter // nil disables rate limiting
	retryCfg    retryConfig
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// New builds a Client for cfg. serviceName labels spans, metrics and the
// breaker. metrics may be nil.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		serviceName: serviceName,
		breaker:     newBreaker(serviceName, cfg.CircuitBreaker, logger),
		retryCfg: retryConfig{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}
	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}
	return c
}

// Get fetches baseURL+path.
//
// A non-retryable status returns the response and a nil error. When retries
// run out on a retryable status, the last response comes back together with
// the error. Either way the caller closes the body. Rate limit waits, open
// breaker rejections and transport errors return a nil response.
func (c *Client) Get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating GET request for %s: %w", path, err)
	}

	obs := c.observe(ctx, req)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			err = fmt.Errorf("waiting for rate limit: %w", err)
			obs.end(nil, err)
			return nil, err
		}
	}

	setRequestHeaders(ctx, req)
	obs.inject(req)

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		var r *http.Response
		err := c.doWithRetry(obs.ctx, req.WithContext(obs.ctx), &r)
		return r, err
	})

	obs.end(resp, err)
	return resp, err
}

// Name identifies the downstream in readiness output.
func (c *Client) Name() string {
	return c.serviceName
}

// HealthCheck derives health from the breaker state without calling the
// downstream. A half-open breaker is degraded, an open one is failing.
func (c *Client) HealthCheck(context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.serviceName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.serviceName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.serviceName, state)
	}
}
