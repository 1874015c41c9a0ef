package httpclient

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/pio-home/internal/platform/logging"
)

// jitterFraction spreads each delay by up to ±25%.
const jitterFraction = 0.25

// doWithRetry sends req until it gets a non-retryable outcome or runs out of
// attempts. Retryable failures are transport errors other than the caller
// giving up, 429 and 5xx. The final response is stored in out even when the
// attempts ran out, body unread; the caller closes it.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, out **http.Response) error {
	attempts := c.retryCfg.maxAttempts
	if attempts < 1 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", attempts)
	}

	var (
		lastErr    error
		retryAfter time.Duration
	)
	for n := range attempts {
		if n > 0 {
			if err := c.pause(ctx, req, n, retryAfter, lastErr); err != nil {
				return err
			}
		}

		resp, err := c.httpClient.Do(req)
		switch {
		case err != nil:
			if !isRetryable(err) {
				return err
			}
			lastErr, retryAfter = err, 0
			continue
		case !isRetryableStatus(resp.StatusCode):
			*out = resp
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.serviceName)
		retryAfter = parseRetryAfter(resp.Header.Get("Retry-After"))
		if n == attempts-1 {
			*out = resp
			break
		}
		// Drain so the connection goes back to the pool.
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}
	return lastErr
}

// pause waits before retry number n (1-based). The wait is the jittered
// backoff, stretched to the server's Retry-After up to the max interval.
func (c *Client) pause(ctx context.Context, req *http.Request, n int, retryAfter time.Duration, lastErr error) error {
	delay := max(backoff(n, c.retryCfg), min(retryAfter, c.retryCfg.maxInterval))

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Get"),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", n+1),
		slog.Int("max_attempts", c.retryCfg.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// backoff returns initial*multiplier^(n-1), capped at the max interval and
// then jittered.
func backoff(n int, cfg retryConfig) time.Duration {
	d := min(float64(cfg.initialInterval)*math.Pow(cfg.multiplier, float64(n-1)), float64(cfg.maxInterval))
	d += d * jitterFraction * (2*secureRandFloat64() - 1)
	return time.Duration(max(d, 0))
}

// parseRetryAfter accepts the delay-seconds form of Retry-After. HTTP dates
// and garbage yield zero.
func parseRetryAfter(v string) time.Duration {
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// secureRandFloat64 returns a uniform float64 in [0, 1) from crypto/rand,
// using the top 53 bits of a random uint64.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>11) / (1 << 53)
}

// isRetryable reports whether a transport error is worth another attempt.
// Only the caller's own cancellation or deadline stops the loop.
func isRetryable(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}
