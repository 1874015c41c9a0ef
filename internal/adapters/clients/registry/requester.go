package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/pio-home/internal/platform/httpclient"
)

// Requester owns the response lifecycle of a registry call: status check,
// error translation, JSON decoding and closing the body.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Get decodes a 200 response for path into out (skipped when out is nil).
// Any other outcome becomes an error; the body is always closed.
func (r *Requester) Get(ctx context.Context, path string, out any) error {
	resp, err := r.client.Get(ctx, path)
	if resp != nil {
		defer r.closeBody(ctx, resp)
	}

	switch {
	case resp == nil:
		r.logger.ErrorContext(ctx, "registry request failed",
			slog.String("operation", "registry.Get"),
			slog.String("path", path),
			slog.Any("error", err),
		)
		return fmt.Errorf("GET %s: %w", path, err)
	case resp.StatusCode == http.StatusOK && err == nil:
	default:
		// Unknown boards are an ordinary 404.
		if resp.StatusCode != http.StatusNotFound {
			r.logger.ErrorContext(ctx, "unexpected registry status",
				slog.String("operation", "registry.Get"),
				slog.String("path", path),
				slog.Int("status", resp.StatusCode),
			)
		}
		return translateStatus(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response from GET %s: %w", path, err)
	}
	return nil
}

func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "closing registry response body", slog.Any("error", err))
	}
}
