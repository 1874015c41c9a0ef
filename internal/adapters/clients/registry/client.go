package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/jsamuelsen11/pio-home/internal/adapters/clients/registry/boards"
	"github.com/jsamuelsen11/pio-home/internal/domain"
	"github.com/jsamuelsen11/pio-home/internal/domain/board"
	"github.com/jsamuelsen11/pio-home/internal/platform/httpclient"
	"github.com/jsamuelsen11/pio-home/internal/ports"
)

// ServiceName identifies the remote registry in traces, metrics and health
// results.
const ServiceName = "board-registry"

// Compile-time interface checks.
var (
	_ ports.BoardRegistry = (*Client)(nil)
	_ ports.HealthChecker = (*Client)(nil)
)

// Client is the outbound adapter for the remote board registry. It
// implements [ports.BoardRegistry] with GET /v3/boards/{id}.
//
// The underlying [httpclient.Client] provides circuit breaking, rate
// limiting, retry with exponential backoff and OpenTelemetry tracing.
type Client struct {
	http   *httpclient.Client
	req    *Requester
	logger *slog.Logger
}

// NewClient creates a Client that sends requests through the given
// [httpclient.Client], whose BaseURL points at the registry API root.
func NewClient(client *httpclient.Client, logger *slog.Logger) *Client {
	return &Client{
		http:   client,
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// Board fetches a board definition. A 404 from the registry is reported as
// [domain.ErrUnknownBoard].
func (c *Client) Board(ctx context.Context, id string) (*board.Board, error) {
	path := "/v3/boards/" + url.PathEscape(id)

	var dto boards.BoardDTO
	if err := c.req.Get(ctx, path, &dto); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("board %q: %w", id, domain.ErrUnknownBoard)
		}
		return nil, err
	}
	if dto.ID == "" {
		dto.ID = id
	}
	result := boards.ToDomainBoard(&dto)
	return &result, nil
}

// Name returns the identifier used with a [ports.HealthRegistry].
func (c *Client) Name() string {
	return ServiceName
}

// HealthCheck reports registry availability from the circuit breaker state
// of the underlying HTTP client. No network call is made.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.http.HealthCheck(ctx)
}
