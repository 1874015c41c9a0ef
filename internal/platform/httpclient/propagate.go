package httpclient

import (
	"context"
	"net/http"
)

// UserAgent is sent with every outbound request.
const UserAgent = "pio-home"

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores the inbound request ID for forwarding as X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID stores the correlation ID for forwarding as
// X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

func setRequestHeaders(ctx context.Context, req *http.Request) {
	h := req.Header
	h.Set("Accept", "application/json")
	h.Set("User-Agent", UserAgent)

	for header, key := range map[string]any{
		"X-Request-ID":     requestIDKey{},
		"X-Correlation-ID": correlationIDKey{},
	} {
		if id, _ := ctx.Value(key).(string); id != "" {
			h.Set(header, id)
		}
	}
}
