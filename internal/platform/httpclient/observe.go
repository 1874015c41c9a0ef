package httpclient

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/pio-home/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/pio-home/internal/platform/httpclient"

// observation is the span and timer for one Get, covering rate limit waits
// and breaker rejections as well as the retries themselves.
type observation struct {
	ctx    context.Context
	span   trace.Span
	start  time.Time
	c      *Client
	method string
}

func (c *Client) observe(ctx context.Context, req *http.Request) *observation {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "HTTP "+req.Method+" "+c.serviceName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			telemetry.AttrHTTPMethod.String(req.Method),
			telemetry.AttrHTTPURL.String(req.URL.String()),
			telemetry.AttrPeerService.String(c.serviceName),
		),
	)
	return &observation{ctx: ctx, span: span, start: time.Now(), c: c, method: req.Method}
}

// inject writes the W3C trace context into the outbound headers.
func (o *observation) inject(req *http.Request) {
	otel.GetTextMapPropagator().Inject(o.ctx, propagation.HeaderCarrier(req.Header))
}

func (o *observation) end(resp *http.Response, err error) {
	defer o.span.End()

	status := 0
	if resp != nil {
		status = resp.StatusCode
		o.span.SetAttributes(telemetry.AttrHTTPStatus.Int(status))
	}
	if err != nil {
		o.span.RecordError(err)
		o.span.SetStatus(codes.Error, err.Error())
	}

	m := o.c.metrics
	if m == nil {
		return
	}

	var result string
	switch {
	case isBreakerRejection(err):
		result = "circuit_open"
	case resp != nil && status < http.StatusBadRequest:
		result = "success"
	default:
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(o.method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(o.c.serviceName),
		telemetry.AttrResult.String(result),
	)
	m.ClientRequestDuration.Record(o.ctx, time.Since(o.start).Seconds(), attrs)
	m.ClientRequestTotal.Add(o.ctx, 1, attrs)
}
