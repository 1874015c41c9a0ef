// Package telemetry wires OpenTelemetry tracing and metrics for the home
// server. Spans and metrics go either to stdout for local work or to an
// OTLP/HTTP collector.
//
//	p, err := telemetry.Setup(ctx, telemetry.Options{
//		ServiceName: "pio-home",
//		Exporter:    telemetry.ExporterStdout,
//	})
//	defer p.Shutdown(ctx)
//	p.Metrics.CommandTotal.Add(ctx, 1)
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Supported exporter names.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Attribute keys shared by spans and metric labels.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrHTTPURL     = attribute.Key("http.url")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrAction      = attribute.Key("pio.action")
	AttrReason      = attribute.Key("reason")
)

// ErrMissingEndpoint is returned when the OTLP exporter has no collector URL.
var ErrMissingEndpoint = errors.New("otlp exporter requires an endpoint")

// Options selects where telemetry goes and how the process identifies itself.
type Options struct {
	ServiceName    string
	ServiceVersion string
	Exporter       string
	// Endpoint is the collector URL, e.g. http://otel-collector:4318.
	// Only read by the OTLP exporter.
	Endpoint string
}

// InitTracer installs a batching TracerProvider as the global provider along
// with the W3C trace-context and baggage propagators. Callers own shutdown.
func InitTracer(ctx context.Context, opts Options) (*sdktrace.TracerProvider, error) {
	res, err := opts.resource()
	if err != nil {
		return nil, err
	}

	var exp sdktrace.SpanExporter
	switch opts.Exporter {
	case ExporterStdout:
		exp, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	case ExporterOTLP:
		if opts.Endpoint == "" {
			return nil, ErrMissingEndpoint
		}
		host, secure := splitEndpoint(opts.Endpoint)
		o := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
		if !secure {
			o = append(o, otlptracehttp.WithInsecure())
		}
		exp, err = otlptracehttp.New(ctx, o...)
	default:
		return nil, fmt.Errorf("unsupported exporter %q", opts.Exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp), sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}

// InitMeter installs a periodically exporting MeterProvider as the global
// provider. Callers own shutdown.
func InitMeter(ctx context.Context, opts Options) (*sdkmetric.MeterProvider, error) {
	res, err := opts.resource()
	if err != nil {
		return nil, err
	}

	var exp sdkmetric.Exporter
	switch opts.Exporter {
	case ExporterStdout:
		exp, err = stdoutmetric.New()
	case ExporterOTLP:
		if opts.Endpoint == "" {
			return nil, ErrMissingEndpoint
		}
		host, secure := splitEndpoint(opts.Endpoint)
		o := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(host)}
		if !secure {
			o = append(o, otlpmetrichttp.WithInsecure())
		}
		exp, err = otlpmetrichttp.New(ctx, o...)
	default:
		return nil, fmt.Errorf("unsupported exporter %q", opts.Exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp, nil
}

func (o Options) resource() (*resource.Resource, error) {
	attrs := []attribute.KeyValue{semconv.ServiceName(o.ServiceName)}
	if o.ServiceVersion != "" {
		attrs = append(attrs, semconv.ServiceVersion(o.ServiceVersion))
	}
	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(semconv.SchemaURL, attrs...))
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}
	return res, nil
}

// splitEndpoint turns a collector URL into the host:port the OTLP exporters
// expect and reports whether it uses TLS. Bare host:port values pass through
// as plaintext.
func splitEndpoint(endpoint string) (string, bool) {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint, false
	}
	return u.Host, u.Scheme == "https"
}
