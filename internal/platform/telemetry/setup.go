package telemetry

import (
	"context"
	"errors"
	"fmt"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Providers owns the installed tracer and meter providers. The zero value
// stands for disabled telemetry: Metrics is nil and Shutdown is a no-op.
type Providers struct {
	Metrics *Metrics

	tracer *sdktrace.TracerProvider
	meter  *sdkmetric.MeterProvider
}

// Setup installs both providers and registers the service metrics. A
// partial failure shuts down whatever was already started.
func Setup(ctx context.Context, opts Options) (*Providers, error) {
	tp, err := InitTracer(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	p := &Providers{tracer: tp}

	p.meter, err = InitMeter(ctx, opts)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("init meter: %w", err), p.Shutdown(ctx))
	}

	p.Metrics, err = NewMetrics(p.meter)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("creating metrics: %w", err), p.Shutdown(ctx))
	}
	return p, nil
}

// Shutdown flushes and stops the providers that were started.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	if p.tracer != nil {
		if err := p.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if p.meter != nil {
		if err := p.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}
