package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/pio-home/internal/platform/telemetry"
)

// Tests touching the global providers do not run in parallel.

func stdoutOptions() telemetry.Options {
	return telemetry.Options{
		ServiceName:    "pio-home-test",
		ServiceVersion: "v0.0.0-test",
		Exporter:       telemetry.ExporterStdout,
	}
}

func TestInit_Exporters(t *testing.T) {
	tests := []struct {
		name string
		opts telemetry.Options
	}{
		{name: "stdout", opts: stdoutOptions()},
		{name: "otlp url", opts: telemetry.Options{ServiceName: "x", Exporter: telemetry.ExporterOTLP, Endpoint: "http://localhost:4318"}},
		{name: "otlp bare host", opts: telemetry.Options{ServiceName: "x", Exporter: telemetry.ExporterOTLP, Endpoint: "localhost:4318"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			tp, err := telemetry.InitTracer(ctx, tt.opts)
			require.NoError(t, err)
			// No collector runs under test; flush errors are expected for otlp.
			t.Cleanup(func() { _ = tp.Shutdown(ctx) })

			mp, err := telemetry.InitMeter(ctx, tt.opts)
			require.NoError(t, err)
			t.Cleanup(func() { _ = mp.Shutdown(ctx) })
		})
	}
}

func TestInit_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    telemetry.Options
		wantErr error
	}{
		{name: "unknown exporter", opts: telemetry.Options{ServiceName: "x", Exporter: "zipkin"}},
		{name: "otlp without endpoint", opts: telemetry.Options{ServiceName: "x", Exporter: telemetry.ExporterOTLP}, wantErr: telemetry.ErrMissingEndpoint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := telemetry.InitTracer(context.Background(), tt.opts)
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}

			_, err = telemetry.InitMeter(context.Background(), tt.opts)
			require.Error(t, err)

			_, err = telemetry.Setup(context.Background(), tt.opts)
			require.Error(t, err)
		})
	}
}

func TestInitTracer_InstallsPropagators(t *testing.T) {
	ctx := context.Background()

	tp, err := telemetry.InitTracer(ctx, stdoutOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = tp.Shutdown(ctx) })

	fields := otel.GetTextMapPropagator().Fields()
	assert.Contains(t, fields, "traceparent")
	assert.Contains(t, fields, "baggage")
}

func TestSetup_ProvidesMetricsAndShutsDown(t *testing.T) {
	ctx := context.Background()

	p, err := telemetry.Setup(ctx, stdoutOptions())
	require.NoError(t, err)
	require.NotNil(t, p.Metrics)

	p.Metrics.CommandTotal.Add(ctx, 1)
	assert.NoError(t, p.Shutdown(ctx))
}

func TestProviders_ZeroValueShutdown(t *testing.T) {
	t.Parallel()

	var p telemetry.Providers
	assert.Nil(t, p.Metrics)
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNewMetrics_RegistersInstruments(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	m, err := telemetry.NewMetrics(mp)
	require.NoError(t, err)

	m.ServerRequestDuration.Record(ctx, 0.1)
	m.ServerRequestTotal.Add(ctx, 1)
	m.ClientRequestDuration.Record(ctx, 0.2)
	m.ClientRequestTotal.Add(ctx, 1)
	m.CommandDuration.Record(ctx, 1.5)
	m.CommandTotal.Add(ctx, 1)
	m.ProjectsSkipped.Add(ctx, 2)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	assert.Equal(t, telemetry.MeterName, rm.ScopeMetrics[0].Scope.Name)

	units := map[string]string{}
	for _, md := range rm.ScopeMetrics[0].Metrics {
		units[md.Name] = md.Unit
	}
	assert.Equal(t, map[string]string{
		"http.server.request.duration": "s",
		"http.server.request.total":    "{request}",
		"http.client.request.duration": "s",
		"http.client.request.total":    "{request}",
		"pio.command.duration":         "s",
		"pio.command.total":            "{command}",
		"pio.projects.skipped":         "{project}",
	}, units)
}
