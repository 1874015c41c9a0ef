package telemetry

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// MeterName scopes every instrument this service registers.
const MeterName = "github.com/jsamuelsen11/pio-home"

// Metrics holds the instruments recorded by the server, the outbound
// registry client and the build tool runner.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// CommandDuration and CommandTotal track build tool invocations.
	CommandDuration metric.Float64Histogram
	CommandTotal    metric.Int64Counter

	// ProjectsSkipped counts directories dropped during aggregation.
	ProjectsSkipped metric.Int64Counter
}

type histogramSpec struct {
	name, desc string
	dst        *metric.Float64Histogram
}

type counterSpec struct {
	name, desc, unit string
	dst              *metric.Int64Counter
}

// NewMetrics registers all instruments on a meter from mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(MeterName)
	m := &Metrics{}

	histograms := []histogramSpec{
		{"http.server.request.duration", "Duration of incoming HTTP requests", &m.ServerRequestDuration},
		{"http.client.request.duration", "Duration of board registry requests", &m.ClientRequestDuration},
		{"pio.command.duration", "Duration of build tool invocations", &m.CommandDuration},
	}
	for _, h := range histograms {
		inst, err := meter.Float64Histogram(h.name, metric.WithDescription(h.desc), metric.WithUnit("s"))
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", h.name, err)
		}
		*h.dst = inst
	}

	counters := []counterSpec{
		{"http.server.request.total", "Incoming HTTP requests", "{request}", &m.ServerRequestTotal},
		{"http.client.request.total", "Board registry requests", "{request}", &m.ClientRequestTotal},
		{"pio.command.total", "Build tool invocations", "{command}", &m.CommandTotal},
		{"pio.projects.skipped", "Project directories skipped during aggregation", "{project}", &m.ProjectsSkipped},
	}
	for _, c := range counters {
		inst, err := meter.Int64Counter(c.name, metric.WithDescription(c.desc), metric.WithUnit(c.unit))
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", c.name, err)
		}
		*c.dst = inst
	}

	return m, nil
}
