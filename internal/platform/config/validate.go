package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	exporters  = []string{"stdout", "otlp"}
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Telemetry.validate(),
		c.Core.validate(),
		c.State.validate(),
		c.Registry.validate(),
		c.MCP.validate(),
	)
}

// problems accumulates validation failures for one section.
type problems []error

func (p *problems) check(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p problems) err() error { return errors.Join(p...) }

func (s *ServerConfig) validate() error {
	var p problems
	p.check(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.check(s.ReadTimeout > 0, "server.read_timeout must be positive")
	p.check(s.WriteTimeout > 0, "server.write_timeout must be positive")
	p.check(s.RequestTimeout >= 0, "server.request_timeout must not be negative (0 disables it)")
	return p.err()
}

func (l *LogConfig) validate() error {
	var p problems
	p.check(slices.Contains(logLevels, l.Level),
		"log.level must be one of: %s; got %q", strings.Join(logLevels, ", "), l.Level)
	p.check(slices.Contains(logFormats, l.Format),
		"log.format must be one of: %s; got %q", strings.Join(logFormats, ", "), l.Format)
	return p.err()
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}
	var p problems
	p.check(slices.Contains(exporters, t.Exporter),
		"telemetry.exporter must be one of: %s; got %q", strings.Join(exporters, ", "), t.Exporter)
	p.check(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint must not be empty when exporter is otlp")
	return p.err()
}

func (cc *CoreConfig) validate() error {
	var p problems
	p.check(cc.Executable != "", "core.executable must not be empty")
	p.check(cc.HomeDir != "", "core.home_dir must not be empty")
	p.check(cc.CommandTimeout > 0, "core.command_timeout must be positive")
	p.check(cc.MaxWorkers >= 1, "core.max_workers must be >= 1, got %d", cc.MaxWorkers)
	return p.err()
}

func (sc *StateConfig) validate() error {
	var p problems
	p.check(sc.DBPath != "", "state.db_path must not be empty")
	p.check(sc.DefaultProjectsDir != "", "state.default_projects_dir must not be empty")
	return p.err()
}

func (r *RegistryConfig) validate() error {
	if !r.Enabled {
		return nil
	}
	return r.Client.validate("registry.client")
}

func (m *MCPConfig) validate() error {
	if !m.Enabled {
		return nil
	}
	var p problems
	p.check(strings.HasPrefix(m.Path, "/"), "mcp.path must start with /, got %q", m.Path)
	return p.err()
}

func (cl *ClientConfig) validate(prefix string) error {
	var p problems
	p.check(cl.BaseURL != "", "%s.base_url must not be empty", prefix)
	p.check(cl.Timeout > 0, "%s.timeout must be positive", prefix)
	p.check(cl.Retry.MaxAttempts >= 1, "%s.retry.max_attempts must be >= 1, got %d", prefix, cl.Retry.MaxAttempts)
	p.check(cl.Retry.Multiplier > 0, "%s.retry.multiplier must be positive, got %g", prefix, cl.Retry.Multiplier)
	p.check(cl.CircuitBreaker.MaxFailures >= 1,
		"%s.circuit_breaker.max_failures must be >= 1, got %d", prefix, cl.CircuitBreaker.MaxFailures)
	p.check(cl.RateLimit.RequestsPerSecond >= 0,
		"%s.rate_limit.requests_per_second must not be negative, got %g", prefix, cl.RateLimit.RequestsPerSecond)
	return p.err()
}
