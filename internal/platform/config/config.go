// Package config provides configuration loading and validation for the home
// server. Configuration is loaded with a layered system:
// defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Core      CoreConfig      `koanf:"core"`
	State     StateConfig     `koanf:"state"`
	Registry  RegistryConfig  `koanf:"registry"`
	MCP       MCPConfig       `koanf:"mcp"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
	// RequestTimeout bounds a single request, including the wait for a
	// build tool command.
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// CoreConfig describes the external build tool and its home directory.
type CoreConfig struct {
	// Executable is the build tool binary, looked up in PATH when relative.
	Executable string `koanf:"executable"`
	// HomeDir holds installed platforms (HomeDir/platforms/<name>).
	HomeDir string `koanf:"home_dir"`
	// CommandTimeout bounds a single build tool invocation.
	CommandTimeout time.Duration `koanf:"command_timeout"`
	// MaxWorkers bounds concurrent project reads during aggregation.
	MaxWorkers int `koanf:"max_workers"`
	// SupportedIDEs lists the caller identities passed through as --ide.
	SupportedIDEs []string `koanf:"supported_ides"`
	// ArduinoLibsDir is the vendor library folder injected on sketch import.
	ArduinoLibsDir string `koanf:"arduino_libs_dir"`
}

// StateConfig holds application state storage settings.
type StateConfig struct {
	DBPath             string `koanf:"db_path"`
	DefaultProjectsDir string `koanf:"default_projects_dir"`
}

// RegistryConfig holds settings for the remote board registry fallback.
type RegistryConfig struct {
	Enabled bool         `koanf:"enabled"`
	Client  ClientConfig `koanf:"client"`
}

// MCPConfig holds settings for the Model Context Protocol endpoint.
type MCPConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
}

// ClientConfig holds downstream HTTP client settings.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side rate limiting settings.
// A zero RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
