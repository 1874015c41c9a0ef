package config

const (
	defaultServerPort = 8008

	defaultMaxWorkers = 8

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 10.0
	defaultRateLimitBurst = 5
)

// supportedIDEs are the IDE integrations the build tool can generate
// project files for.
var supportedIDEs = []string{
	"atom", "clion", "codeblocks", "eclipse", "emacs", "netbeans",
	"qtcreator", "sublimetext", "vim", "visualstudio", "vscode",
}

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "127.0.0.1",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10m",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "10m",

		"log.level":  "info",
		"log.format": "json",

		"core.executable":       "platformio",
		"core.home_dir":         "~/.platformio",
		"core.command_timeout":  "10m",
		"core.max_workers":      defaultMaxWorkers,
		"core.supported_ides":   supportedIDEs,
		"core.arduino_libs_dir": "~/Documents/Arduino/libraries",

		"state.db_path":              "~/.platformio/homestate.db",
		"state.default_projects_dir": "~/Documents/PlatformIO/Projects",

		"registry.enabled":                                false,
		"registry.client.base_url":                        "https://api.registry.platformio.org",
		"registry.client.timeout":                         "10s",
		"registry.client.retry.max_attempts":              defaultRetryMaxAttempts,
		"registry.client.retry.initial_interval":          "100ms",
		"registry.client.retry.max_interval":              "5s",
		"registry.client.retry.multiplier":                defaultRetryMultiplier,
		"registry.client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"registry.client.circuit_breaker.timeout":         "30s",
		"registry.client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"registry.client.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"registry.client.rate_limit.burst_size":           defaultRateLimitBurst,

		"mcp.enabled": false,
		"mcp.path":    "/mcp",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "pio-home",
	}
}
