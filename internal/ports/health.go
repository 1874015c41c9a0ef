package ports

import "context"

// HealthChecker reports whether one dependency is usable. The build tool
// runner, the state database and the remote board registry implement it.
type HealthChecker interface {
	// Name identifies the dependency in readiness output, for example
	// "platformio-core", "state-db" or "board-registry".
	Name() string

	// HealthCheck returns nil when the dependency is usable. It must honour
	// ctx; readiness probes bound every check with a deadline.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers at startup and runs them per probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every checker and returns its result by name. A nil
	// value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
