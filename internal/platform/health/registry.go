// Package health runs the readiness checks for the home server's
// dependencies: the build tool, the state database, the core home directory
// and, when enabled, the remote board registry.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/pio-home/internal/ports"
)

// DefaultCheckTimeout bounds a single checker during CheckAll.
const DefaultCheckTimeout = 2 * time.Second

var (
	_ ports.HealthRegistry = (*Registry)(nil)
	_ ports.HealthChecker  = (*Check)(nil)
)

// Registry holds checkers by name. Registering a second checker under an
// existing name replaces the first.
type Registry struct {
	timeout time.Duration

	mu       sync.RWMutex
	checkers map[string]ports.HealthChecker
}

// Option configures a Registry.
type Option func(*Registry)

// WithTimeout overrides DefaultCheckTimeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// New returns an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		timeout:  DefaultCheckTimeout,
		checkers: map[string]ports.HealthChecker{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker under checker.Name().
func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[name] = checker
}

// CheckAll runs every checker in parallel, each under its own deadline, and
// returns nil for healthy dependencies.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	snapshot := make(map[string]ports.HealthChecker, len(r.checkers))
	for name, c := range r.checkers {
		snapshot[name] = c
	}
	r.mu.RUnlock()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results = make(map[string]error, len(snapshot))
	)
	for name, c := range snapshot {
		wg.Go(func() {
			checkCtx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()
			err := c.HealthCheck(checkCtx)

			mu.Lock()
			results[name] = err
			mu.Unlock()
		})
	}
	wg.Wait()
	return results
}

// Check turns a function into a [ports.HealthChecker].
type Check struct {
	name string
	fn   func(context.Context) error
}

// NewCheck returns a checker called name that runs fn.
func NewCheck(name string, fn func(context.Context) error) *Check {
	return &Check{name: name, fn: fn}
}

func (c *Check) Name() string { return c.name }

func (c *Check) HealthCheck(ctx context.Context) error { return c.fn(ctx) }
