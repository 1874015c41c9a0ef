// Package pioexec runs the PlatformIO Core command line tool. It implements
// ports.CommandRunner: every invocation runs in the background and reports
// through an async.Pending, detached from the caller's cancellation and
// bounded by the configured command timeout.
package pioexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/pio-home/internal/domain"
	"github.com/jsamuelsen11/pio-home/internal/domain/command"
	"github.com/jsamuelsen11/pio-home/internal/platform/async"
	"github.com/jsamuelsen11/pio-home/internal/platform/config"
	"github.com/jsamuelsen11/pio-home/internal/platform/logging"
	"github.com/jsamuelsen11/pio-home/internal/platform/telemetry"
	"github.com/jsamuelsen11/pio-home/internal/ports"
)

// Name identifies the runner in health results and breaker logs.
const Name = "platformio-core"

const (
	breakerMaxFailures = 3
	breakerOpenTimeout = 30 * time.Second

	// waitDelay bounds how long Wait blocks on output pipes after the
	// process has been killed on timeout.
	waitDelay = 5 * time.Second
)

// Compile-time interface checks.
var (
	_ ports.CommandRunner = (*Runner)(nil)
	_ ports.HealthChecker = (*Runner)(nil)
)

// Runner executes the build tool as a child process.
type Runner struct {
	executable string
	timeout    time.Duration
	breaker    *gobreaker.CircuitBreaker[command.Result]
	metrics    *telemetry.Metrics
	logger     *slog.Logger
}

// New creates a Runner for cfg.Executable. If metrics is nil, metric
// recording is skipped.
//
// The circuit breaker counts only failures to run the tool at all (missing
// binary, timeouts, kills). A non-zero exit is an answer from the tool, not
// an outage, and does not trip it.
func New(cfg *config.CoreConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Runner {
	cb := gobreaker.NewCircuitBreaker[command.Result](gobreaker.Settings{
		Name:        Name,
		MaxRequests: 1,
		Timeout:     breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerMaxFailures
		},
		IsSuccessful: func(err error) bool {
			var cmdErr *domain.CommandError
			if errors.As(err, &cmdErr) {
				return cmdErr.ExitCode > 0
			}
			return err == nil
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Runner{
		executable: cfg.Executable,
		timeout:    cfg.CommandTimeout,
		breaker:    cb,
		metrics:    metrics,
		logger:     logger,
	}
}

// Run starts the build tool with args in the background. The command keeps
// running when ctx is canceled; it is stopped only by the command timeout.
// Values carried by ctx (logger, trace) are kept.
func (r *Runner) Run(ctx context.Context, args []string) *async.Pending[command.Result] {
	return async.Go(context.WithoutCancel(ctx), func(ctx context.Context) (command.Result, error) {
		ctx, cancel := context.WithTimeout(ctx, r.timeout)
		defer cancel()

		start := time.Now()
		res, err := r.breaker.Execute(func() (command.Result, error) {
			return r.exec(ctx, args)
		})
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			err = &domain.CommandError{
				Args:     args,
				ExitCode: -1,
				Err:      fmt.Errorf("%w: %w", domain.ErrUnavailable, err),
			}
		}
		r.recordMetrics(ctx, args, start, err)
		return res, err
	})
}

// exec runs one child process and classifies its outcome.
func (r *Runner) exec(ctx context.Context, args []string) (command.Result, error) {
	ctx, span := r.startSpan(ctx, args)
	defer span.End()

	logger := logging.FromContext(ctx)
	logger.DebugContext(ctx, "running build tool",
		slog.String("executable", r.executable),
		slog.String("args", strings.Join(args, " ")),
	)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.executable, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	res := command.Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return res, nil
	}

	cmdErr := &domain.CommandError{Args: args, ExitCode: -1, Stderr: res.Stderr, Err: err}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		cmdErr.ExitCode = exitErr.ExitCode()
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		cmdErr.Err = fmt.Errorf("%w: %w", err, ctxErr)
	}

	span.RecordError(cmdErr)
	span.SetStatus(codes.Error, cmdErr.Error())
	span.SetAttributes(attribute.Int("process.exit_code", cmdErr.ExitCode))

	logger.WarnContext(ctx, "build tool call failed",
		slog.String("operation", "pioexec.Run"),
		slog.String("args", strings.Join(args, " ")),
		slog.Int("exit_code", cmdErr.ExitCode),
		slog.Any("error", err),
	)
	return res, cmdErr
}

// Name returns the identifier used with a [ports.HealthRegistry].
func (r *Runner) Name() string {
	return Name
}

// HealthCheck reports whether the build tool can be found and whether the
// circuit breaker is letting invocations through.
func (r *Runner) HealthCheck(_ context.Context) error {
	if _, err := exec.LookPath(r.executable); err != nil {
		return fmt.Errorf("%s: %w", Name, err)
	}
	switch state := r.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", Name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", Name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", Name, state)
	}
}

func (r *Runner) startSpan(ctx context.Context, args []string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("pioexec")
	return tracer.Start(ctx, "pio "+action(args),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("process.executable.name", r.executable),
			attribute.StringSlice("process.command_args", args),
		),
	)
}

// recordMetrics records command duration and count. Safe to call with nil
// metrics.
func (r *Runner) recordMetrics(ctx context.Context, args []string, start time.Time, err error) {
	if r.metrics == nil {
		return
	}

	result := "success"
	var cmdErr *domain.CommandError
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrUnavailable):
		result = "circuit_open"
	case errors.As(err, &cmdErr) && cmdErr.ExitCode > 0:
		result = "exit_error"
	default:
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrAction.String(action(args)),
		telemetry.AttrResult.String(result),
	)
	r.metrics.CommandDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	r.metrics.CommandTotal.Add(ctx, 1, attrs)
}

func action(args []string) string {
	if len(args) == 0 {
		return "unknown"
	}
	return args[0]
}
