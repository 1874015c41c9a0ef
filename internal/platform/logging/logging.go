// Package logging builds the slog logger and carries it through contexts.
//
//	logger := logging.New("info", "json", os.Stderr, logging.WithHomeDir(home))
//	ctx = logging.WithLogger(ctx, logger)
//	logging.FromContext(ctx).InfoContext(ctx, "fetching boards")
//
// Errors are logged with the operation, the entity they concern and the full
// chain:
//
//	logger.ErrorContext(ctx, "build tool call failed",
//	    slog.String("operation", "ImportNative"),
//	    slog.String("project_dir", dir),
//	    slog.Any("error", err),
//	)
//
// Inside a request the context logger already carries request_id and
// correlation_id.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

type settings struct {
	home string
}

// Option customizes New.
type Option func(*settings)

// WithHomeDir shortens string values under home to "~/..." in log output.
func WithHomeDir(home string) Option {
	return func(s *settings) { s.home = home }
}

// New builds the process logger. level accepts the slog level names
// (debug, info, warn, error, case-insensitive, with optional offsets such as
// "warn+2"); anything else falls back to info. format "text" selects
// logfmt-style output and everything else JSON. Debug level also records the
// source location. Credentials are always masked.
func New(level, format string, w io.Writer, with ...Option) *slog.Logger {
	var s settings
	for _, opt := range with {
		opt(&s)
	}

	replace := newRedactAttr()
	if s.home != "" {
		replace = chainReplace(replace, shortenHome(s.home))
	}

	lvl := parseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: replace,
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// With returns a context whose logger carries the given attributes, so that
// code further down the call chain logs them without repeating them.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}

func parseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
