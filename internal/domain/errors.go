package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")

	// ErrUnknownBoard is returned by board registries when no installed or
	// remote platform declares the requested board ID.
	ErrUnknownBoard = errors.New("unknown board")
	// ErrUnknownPlatform is returned when a board references a platform that
	// is not installed.
	ErrUnknownPlatform = errors.New("unknown platform")

	ErrNotForeignProject = errors.New("not an arduino project")
	ErrNotNativeProject  = errors.New("not a platformio project")

	// ErrCommandFailed marks failures of the external build-tool command.
	ErrCommandFailed = errors.New("build tool call failed")
)

// Error codes surfaced to RPC clients for project kind failures.
const (
	CodeNotForeignProject = 4000
	CodeNotNativeProject  = 4001
	CodeCommandFailed     = 4003
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ProjectKindError reports that a directory is not the kind of project an
// import operation expects. Kind is one of ErrNotForeignProject or
// ErrNotNativeProject; Path is the offending directory.
type ProjectKindError struct {
	Kind error
	Path string
}

// NewNotForeignProjectError returns a ProjectKindError for a directory that
// has no sketch entry file.
func NewNotForeignProjectError(path string) *ProjectKindError {
	return &ProjectKindError{Kind: ErrNotForeignProject, Path: path}
}

// NewNotNativeProjectError returns a ProjectKindError for a directory that
// has no platformio.ini.
func NewNotNativeProjectError(path string) *ProjectKindError {
	return &ProjectKindError{Kind: ErrNotNativeProject, Path: path}
}

func (e *ProjectKindError) Error() string {
	switch {
	case errors.Is(e.Kind, ErrNotForeignProject):
		return "Not an Arduino project: " + e.Path
	case errors.Is(e.Kind, ErrNotNativeProject):
		return "Not a PlatformIO project: " + e.Path
	default:
		return fmt.Sprintf("%v: %s", e.Kind, e.Path)
	}
}

// Unwrap exposes both the kind sentinel and ErrValidation, so callers can
// match on either.
func (e *ProjectKindError) Unwrap() []error {
	return []error{e.Kind, ErrValidation}
}

// Code returns the numeric RPC error code for the failure kind.
func (e *ProjectKindError) Code() int {
	if errors.Is(e.Kind, ErrNotNativeProject) {
		return CodeNotNativeProject
	}
	return CodeNotForeignProject
}

// CommandError describes a failed invocation of the external build tool.
type CommandError struct {
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s: %s (exit code %d)", ErrCommandFailed, strings.Join(e.Args, " "), e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

// Unwrap exposes ErrCommandFailed and the underlying exec error, if any.
func (e *CommandError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrCommandFailed}
	}
	return []error{ErrCommandFailed, e.Err}
}

// Code returns the numeric RPC error code for build tool failures.
func (e *CommandError) Code() int {
	return CodeCommandFailed
}
