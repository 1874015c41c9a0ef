package ports

import (
	"context"

	"github.com/jsamuelsen11/pio-home/internal/domain/example"
	"github.com/jsamuelsen11/pio-home/internal/domain/project"
	"github.com/jsamuelsen11/pio-home/internal/domain/state"
	"github.com/jsamuelsen11/pio-home/internal/platform/async"
)

// ProjectService defines the service port for project aggregation and
// project creation/import. Implemented by the application layer; called by
// inbound adapters (JSON-RPC handler, MCP tools).
type ProjectService interface {
	// ListProjects returns one summary per directory whose configuration
	// can be read and validated, in input order. Unreadable or invalid
	// directories are skipped, never reported. An empty dirs falls back to
	// the recent projects list from application state.
	ListProjects(ctx context.Context, dirs []string) ([]project.Summary, error)

	// InitProject initializes ProjectDir with the build tool and, for known
	// frameworks, writes an entry-point skeleton once the command succeeds.
	// Returns domain.ErrValidation synchronously for missing arguments.
	InitProject(ctx context.Context, req InitRequest) (*async.Pending[string], error)

	// ImportForeign converts an Arduino sketch directory into a new project
	// under the projects dir. A directory that is already a native project
	// is returned unchanged. Returns a *domain.ProjectKindError
	// synchronously when the directory holds no sketch.
	ImportForeign(ctx context.Context, req ImportForeignRequest) (*async.Pending[string], error)

	// ImportNative copies a native project into a new directory under the
	// projects dir and re-initializes it. Returns a *domain.ProjectKindError
	// synchronously when the source is not a native project.
	ImportNative(ctx context.Context, req ImportNativeRequest) (*async.Pending[string], error)

	// ListExamples returns the example projects of every installed platform,
	// sorted by platform title.
	ListExamples(ctx context.Context) ([]example.Catalog, error)
}

// InitRequest carries the arguments of ProjectService.InitProject.
// Framework is optional.
type InitRequest struct {
	Board      string
	Framework  string
	ProjectDir string
}

// ImportForeignRequest carries the arguments of ProjectService.ImportForeign.
type ImportForeignRequest struct {
	Board         string
	UseVendorLibs bool
	SourceDir     string
}

// ImportNativeRequest carries the arguments of ProjectService.ImportNative.
type ImportNativeRequest struct {
	SourceDir string
}

// StateService defines the service port for the persisted application state.
type StateService interface {
	// GetState returns the current state with defaults applied.
	GetState(ctx context.Context) (*state.AppState, error)

	// SaveState validates and persists s, returning the stored state.
	// Returns domain.ErrValidation if s fails validation.
	SaveState(ctx context.Context, s *state.AppState) (*state.AppState, error)
}
