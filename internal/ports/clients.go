package ports

import (
	"context"

	"github.com/jsamuelsen11/pio-home/internal/domain/board"
	"github.com/jsamuelsen11/pio-home/internal/domain/command"
	"github.com/jsamuelsen11/pio-home/internal/domain/state"
	"github.com/jsamuelsen11/pio-home/internal/platform/async"
)

// ProjectConfig is a parsed project configuration file: named sections of
// key/value options.
type ProjectConfig interface {
	// Get returns the option value, or def when the section or key is absent.
	Get(section, key, def string) string

	// GetList returns a multi-value option split on newlines and commas,
	// with blanks removed. Absent options yield nil.
	GetList(section, key string) []string

	// HasOption reports whether the section declares key.
	HasOption(section, key string) bool

	// Sections returns the section names in file order.
	Sections() []string

	// Validate checks the structural rules of the configuration. When
	// silent is false, non-fatal findings are logged as warnings.
	Validate(silent bool) error
}

// ConfigReader reads project configuration files.
type ConfigReader interface {
	// Read parses the configuration file at path.
	// Returns domain.ErrNotFound if the file does not exist.
	Read(ctx context.Context, path string) (ProjectConfig, error)
}

// BoardRegistry resolves board IDs to board definitions.
type BoardRegistry interface {
	// Board returns the board with the given ID.
	// Returns domain.ErrUnknownBoard if no platform declares the ID, or
	// domain.ErrUnknownPlatform if the declaring platform is not installed.
	Board(ctx context.Context, id string) (*board.Board, error)
}

// PlatformCatalog lists installed platform packages.
type PlatformCatalog interface {
	// Installed returns the installed platforms. A missing platforms
	// directory yields an empty list.
	Installed(ctx context.Context) ([]board.Platform, error)
}

// CommandRunner invokes the external build tool.
type CommandRunner interface {
	// Run starts the build tool with args and returns immediately. The
	// Pending fails with a *domain.CommandError when the tool exits
	// non-zero or cannot be started.
	Run(ctx context.Context, args []string) *async.Pending[command.Result]
}

// StateStore persists the application state.
type StateStore interface {
	// Load returns the stored state. A store that has never been written
	// returns a zero AppState, not an error.
	Load(ctx context.Context) (*state.AppState, error)

	// Save replaces the stored state.
	Save(ctx context.Context, s *state.AppState) error
}
