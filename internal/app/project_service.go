// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel/metric"

	appctx "github.com/jsamuelsen11/pio-home/internal/app/context"
	"github.com/jsamuelsen11/pio-home/internal/app/fanout"
	"github.com/jsamuelsen11/pio-home/internal/domain/project"
	"github.com/jsamuelsen11/pio-home/internal/domain/state"
	"github.com/jsamuelsen11/pio-home/internal/platform/config"
	"github.com/jsamuelsen11/pio-home/internal/platform/fsutil"
	"github.com/jsamuelsen11/pio-home/internal/platform/telemetry"
	"github.com/jsamuelsen11/pio-home/internal/ports"
)

// Compile-time check that ProjectService implements ports.ProjectService.
var _ ports.ProjectService = (*ProjectService)(nil)

// Skip reasons recorded when a directory is left out of aggregation.
const (
	skipUnreadable = "unreadable"
	skipInvalid    = "invalid"
)

// ProjectCollaborators groups the ports a ProjectService depends on.
type ProjectCollaborators struct {
	Configs   ports.ConfigReader
	Boards    ports.BoardRegistry
	Platforms ports.PlatformCatalog
	Runner    ports.CommandRunner
	State     ports.StateService
}

// ProjectService implements ports.ProjectService. It aggregates project
// metadata from configuration files and orchestrates build tool commands
// for project creation and import.
type ProjectService struct {
	configs   ports.ConfigReader
	boards    ports.BoardRegistry
	platforms ports.PlatformCatalog
	runner    ports.CommandRunner
	state     ports.StateService

	maxWorkers    int
	supportedIDEs []string
	vendorLibsDir string

	metrics *telemetry.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

// NewProjectService creates a ProjectService. cfg supplies the worker bound,
// the IDE allow-list and the vendor library directory. metrics may be nil.
func NewProjectService(c ProjectCollaborators, cfg *config.CoreConfig, metrics *telemetry.Metrics, logger *slog.Logger) *ProjectService {
	return &ProjectService{
		configs:       c.Configs,
		boards:        c.Boards,
		platforms:     c.Platforms,
		runner:        c.Runner,
		state:         c.State,
		maxWorkers:    cfg.MaxWorkers,
		supportedIDEs: cfg.SupportedIDEs,
		vendorLibsDir: cfg.ArduinoLibsDir,
		metrics:       metrics,
		logger:        logger,
		now:           time.Now,
	}
}

// skipError marks a directory that aggregation leaves out.
type skipError struct {
	reason string
	err    error
}

func (e *skipError) Error() string { return e.reason + ": " + e.err.Error() }
func (e *skipError) Unwrap() error { return e.err }

// ListProjects returns one summary per readable, valid project directory in
// input order. Directories that fail are logged at debug level and skipped.
// A context that ends mid-listing fails the whole call.
func (s *ProjectService) ListProjects(ctx context.Context, dirs []string) ([]project.Summary, error) {
	rc := appctx.ForRequest(ctx)

	if len(dirs) == 0 {
		st, err := s.appState(rc)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to load recent projects",
				slog.String("operation", "ListProjects"),
				slog.Any("error", err),
			)
			return nil, err
		}
		dirs = st.RecentProjects
	}

	s.logger.InfoContext(ctx, "listing projects", slog.Int("count", len(dirs)))

	results := fanout.Run(ctx, s.maxWorkers, dirs, func(ctx context.Context, dir string) (project.Summary, error) {
		return s.summarize(ctx, rc, dir)
	})
	if err := ctx.Err(); err != nil {
		s.logger.DebugContext(ctx, "project listing abandoned", slog.Any("error", err))
		return nil, err
	}

	summaries := fanout.Collect(results, func(idx int, err error) {
		reason := skipUnreadable
		var se *skipError
		if errors.As(err, &se) {
			reason = se.reason
		}
		s.logger.DebugContext(ctx, "skipping project directory",
			slog.String("dir", dirs[idx]),
			slog.String("reason", reason),
			slog.Any("error", err),
		)
		if s.metrics != nil {
			s.metrics.ProjectsSkipped.Add(ctx, 1, metric.WithAttributes(telemetry.AttrReason.String(reason)))
		}
	})
	return summaries, nil
}

// summarize builds the summary of a single project directory.
func (s *ProjectService) summarize(ctx context.Context, rc *appctx.RequestContext, dir string) (project.Summary, error) {
	cfg, err := s.configs.Read(ctx, filepath.Join(dir, project.ConfigFileName))
	if err != nil {
		return project.Summary{}, &skipError{reason: skipUnreadable, err: err}
	}
	if err := cfg.Validate(true); err != nil {
		return project.Summary{}, &skipError{reason: skipInvalid, err: err}
	}

	info, err := os.Stat(dir)
	if err != nil {
		return project.Summary{}, &skipError{reason: skipUnreadable, err: err}
	}

	libdepsRoot := cfg.Get(project.SectionMain, project.OptLibdepsDir, project.DefaultLibdepsDir)
	extra := cfg.GetList(project.SectionMain, project.OptLibExtra)
	var envDirs, boardIDs []string
	for _, section := range cfg.Sections() {
		name, ok := project.EnvName(section)
		if !ok {
			continue
		}
		envDirs = append(envDirs, filepath.Join(libdepsRoot, name))
		if cfg.HasOption(section, project.OptBoard) {
			boardIDs = append(boardIDs, cfg.Get(section, project.OptBoard, ""))
		}
		extra = append(extra, cfg.GetList(section, project.OptLibExtra)...)
	}

	summary := project.Summary{
		Path:     dir,
		Name:     project.DisplayName(dir),
		Modified: info.ModTime(),
		Boards:   make([]project.BoardRef, 0, len(boardIDs)),
	}
	for _, id := range boardIDs {
		summary.Boards = append(summary.Boards, project.BoardRef{ID: id, Name: s.boardName(rc, id)})
	}
	for _, p := range existingDirs(dir, envDirs) {
		summary.EnvLibStorages = append(summary.EnvLibStorages, project.LibStorage{Name: filepath.Base(p), Path: p})
	}
	for _, p := range existingDirs(dir, extra) {
		summary.ExtraLibStorages = append(summary.ExtraLibStorages, project.LibStorage{Name: project.DisplayName(p), Path: p})
	}
	return summary, nil
}

// boardName resolves a board ID to its display name, memoized for the
// request. Any lookup failure falls back to the ID.
func (s *ProjectService) boardName(rc *appctx.RequestContext, id string) string {
	name, err := appctx.GetOrFetch(rc, "board:"+id, func(ctx context.Context) (string, error) {
		b, err := s.boards.Board(ctx, id)
		if err != nil {
			return "", err
		}
		return b.Name, nil
	})
	if err != nil || name == "" {
		s.logger.DebugContext(rc, "board lookup failed, using id",
			slog.String("board", id),
			slog.Any("error", err),
		)
		return id
	}
	return name
}

// existingDirs resolves paths against base and keeps only those that are
// existing directories, in order.
func existingDirs(base string, paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		resolved, err := fsutil.Resolve(base, p)
		if err != nil || !fsutil.IsDir(resolved) {
			continue
		}
		out = append(out, resolved)
	}
	return out
}

// appState loads the application state once per request.
func (s *ProjectService) appState(rc *appctx.RequestContext) (*state.AppState, error) {
	st, err := appctx.GetOrFetch(rc, "app:state", s.state.GetState)
	if err != nil {
		return nil, fmt.Errorf("loading app state: %w", err)
	}
	return st, nil
}
