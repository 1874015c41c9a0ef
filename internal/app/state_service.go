package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/pio-home/internal/domain/state"
	"github.com/jsamuelsen11/pio-home/internal/ports"
)

// Compile-time check that StateService implements ports.StateService.
var _ ports.StateService = (*StateService)(nil)

// StateService implements ports.StateService on top of a StateStore,
// filling in the configured default projects dir.
type StateService struct {
	store              ports.StateStore
	defaultProjectsDir string
	logger             *slog.Logger
}

// NewStateService creates a StateService.
func NewStateService(store ports.StateStore, defaultProjectsDir string, logger *slog.Logger) *StateService {
	return &StateService{
		store:              store,
		defaultProjectsDir: defaultProjectsDir,
		logger:             logger,
	}
}

// GetState returns the stored state with defaults applied.
func (s *StateService) GetState(ctx context.Context) (*state.AppState, error) {
	st, err := s.store.Load(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load app state",
			slog.String("operation", "GetState"),
			slog.Any("error", err),
		)
		return nil, err
	}
	s.applyDefaults(st)
	return st, nil
}

// SaveState validates and persists st.
func (s *StateService) SaveState(ctx context.Context, st *state.AppState) (*state.AppState, error) {
	s.logger.InfoContext(ctx, "saving app state", slog.Int("recent_projects", len(st.RecentProjects)))

	saved := *st
	s.applyDefaults(&saved)
	if err := saved.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, &saved); err != nil {
		s.logger.ErrorContext(ctx, "failed to save app state",
			slog.String("operation", "SaveState"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return &saved, nil
}

func (s *StateService) applyDefaults(st *state.AppState) {
	if st.ProjectsDir == "" {
		st.ProjectsDir = s.defaultProjectsDir
	}
}
