package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/pio-home/internal/domain"
	"github.com/jsamuelsen11/pio-home/internal/domain/state"
	"github.com/jsamuelsen11/pio-home/mocks"
)

const defaultProjectsDir = "/home/dev/Documents/PlatformIO/Projects"

func TestStateService_GetState(t *testing.T) {
	t.Parallel()

	t.Run("applies default projects dir", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockStateStore(t)
		svc := NewStateService(store, defaultProjectsDir, discardLogger())

		store.EXPECT().Load(mock.Anything).Return(&state.AppState{RecentProjects: []string{"/p"}}, nil)

		got, err := svc.GetState(context.Background())
		require.NoError(t, err)
		assert.Equal(t, defaultProjectsDir, got.ProjectsDir)
		assert.Equal(t, []string{"/p"}, got.RecentProjects)
	})

	t.Run("keeps stored projects dir", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockStateStore(t)
		svc := NewStateService(store, defaultProjectsDir, discardLogger())

		store.EXPECT().Load(mock.Anything).Return(&state.AppState{ProjectsDir: "/custom"}, nil)

		got, err := svc.GetState(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/custom", got.ProjectsDir)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockStateStore(t)
		svc := NewStateService(store, defaultProjectsDir, discardLogger())

		store.EXPECT().Load(mock.Anything).Return(nil, domain.ErrUnavailable)

		_, err := svc.GetState(context.Background())
		assert.ErrorIs(t, err, domain.ErrUnavailable)
	})
}

func TestStateService_SaveState(t *testing.T) {
	t.Parallel()

	t.Run("saves with defaults", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockStateStore(t)
		svc := NewStateService(store, defaultProjectsDir, discardLogger())

		want := &state.AppState{RecentProjects: []string{"/a"}, ProjectsDir: defaultProjectsDir, CoreCaller: "vscode"}
		store.EXPECT().Save(mock.Anything, want).Return(nil)

		got, err := svc.SaveState(context.Background(), &state.AppState{RecentProjects: []string{"/a"}, CoreCaller: "vscode"})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("invalid state is rejected", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockStateStore(t)
		svc := NewStateService(store, "", discardLogger())

		_, err := svc.SaveState(context.Background(), &state.AppState{RecentProjects: []string{" "}})
		require.ErrorIs(t, err, domain.ErrValidation)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "projects_dir")
		assert.Contains(t, verr.Fields, "recent_projects")
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockStateStore(t)
		svc := NewStateService(store, defaultProjectsDir, discardLogger())

		store.EXPECT().Save(mock.Anything, mock.Anything).Return(domain.ErrUnavailable)

		_, err := svc.SaveState(context.Background(), &state.AppState{})
		assert.ErrorIs(t, err, domain.ErrUnavailable)
	})
}
