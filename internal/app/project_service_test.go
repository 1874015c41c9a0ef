package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/pio-home/internal/domain"
	"github.com/jsamuelsen11/pio-home/internal/domain/board"
	"github.com/jsamuelsen11/pio-home/internal/domain/project"
	"github.com/jsamuelsen11/pio-home/internal/domain/state"
	"github.com/jsamuelsen11/pio-home/internal/ports"
	"github.com/jsamuelsen11/pio-home/mocks"
)

func unoConfig() *fakeConfig {
	return &fakeConfig{
		sections: []string{"platformio", "env:uno"},
		values: map[string]map[string]string{
			"env:uno": {"board": "uno"},
		},
	}
}

func TestProjectService_ListProjects(t *testing.T) {
	t.Parallel()

	t.Run("single uno environment", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t, 4)

		dir := filepath.Join(t.TempDir(), "work", "blink")
		mkdirs(t, filepath.Join(dir, ".piolibdeps", "uno"))
		serveConfigs(m.configs, map[string]ports.ProjectConfig{dir: unoConfig()})
		m.boards.EXPECT().Board(mock.Anything, "uno").Return(&board.Board{ID: "uno", Name: "Arduino Uno"}, nil)

		got, err := svc.ListProjects(context.Background(), []string{dir})
		require.NoError(t, err)
		require.Len(t, got, 1)

		s := got[0]
		assert.Equal(t, dir, s.Path)
		assert.Equal(t, "work"+string(filepath.Separator)+"blink", s.Name)
		assert.False(t, s.Modified.IsZero())
		assert.Equal(t, []project.BoardRef{{ID: "uno", Name: "Arduino Uno"}}, s.Boards)
		assert.Equal(t, []project.LibStorage{{
			Name: "uno",
			Path: realpath(t, filepath.Join(dir, ".piolibdeps", "uno")),
		}}, s.EnvLibStorages)
		assert.Empty(t, s.ExtraLibStorages)
	})

	t.Run("env storage omitted when libdeps dir is missing", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t, 4)

		dir := t.TempDir()
		serveConfigs(m.configs, map[string]ports.ProjectConfig{dir: unoConfig()})
		m.boards.EXPECT().Board(mock.Anything, "uno").Return(nil, domain.ErrUnknownPlatform)

		got, err := svc.ListProjects(context.Background(), []string{dir})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, []project.BoardRef{{ID: "uno", Name: "uno"}}, got[0].Boards)
		assert.Empty(t, got[0].EnvLibStorages)
	})

	t.Run("skips unreadable and invalid directories keeping order", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t, 2)

		root := t.TempDir()
		a, b, c, d := filepath.Join(root, "a"), filepath.Join(root, "b"), filepath.Join(root, "c"), filepath.Join(root, "d")
		mkdirs(t, a, b, c, d)

		invalid := mocks.NewMockProjectConfig(t)
		invalid.EXPECT().Validate(true).Return(errors.New("unknown env"))

		empty := &fakeConfig{sections: []string{"platformio"}}
		serveConfigs(m.configs, map[string]ports.ProjectConfig{a: empty, c: invalid, d: empty})

		got, err := svc.ListProjects(context.Background(), []string{a, b, c, d})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, a, got[0].Path)
		assert.Equal(t, d, got[1].Path)
	})

	t.Run("library paths resolved and filtered", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t, 1)

		root := t.TempDir()
		dir := filepath.Join(root, "proj")
		shared := filepath.Join(root, "vendor", "shared")
		mkdirs(t, dir, shared, filepath.Join(dir, "lib2"), filepath.Join(dir, "deps", "mega"))

		cfg := &fakeConfig{
			sections: []string{"platformio", "env:mega", "env:due"},
			values: map[string]map[string]string{
				"platformio": {"lib_extra_dirs": shared + ", /does/not/exist", "libdeps_dir": "deps"},
				"env:mega":   {"lib_extra_dirs": "lib2"},
			},
		}
		serveConfigs(m.configs, map[string]ports.ProjectConfig{dir: cfg})

		got, err := svc.ListProjects(context.Background(), []string{dir})
		require.NoError(t, err)
		require.Len(t, got, 1)

		assert.Empty(t, got[0].Boards)
		assert.Equal(t, []project.LibStorage{
			{Name: "mega", Path: realpath(t, filepath.Join(dir, "deps", "mega"))},
		}, got[0].EnvLibStorages)
		assert.Equal(t, []project.LibStorage{
			{Name: "vendor" + string(filepath.Separator) + "shared", Path: realpath(t, shared)},
			{Name: "proj" + string(filepath.Separator) + "lib2", Path: realpath(t, filepath.Join(dir, "lib2"))},
		}, got[0].ExtraLibStorages)
	})

	t.Run("board lookups memoized per request", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t, 1)

		root := t.TempDir()
		a, b := filepath.Join(root, "a"), filepath.Join(root, "b")
		mkdirs(t, a, b)
		serveConfigs(m.configs, map[string]ports.ProjectConfig{a: unoConfig(), b: unoConfig()})
		m.boards.EXPECT().Board(mock.Anything, "uno").Return(nil, domain.ErrUnknownBoard).Once()

		got, err := svc.ListProjects(context.Background(), []string{a, b})
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, s := range got {
			assert.Equal(t, []project.BoardRef{{ID: "uno", Name: "uno"}}, s.Boards)
		}
	})

	t.Run("falls back to recent projects", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t, 4)

		dir := t.TempDir()
		m.state.EXPECT().GetState(mock.Anything).Return(&state.AppState{RecentProjects: []string{dir}}, nil)
		serveConfigs(m.configs, map[string]ports.ProjectConfig{dir: &fakeConfig{}})

		got, err := svc.ListProjects(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, dir, got[0].Path)
	})

	t.Run("cancellation fails the listing", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t, 1)

		root := t.TempDir()
		dirs := []string{filepath.Join(root, "a"), filepath.Join(root, "b"), filepath.Join(root, "c")}
		mkdirs(t, dirs...)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		m.configs.EXPECT().Read(mock.Anything, mock.Anything).RunAndReturn(
			func(context.Context, string) (ports.ProjectConfig, error) {
				cancel()
				return unoConfig(), nil
			})
		m.boards.EXPECT().Board(mock.Anything, "uno").Return(nil, domain.ErrUnknownBoard).Maybe()

		got, err := svc.ListProjects(ctx, dirs)
		require.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, got)
	})

	t.Run("state failure is reported", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t, 4)

		m.state.EXPECT().GetState(mock.Anything).Return(nil, domain.ErrUnavailable)

		_, err := svc.ListProjects(context.Background(), nil)
		assert.ErrorIs(t, err, domain.ErrUnavailable)
	})
}
