package app

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/pio-home/internal/domain"
	"github.com/jsamuelsen11/pio-home/internal/platform/config"
	"github.com/jsamuelsen11/pio-home/internal/ports"
	"github.com/jsamuelsen11/pio-home/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// fakeConfig is an in-memory ports.ProjectConfig.
type fakeConfig struct {
	sections    []string
	values      map[string]map[string]string
	validateErr error
}

func (c *fakeConfig) Get(section, key, def string) string {
	if v, ok := c.values[section][key]; ok {
		return v
	}
	return def
}

func (c *fakeConfig) GetList(section, key string) []string {
	v, ok := c.values[section][key]
	if !ok {
		return nil
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func (c *fakeConfig) HasOption(section, key string) bool {
	_, ok := c.values[section][key]
	return ok
}

func (c *fakeConfig) Sections() []string { return c.sections }

func (c *fakeConfig) Validate(bool) error { return c.validateErr }

type serviceMocks struct {
	configs   *mocks.MockConfigReader
	boards    *mocks.MockBoardRegistry
	platforms *mocks.MockPlatformCatalog
	runner    *mocks.MockCommandRunner
	state     *mocks.MockStateService
}

var fixedNow = time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)

func newTestService(t *testing.T, maxWorkers int) (*ProjectService, serviceMocks) {
	t.Helper()
	m := serviceMocks{
		configs:   mocks.NewMockConfigReader(t),
		boards:    mocks.NewMockBoardRegistry(t),
		platforms: mocks.NewMockPlatformCatalog(t),
		runner:    mocks.NewMockCommandRunner(t),
		state:     mocks.NewMockStateService(t),
	}
	cfg := &config.CoreConfig{
		MaxWorkers:     maxWorkers,
		SupportedIDEs:  []string{"clion", "vscode"},
		ArduinoLibsDir: "~/Documents/Arduino/libraries",
	}
	svc := NewProjectService(ProjectCollaborators{
		Configs:   m.configs,
		Boards:    m.boards,
		Platforms: m.platforms,
		Runner:    m.runner,
		State:     m.state,
	}, cfg, nil, discardLogger())
	svc.now = func() time.Time { return fixedNow }
	return svc, m
}

// serveConfigs makes the config reader answer from configs keyed by
// directory; other paths are not found.
func serveConfigs(m *mocks.MockConfigReader, configs map[string]ports.ProjectConfig) {
	m.EXPECT().Read(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, path string) (ports.ProjectConfig, error) {
			if cfg, ok := configs[filepath.Dir(path)]; ok {
				return cfg, nil
			}
			return nil, domain.ErrNotFound
		}).Maybe()
}

func mkdirs(t *testing.T, paths ...string) {
	t.Helper()
	for _, p := range paths {
		require.NoError(t, os.MkdirAll(p, 0o755))
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// realpath evaluates symlinks so expectations match resolved paths on
// systems where the temp dir is a link.
func realpath(t *testing.T, p string) string {
	t.Helper()
	r, err := filepath.EvalSymlinks(p)
	require.NoError(t, err)
	return r
}
