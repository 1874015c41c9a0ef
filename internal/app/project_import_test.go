package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/pio-home/internal/domain"
	"github.com/jsamuelsen11/pio-home/internal/domain/command"
	"github.com/jsamuelsen11/pio-home/internal/domain/state"
	"github.com/jsamuelsen11/pio-home/internal/platform/async"
	"github.com/jsamuelsen11/pio-home/internal/ports"
)

func succeeded() *async.Pending[command.Result] {
	return async.Resolved(command.Result{})
}

func TestProjectService_InitProject(t *testing.T) {
	t.Parallel()

	t.Run("missing arguments fail synchronously", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t, 1)

		p, err := svc.InitProject(context.Background(), ports.InitRequest{})
		require.Nil(t, p)
		require.ErrorIs(t, err, domain.ErrValidation)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, domain.MsgRequired, verr.Fields["project_dir"])
		assert.Equal(t, domain.MsgRequired, verr.Fields["board"])
	})

	t.Run("arduino writes the entry point", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t, 1)

		dir := filepath.Join(t.TempDir(), "new")
		m.state.EXPECT().GetState(mock.Anything).Return(&state.AppState{CoreCaller: "vscode"}, nil)
		serveConfigs(m.configs, nil)
		m.runner.EXPECT().Run(mock.Anything, []string{
			"init", "--project-dir", dir, "--board", "uno",
			"--project-option", "framework=arduino", "--ide", "vscode",
		}).Return(succeeded())

		p, err := svc.InitProject(context.Background(), ports.InitRequest{Board: "uno", Framework: "arduino", ProjectDir: dir})
		require.NoError(t, err)

		got, err := p.Wait(context.Background())
		require.NoError(t, err)
		assert.Equal(t, dir, got)

		content, err := os.ReadFile(filepath.Join(dir, "src", "main.cpp"))
		require.NoError(t, err)
		want, _ := command.Boilerplate("arduino")
		assert.Equal(t, want, string(content))
	})

	t.Run("existing entry point is left untouched", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t, 1)

		dir := t.TempDir()
		mainPath := filepath.Join(dir, "src", "main.cpp")
		writeFile(t, mainPath, "// mine\n")
		m.state.EXPECT().GetState(mock.Anything).Return(&state.AppState{}, nil)
		serveConfigs(m.configs, nil)
		m.runner.EXPECT().Run(mock.Anything, mock.Anything).Return(succeeded())

		p, err := svc.InitProject(context.Background(), ports.InitRequest{Board: "uno", Framework: "arduino", ProjectDir: dir})
		require.NoError(t, err)
		_, err = p.Wait(context.Background())
		require.NoError(t, err)

		content, err := os.ReadFile(mainPath)
		require.NoError(t, err)
		assert.Equal(t, "// mine\n", string(content))
	})

	t.Run("mbed honours src_dir", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t, 1)

		dir := t.TempDir()
		m.state.EXPECT().GetState(mock.Anything).Return(&state.AppState{CoreCaller: "atom"}, nil)
		serveConfigs(m.configs, map[string]ports.ProjectConfig{dir: &fakeConfig{
			sections: []string{"platformio"},
			values:   map[string]map[string]string{"platformio": {"src_dir": "source"}},
		}})
		m.runner.EXPECT().Run(mock.Anything, []string{
			"init", "--project-dir", dir, "--board", "nucleo_f401re",
			"--project-option", "framework=mbed",
		}).Return(succeeded())

		p, err := svc.InitProject(context.Background(), ports.InitRequest{Board: "nucleo_f401re", Framework: "mbed", ProjectDir: dir})
		require.NoError(t, err)
		_, err = p.Wait(context.Background())
		require.NoError(t, err)

		content, err := os.ReadFile(filepath.Join(dir, "source", "main.cpp"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "#include <mbed.h>")
	})

	t.Run("unknown framework writes nothing", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t, 1)

		dir := t.TempDir()
		m.state.EXPECT().GetState(mock.Anything).Return(&state.AppState{}, nil)
		m.runner.EXPECT().Run(mock.Anything, mock.Anything).Return(succeeded())

		p, err := svc.InitProject(context.Background(), ports.InitRequest{Board: "esp32dev", Framework: "espidf", ProjectDir: dir})
		require.NoError(t, err)
		got, err := p.Wait(context.Background())
		require.NoError(t, err)
		assert.Equal(t, dir, got)
		assert.NoDirExists(t, filepath.Join(dir, "src"))
	})

	t.Run("command failure skips the continuation", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t, 1)

		dir := t.TempDir()
		cmdErr := &domain.CommandError{Args: []string{"init"}, ExitCode: 1, Stderr: "Error: Unknown board ID"}
		m.state.EXPECT().GetState(mock.Anything).Return(&state.AppState{}, nil)
		m.runner.EXPECT().Run(mock.Anything, mock.Anything).Return(async.Failed[command.Result](cmdErr))

		p, err := svc.InitProject(context.Background(), ports.InitRequest{Board: "nope", Framework: "arduino", ProjectDir: dir})
		require.NoError(t, err)

		_, err = p.Wait(context.Background())
		require.ErrorIs(t, err, domain.ErrCommandFailed)
		var got *domain.CommandError
		require.ErrorAs(t, err, &got)
		assert.Same(t, cmdErr, got)
		assert.NoFileExists(t, filepath.Join(dir, "src", "main.cpp"))
	})

	t.Run("state failure only drops the ide hint", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t, 1)

		dir := t.TempDir()
		m.state.EXPECT().GetState(mock.Anything).Return(nil, domain.ErrUnavailable)
		m.runner.EXPECT().Run(mock.Anything, []string{"init", "--project-dir", dir, "--board", "uno"}).Return(succeeded())

		p, err := svc.InitProject(context.Background(), ports.InitRequest{Board: "uno", ProjectDir: dir})
		require.NoError(t, err)
		_, err = p.Wait(context.Background())
		require.NoError(t, err)
	})
}

func TestProjectService_ImportForeign(t *testing.T) {
	t.Parallel()

	t.Run("native project returned unchanged", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t, 1)

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "platformio.ini"), "[env:uno]\n")

		p, err := svc.ImportForeign(context.Background(), ports.ImportForeignRequest{Board: "uno", SourceDir: dir})
		require.NoError(t, err)
		got, err := p.Wait(context.Background())
		require.NoError(t, err)
		assert.Equal(t, dir, got)
	})

	t.Run("not a sketch fails synchronously", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t, 1)

		dir := filepath.Join(t.TempDir(), "Blink")
		writeFile(t, filepath.Join(dir, "Other.ino"), "")

		p, err := svc.ImportForeign(context.Background(), ports.ImportForeignRequest{Board: "uno", SourceDir: dir})
		require.Nil(t, p)
		require.ErrorIs(t, err, domain.ErrNotForeignProject)

		var kerr *domain.ProjectKindError
		require.ErrorAs(t, err, &kerr)
		assert.Equal(t, domain.CodeNotForeignProject, kerr.Code())
		assert.Equal(t, "Not an Arduino project: "+dir, err.Error())
	})

	t.Run("copies the sketch into a new project", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t, 1)

		root := t.TempDir()
		sketch := filepath.Join(root, "Blink")
		writeFile(t, filepath.Join(sketch, "Blink.ino"), "void setup() {}\n")
		writeFile(t, filepath.Join(sketch, "util", "helper.h"), "#pragma once\n")
		projects := filepath.Join(root, "projects")
		newDir := filepath.Join(projects, "240102-030405-uno")

		m.state.EXPECT().GetState(mock.Anything).Return(&state.AppState{ProjectsDir: projects, CoreCaller: "clion"}, nil)
		serveConfigs(m.configs, nil)
		m.runner.EXPECT().Run(mock.Anything, []string{
			"init", "--project-dir", newDir, "--board", "uno",
			"--project-option", "framework=arduino",
			"--project-option", "lib_extra_dirs=~/Documents/Arduino/libraries",
			"--ide", "clion",
		}).RunAndReturn(func(context.Context, []string) *async.Pending[command.Result] {
			// init scaffolds an empty src dir with a placeholder.
			writeFile(t, filepath.Join(newDir, "src", "placeholder.cpp"), "")
			return succeeded()
		})

		p, err := svc.ImportForeign(context.Background(), ports.ImportForeignRequest{Board: "uno", UseVendorLibs: true, SourceDir: sketch})
		require.NoError(t, err)
		got, err := p.Wait(context.Background())
		require.NoError(t, err)

		assert.Equal(t, newDir, got)
		assert.FileExists(t, filepath.Join(newDir, "src", "Blink.ino"))
		assert.FileExists(t, filepath.Join(newDir, "src", "util", "helper.h"))
		assert.NoFileExists(t, filepath.Join(newDir, "src", "placeholder.cpp"))
	})

	t.Run("same-second imports keep earlier sources", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t, 1)

		root := t.TempDir()
		blink := filepath.Join(root, "Blink")
		fade := filepath.Join(root, "Fade")
		writeFile(t, filepath.Join(blink, "Blink.ino"), "// blink\n")
		writeFile(t, filepath.Join(fade, "Fade.ino"), "// fade\n")
		projects := filepath.Join(root, "projects")

		m.state.EXPECT().GetState(mock.Anything).Return(&state.AppState{ProjectsDir: projects}, nil)
		serveConfigs(m.configs, nil)
		m.runner.EXPECT().Run(mock.Anything, mock.Anything).Return(succeeded())

		var dirs []string
		for _, sketch := range []string{blink, fade} {
			p, err := svc.ImportForeign(context.Background(), ports.ImportForeignRequest{Board: "uno", SourceDir: sketch})
			require.NoError(t, err)
			dir, err := p.Wait(context.Background())
			require.NoError(t, err)
			dirs = append(dirs, dir)
		}

		assert.Equal(t, []string{
			filepath.Join(projects, "240102-030405-uno"),
			filepath.Join(projects, "240102-030405-uno-2"),
		}, dirs)
		assert.FileExists(t, filepath.Join(dirs[0], "src", "Blink.ino"))
		assert.NoFileExists(t, filepath.Join(dirs[0], "src", "Fade.ino"))
		assert.FileExists(t, filepath.Join(dirs[1], "src", "Fade.ino"))
	})

	t.Run("command failure propagates", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t, 1)

		root := t.TempDir()
		sketch := filepath.Join(root, "Blink")
		writeFile(t, filepath.Join(sketch, "Blink.pde"), "")

		m.state.EXPECT().GetState(mock.Anything).Return(&state.AppState{ProjectsDir: filepath.Join(root, "projects")}, nil)
		m.runner.EXPECT().Run(mock.Anything, mock.Anything).
			Return(async.Failed[command.Result](&domain.CommandError{Args: []string{"init"}, ExitCode: 1}))

		p, err := svc.ImportForeign(context.Background(), ports.ImportForeignRequest{Board: "uno", SourceDir: sketch})
		require.NoError(t, err)
		_, err = p.Wait(context.Background())
		assert.ErrorIs(t, err, domain.ErrCommandFailed)
	})
}

func TestProjectService_ImportNative(t *testing.T) {
	t.Parallel()

	t.Run("not a native project fails synchronously", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t, 1)

		dir := t.TempDir()
		p, err := svc.ImportNative(context.Background(), ports.ImportNativeRequest{SourceDir: dir})
		require.Nil(t, p)

		var kerr *domain.ProjectKindError
		require.ErrorAs(t, err, &kerr)
		assert.Equal(t, domain.CodeNotNativeProject, kerr.Code())
		assert.Equal(t, "Not a PlatformIO project: "+dir, err.Error())
	})

	t.Run("copies the tree then re-initializes", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t, 1)

		root := t.TempDir()
		source := filepath.Join(root, "blinky")
		writeFile(t, filepath.Join(source, "platformio.ini"), "[env:uno]\nboard = uno\n")
		writeFile(t, filepath.Join(source, "src", "main.cpp"), "int main() {}\n")
		projects := filepath.Join(root, "projects")
		newDir := filepath.Join(projects, "240102-030405-blinky")

		m.state.EXPECT().GetState(mock.Anything).Return(&state.AppState{ProjectsDir: projects, CoreCaller: "emacs"}, nil)
		m.runner.EXPECT().Run(mock.Anything, []string{"init", "--project-dir", newDir}).
			RunAndReturn(func(context.Context, []string) *async.Pending[command.Result] {
				// The tree is already in place when the command starts.
				assert.FileExists(t, filepath.Join(newDir, "platformio.ini"))
				return async.Resolved(command.Result{Stdout: "Project has been successfully updated!"})
			})

		p, err := svc.ImportNative(context.Background(), ports.ImportNativeRequest{SourceDir: source})
		require.NoError(t, err)
		got, err := p.Wait(context.Background())
		require.NoError(t, err)

		assert.Equal(t, newDir, got)
		content, err := os.ReadFile(filepath.Join(newDir, "src", "main.cpp"))
		require.NoError(t, err)
		assert.Equal(t, "int main() {}\n", string(content))
	})

	t.Run("same-second imports get distinct directories", func(t *testing.T) {
		t.Parallel()
		svc, m := newTestService(t, 1)

		root := t.TempDir()
		first := filepath.Join(root, "a", "blinky")
		second := filepath.Join(root, "b", "blinky")
		writeFile(t, filepath.Join(first, "platformio.ini"), "[env:uno]\n")
		writeFile(t, filepath.Join(first, ".gitignore"), ".pio\n")
		writeFile(t, filepath.Join(second, "platformio.ini"), "[env:due]\n")
		writeFile(t, filepath.Join(second, ".gitignore"), "build\n")
		projects := filepath.Join(root, "projects")

		m.state.EXPECT().GetState(mock.Anything).Return(&state.AppState{ProjectsDir: projects}, nil)
		m.runner.EXPECT().Run(mock.Anything, mock.Anything).Return(succeeded())

		var dirs []string
		for _, source := range []string{first, second} {
			p, err := svc.ImportNative(context.Background(), ports.ImportNativeRequest{SourceDir: source})
			require.NoError(t, err)
			dir, err := p.Wait(context.Background())
			require.NoError(t, err)
			dirs = append(dirs, dir)
		}

		assert.Equal(t, []string{
			filepath.Join(projects, "240102-030405-blinky"),
			filepath.Join(projects, "240102-030405-blinky-2"),
		}, dirs)
		for i, want := range []string{".pio\n", "build\n"} {
			content, err := os.ReadFile(filepath.Join(dirs[i], ".gitignore"))
			require.NoError(t, err)
			assert.Equal(t, want, string(content))
		}
	})
}
