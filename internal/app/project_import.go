package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	appctx "github.com/jsamuelsen11/pio-home/internal/app/context"
	"github.com/jsamuelsen11/pio-home/internal/domain"
	"github.com/jsamuelsen11/pio-home/internal/domain/command"
	"github.com/jsamuelsen11/pio-home/internal/domain/project"
	"github.com/jsamuelsen11/pio-home/internal/platform/async"
	"github.com/jsamuelsen11/pio-home/internal/platform/fsutil"
	"github.com/jsamuelsen11/pio-home/internal/ports"
)

// newDirLayout prefixes directories created by imports. Names taken within
// the same second get a numeric suffix.
const newDirLayout = "060102-150405-"

// InitProject initializes req.ProjectDir with the build tool and writes an
// entry-point skeleton for known frameworks once the command succeeds.
func (s *ProjectService) InitProject(ctx context.Context, req ports.InitRequest) (*async.Pending[string], error) {
	s.logger.InfoContext(ctx, "initializing project",
		slog.String("project_dir", req.ProjectDir),
		slog.String("board", req.Board),
		slog.String("framework", req.Framework),
	)

	fields := make(map[string]string)
	if strings.TrimSpace(req.ProjectDir) == "" {
		fields["project_dir"] = domain.MsgRequired
	}
	if strings.TrimSpace(req.Board) == "" {
		fields["board"] = domain.MsgRequired
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	rc := appctx.ForRequest(ctx)
	if err := os.MkdirAll(req.ProjectDir, 0o755); err != nil {
		s.logger.ErrorContext(ctx, "failed to create project directory",
			slog.String("operation", "InitProject"),
			slog.String("project_dir", req.ProjectDir),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("creating %s: %w", req.ProjectDir, err)
	}

	cmd := command.Request{
		Action:     command.ActionInit,
		ProjectDir: req.ProjectDir,
		Board:      req.Board,
		IDE:        s.ideHint(rc),
	}
	if req.Framework != "" {
		cmd.Options = append(cmd.Options, command.Option{Key: project.OptFramework, Value: req.Framework})
	}

	dir, framework := req.ProjectDir, req.Framework
	return async.Then(context.WithoutCancel(ctx), s.runner.Run(ctx, cmd.Args()),
		func(ctx context.Context, _ command.Result) (string, error) {
			if err := s.writeMain(ctx, dir, framework); err != nil {
				return "", err
			}
			return dir, nil
		}), nil
}

// ImportForeign converts an Arduino sketch directory into a new project
// under the projects dir. A native project is returned as is.
func (s *ProjectService) ImportForeign(ctx context.Context, req ports.ImportForeignRequest) (*async.Pending[string], error) {
	s.logger.InfoContext(ctx, "importing arduino project",
		slog.String("source_dir", req.SourceDir),
		slog.String("board", req.Board),
	)

	if project.IsNative(req.SourceDir) {
		return async.Resolved(req.SourceDir), nil
	}
	if !project.IsForeign(req.SourceDir) {
		return nil, domain.NewNotForeignProjectError(req.SourceDir)
	}
	if strings.TrimSpace(req.Board) == "" {
		return nil, &domain.ValidationError{Fields: map[string]string{"board": domain.MsgRequired}}
	}

	rc := appctx.ForRequest(ctx)
	root, err := s.projectsDir(rc)
	if err != nil {
		return nil, err
	}
	dir, err := fsutil.CreateUniqueDir(root, s.now().Format(newDirLayout)+req.Board)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create project directory",
			slog.String("operation", "ImportForeign"),
			slog.String("projects_dir", root),
			slog.Any("error", err),
		)
		return nil, err
	}

	cmd := command.Request{
		Action:     command.ActionInit,
		ProjectDir: dir,
		Board:      req.Board,
		Options:    []command.Option{{Key: project.OptFramework, Value: command.FrameworkArduino}},
		IDE:        s.ideHint(rc),
	}
	if req.UseVendorLibs {
		cmd.Options = append(cmd.Options, command.Option{Key: project.OptLibExtra, Value: s.vendorLibsDir})
	}

	source := req.SourceDir
	return async.Then(context.WithoutCancel(ctx), s.runner.Run(ctx, cmd.Args()),
		func(ctx context.Context, _ command.Result) (string, error) {
			src := s.srcDir(ctx, dir)
			if err := os.RemoveAll(src); err != nil {
				return "", fmt.Errorf("removing %s: %w", src, err)
			}
			if err := fsutil.CopyTree(src, source); err != nil {
				return "", err
			}
			return dir, nil
		}), nil
}

// ImportNative copies a native project into a new directory under the
// projects dir and re-initializes it there.
func (s *ProjectService) ImportNative(ctx context.Context, req ports.ImportNativeRequest) (*async.Pending[string], error) {
	s.logger.InfoContext(ctx, "importing platformio project", slog.String("source_dir", req.SourceDir))

	if !project.IsNative(req.SourceDir) {
		return nil, domain.NewNotNativeProjectError(req.SourceDir)
	}

	rc := appctx.ForRequest(ctx)
	root, err := s.projectsDir(rc)
	if err != nil {
		return nil, err
	}
	dir, err := fsutil.CreateUniqueDir(root, s.now().Format(newDirLayout)+filepath.Base(filepath.Clean(req.SourceDir)))
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create project directory",
			slog.String("operation", "ImportNative"),
			slog.String("projects_dir", root),
			slog.Any("error", err),
		)
		return nil, err
	}
	if err := fsutil.CopyTree(dir, req.SourceDir); err != nil {
		s.logger.ErrorContext(ctx, "failed to copy project",
			slog.String("operation", "ImportNative"),
			slog.String("source_dir", req.SourceDir),
			slog.String("project_dir", dir),
			slog.Any("error", err),
		)
		return nil, err
	}

	cmd := command.Request{
		Action:     command.ActionInit,
		ProjectDir: dir,
		IDE:        s.ideHint(rc),
	}
	return async.Then(context.WithoutCancel(ctx), s.runner.Run(ctx, cmd.Args()),
		func(context.Context, command.Result) (string, error) {
			return dir, nil
		}), nil
}

// writeMain writes the framework's entry-point skeleton into the project's
// source dir unless one already exists.
func (s *ProjectService) writeMain(ctx context.Context, dir, framework string) error {
	content, ok := command.Boilerplate(framework)
	if !ok {
		return nil
	}

	src := s.srcDir(ctx, dir)
	mainPath := filepath.Join(src, command.MainFileName)
	if _, err := os.Stat(mainPath); err == nil {
		return nil
	}
	if err := os.MkdirAll(src, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", src, err)
	}
	if err := os.WriteFile(mainPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", mainPath, err)
	}
	s.logger.DebugContext(ctx, "wrote entry point", slog.String("path", mainPath))
	return nil
}

// srcDir returns the project's source directory, honouring src_dir from
// its configuration when it can be read.
func (s *ProjectService) srcDir(ctx context.Context, dir string) string {
	src := project.DefaultSrcDir
	if cfg, err := s.configs.Read(ctx, filepath.Join(dir, project.ConfigFileName)); err == nil {
		src = cfg.Get(project.SectionMain, project.OptSrcDir, project.DefaultSrcDir)
	}
	resolved, err := fsutil.Resolve(dir, src)
	if err != nil {
		return filepath.Join(dir, project.DefaultSrcDir)
	}
	return resolved
}

// ideHint returns the IDE flag value for the current caller, or "" when
// the state cannot be read or the caller is not a supported IDE.
func (s *ProjectService) ideHint(rc *appctx.RequestContext) string {
	st, err := s.appState(rc)
	if err != nil {
		s.logger.WarnContext(rc, "app state unavailable, omitting ide hint", slog.Any("error", err))
		return ""
	}
	return st.IDEHint(s.supportedIDEs)
}

func (s *ProjectService) projectsDir(rc *appctx.RequestContext) (string, error) {
	st, err := s.appState(rc)
	if err != nil {
		s.logger.ErrorContext(rc, "failed to load projects dir",
			slog.String("operation", "projectsDir"),
			slog.Any("error", err),
		)
		return "", err
	}
	return st.ProjectsDir, nil
}
