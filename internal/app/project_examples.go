package app

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jsamuelsen11/pio-home/internal/domain/example"
	"github.com/jsamuelsen11/pio-home/internal/domain/project"
)

const examplesDirName = "examples"

// ListExamples returns the example projects shipped with each installed
// platform. Platforms without an examples directory are left out.
func (s *ProjectService) ListExamples(ctx context.Context) ([]example.Catalog, error) {
	platforms, err := s.platforms.Installed(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list installed platforms",
			slog.String("operation", "ListExamples"),
			slog.Any("error", err),
		)
		return nil, err
	}

	catalogs := make([]example.Catalog, 0, len(platforms))
	for _, p := range platforms {
		root := filepath.Join(p.Dir, examplesDirName)
		items, err := s.scanExamples(ctx, root)
		if err != nil {
			s.logger.DebugContext(ctx, "skipping platform examples",
				slog.String("platform", p.Name),
				slog.Any("error", err),
			)
			continue
		}
		catalogs = append(catalogs, example.Catalog{
			Platform: example.Platform{Name: p.Name, Title: p.Title, Version: p.Version},
			Items:    items,
		})
	}

	slices.SortStableFunc(catalogs, func(a, b example.Catalog) int {
		return strings.Compare(a.Platform.Title, b.Platform.Title)
	})
	return catalogs, nil
}

// scanExamples walks root and returns every directory holding a valid
// project configuration, sorted by name.
func (s *ProjectService) scanExamples(ctx context.Context, root string) ([]example.Item, error) {
	items := []example.Item{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}

		cfg, err := s.configs.Read(ctx, filepath.Join(path, project.ConfigFileName))
		if err != nil {
			return nil
		}
		if err := cfg.Validate(true); err != nil {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		name := filepath.ToSlash(rel)
		if name == "." {
			name = ""
		}
		items = append(items, example.Item{
			Name:        name,
			Path:        path,
			Description: cfg.Get(project.SectionMain, project.OptDesc, ""),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(items, func(a, b example.Item) int {
		return strings.Compare(a.Name, b.Name)
	})
	return items, nil
}
