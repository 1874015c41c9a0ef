package dto

import (
	"github.com/jsamuelsen11/pio-home/internal/domain/example"
	"github.com/jsamuelsen11/pio-home/internal/domain/project"
	"github.com/jsamuelsen11/pio-home/internal/domain/state"
)

// ProjectSummary is a project in project.get_projects results.
type ProjectSummary struct {
	Path             string       `json:"path"`
	Name             string       `json:"name"`
	Modified         int64        `json:"modified"`
	Boards           []BoardRef   `json:"boards"`
	EnvLibStorages   []LibStorage `json:"envLibStorages"`
	ExtraLibStorages []LibStorage `json:"extraLibStorages"`
}

// BoardRef is a board of a project.
type BoardRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LibStorage is a library directory of a project.
type LibStorage struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// ToProjectSummaries converts domain summaries. The result is never nil.
func ToProjectSummaries(in []project.Summary) []ProjectSummary {
	out := make([]ProjectSummary, 0, len(in))
	for i := range in {
		s := &in[i]
		ps := ProjectSummary{
			Path:             s.Path,
			Name:             s.Name,
			Modified:         s.Modified.Unix(),
			Boards:           make([]BoardRef, 0, len(s.Boards)),
			EnvLibStorages:   toLibStorages(s.EnvLibStorages),
			ExtraLibStorages: toLibStorages(s.ExtraLibStorages),
		}
		for _, b := range s.Boards {
			ps.Boards = append(ps.Boards, BoardRef{ID: b.ID, Name: b.Name})
		}
		out = append(out, ps)
	}
	return out
}

func toLibStorages(in []project.LibStorage) []LibStorage {
	out := make([]LibStorage, 0, len(in))
	for _, l := range in {
		out = append(out, LibStorage{Name: l.Name, Path: l.Path})
	}
	return out
}

// ExampleCatalog is one platform in project.get_project_examples results.
type ExampleCatalog struct {
	Platform ExamplePlatform `json:"platform"`
	Items    []ExampleItem   `json:"items"`
}

// ExamplePlatform identifies the platform of an ExampleCatalog.
type ExamplePlatform struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Version string `json:"version"`
}

// ExampleItem is a single example project. Description is null when the
// example declares none.
type ExampleItem struct {
	Name        string  `json:"name"`
	Path        string  `json:"path"`
	Description *string `json:"description"`
}

// ToExampleCatalogs converts domain catalogs. The result is never nil.
func ToExampleCatalogs(in []example.Catalog) []ExampleCatalog {
	out := make([]ExampleCatalog, 0, len(in))
	for _, c := range in {
		ec := ExampleCatalog{
			Platform: ExamplePlatform{Name: c.Platform.Name, Title: c.Platform.Title, Version: c.Platform.Version},
			Items:    make([]ExampleItem, 0, len(c.Items)),
		}
		for _, it := range c.Items {
			item := ExampleItem{Name: it.Name, Path: it.Path}
			if it.Description != "" {
				item.Description = &it.Description
			}
			ec.Items = append(ec.Items, item)
		}
		out = append(out, ec)
	}
	return out
}

// AppState is the wire form of the application state, nested under
// "storage" as the GUI expects.
type AppState struct {
	Storage Storage `json:"storage"`
}

// Storage holds the persisted state fields.
type Storage struct {
	RecentProjects []string `json:"recentProjects"`
	ProjectsDir    string   `json:"projectsDir"`
	CoreCaller     string   `json:"coreCaller,omitempty"`
}

// ToAppState converts a domain state.
func ToAppState(s *state.AppState) AppState {
	recent := s.RecentProjects
	if recent == nil {
		recent = []string{}
	}
	return AppState{Storage: Storage{
		RecentProjects: recent,
		ProjectsDir:    s.ProjectsDir,
		CoreCaller:     s.CoreCaller,
	}}
}

// ToDomain converts the wire state to a domain state.
func (a *AppState) ToDomain() *state.AppState {
	return &state.AppState{
		RecentProjects: a.Storage.RecentProjects,
		ProjectsDir:    a.Storage.ProjectsDir,
		CoreCaller:     a.Storage.CoreCaller,
	}
}
