// Package state models the persisted application state shared with the GUI.
package state

import (
	"slices"
	"strings"

	"github.com/jsamuelsen11/pio-home/internal/domain"
)

// AppState is the application state the core reads: the recent projects
// list, the root under which imported projects are created, and the
// identity of the IDE that launched the home server.
type AppState struct {
	RecentProjects []string
	ProjectsDir    string
	CoreCaller     string
}

// Validate checks that the state can be used by import operations.
func (s *AppState) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(s.ProjectsDir) == "" {
		fields["projects_dir"] = domain.MsgRequired
	}
	for _, p := range s.RecentProjects {
		if strings.TrimSpace(p) == "" {
			fields["recent_projects"] = "must not contain empty paths"
			break
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// IDEHint returns the caller identity when it names one of the supported
// IDE integrations, or "" otherwise.
func (s *AppState) IDEHint(supported []string) string {
	if s.CoreCaller == "" {
		return ""
	}
	if slices.Contains(supported, s.CoreCaller) {
		return s.CoreCaller
	}
	return ""
}
