package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/pio-home/internal/domain"
	"github.com/jsamuelsen11/pio-home/internal/domain/state"
)

func TestAppState_IDEHint(t *testing.T) {
	t.Parallel()

	supported := []string{"atom", "clion", "vscode"}

	tests := []struct {
		caller string
		want   string
	}{
		{"vscode", "vscode"},
		{"", ""},
		{"notepad", ""},
	}

	for _, tt := range tests {
		s := state.AppState{CoreCaller: tt.caller}
		assert.Equal(t, tt.want, s.IDEHint(supported), "caller %q", tt.caller)
	}
}

func TestAppState_Validate(t *testing.T) {
	t.Parallel()

	valid := state.AppState{ProjectsDir: "/home/dev/Projects", RecentProjects: []string{"/a"}}
	assert.NoError(t, valid.Validate())

	invalid := state.AppState{RecentProjects: []string{""}}
	err := invalid.Validate()
	assert.ErrorIs(t, err, domain.ErrValidation)

	var verr *domain.ValidationError
	if assert.ErrorAs(t, err, &verr) {
		assert.Contains(t, verr.Fields, "projects_dir")
		assert.Contains(t, verr.Fields, "recent_projects")
	}
}
