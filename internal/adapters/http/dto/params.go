package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeParams decodes JSON-RPC params into dst. Params may be positional
// (an array, matched to names in order) or named (an object). Absent or
// null params leave dst untouched. Unknown names and surplus positional
// values are errors.
func DecodeParams(raw json.RawMessage, names []string, dst any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	if raw[0] == '[' {
		var positional []json.RawMessage
		if err := json.Unmarshal(raw, &positional); err != nil {
			return err
		}
		if len(positional) > len(names) {
			return fmt.Errorf("expected at most %d params, got %d", len(names), len(positional))
		}
		named := make(map[string]json.RawMessage, len(positional))
		for i, v := range positional {
			named[names[i]] = v
		}
		var err error
		if raw, err = json.Marshal(named); err != nil {
			return err
		}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// GetProjectsParams are the params of project.get_projects.
type GetProjectsParams struct {
	ProjectDirs []string `json:"project_dirs"`
}

// GetProjectsParamNames orders GetProjectsParams for positional calls.
var GetProjectsParamNames = []string{"project_dirs"}

// InitParams are the params of project.init.
type InitParams struct {
	Board      string `json:"board"`
	Framework  string `json:"framework"`
	ProjectDir string `json:"project_dir"`
}

// InitParamNames orders InitParams for positional calls.
var InitParamNames = []string{"board", "framework", "project_dir"}

// ImportArduinoParams are the params of project.import_arduino.
type ImportArduinoParams struct {
	Board             string `json:"board"`
	UseArduinoLibs    bool   `json:"use_arduino_libs"`
	ArduinoProjectDir string `json:"arduino_project_dir"`
}

// ImportArduinoParamNames orders ImportArduinoParams for positional calls.
var ImportArduinoParamNames = []string{"board", "use_arduino_libs", "arduino_project_dir"}

// ImportPIOParams are the params of project.import_pio.
type ImportPIOParams struct {
	ProjectDir string `json:"project_dir"`
}

// ImportPIOParamNames orders ImportPIOParams for positional calls.
var ImportPIOParamNames = []string{"project_dir"}

// SaveStateParams are the params of app.save_state.
type SaveStateParams struct {
	State AppState `json:"state"`
}

// SaveStateParamNames orders SaveStateParams for positional calls.
var SaveStateParamNames = []string{"state"}
