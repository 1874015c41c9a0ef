// Package project holds the project summary model and the predicates that
// classify a directory as a native or foreign (Arduino sketch) project.
package project

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ConfigFileName is the marker file of a native project.
const ConfigFileName = "platformio.ini"

// Section and option names read from the project configuration.
const (
	SectionMain   = "platformio"
	EnvPrefix     = "env:"
	OptBoard      = "board"
	OptLibExtra   = "lib_extra_dirs"
	OptLibdepsDir = "libdeps_dir"
	OptSrcDir     = "src_dir"
	OptDesc       = "description"
	OptFramework  = "framework"
)

// Default directories relative to the project root when the configuration
// does not override them.
const (
	DefaultLibdepsDir = ".piolibdeps"
	DefaultSrcDir     = "src"
)

// foreignExtensions are the sketch file extensions of an Arduino project.
var foreignExtensions = []string{".ino", ".pde"}

// Summary is a read-only view of a project directory, recomputed on every
// aggregation call.
type Summary struct {
	Path             string
	Name             string
	Modified         time.Time
	Boards           []BoardRef
	EnvLibStorages   []LibStorage
	ExtraLibStorages []LibStorage
}

// BoardRef pairs a board ID with its resolved display name. When the board
// registry cannot resolve the ID, Name equals ID.
type BoardRef struct {
	ID   string
	Name string
}

// LibStorage is a directory the build system searches for library code.
type LibStorage struct {
	Name string
	Path string
}

// DisplayName returns the last two segments of path joined with the OS path
// separator, so same-named directories under different parents stay
// distinguishable.
func DisplayName(path string) string {
	parts := strings.Split(path, string(filepath.Separator))
	if len(parts) > 2 {
		parts = parts[len(parts)-2:]
	}
	return strings.Join(parts, string(filepath.Separator))
}

// EnvName strips the "env:" prefix from a section name. The second result
// is false for sections that are not environments.
func EnvName(section string) (string, bool) {
	if !strings.HasPrefix(section, EnvPrefix) {
		return "", false
	}
	return section[len(EnvPrefix):], true
}

// IsNative reports whether dir contains the native configuration file.
func IsNative(dir string) bool {
	if dir == "" {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil && info.Mode().IsRegular()
}

// IsForeign reports whether dir holds an Arduino sketch: a file named after
// the directory with an .ino or .pde extension directly inside it.
func IsForeign(dir string) bool {
	if dir == "" {
		return false
	}
	base := filepath.Base(filepath.Clean(dir))
	for _, ext := range foreignExtensions {
		info, err := os.Stat(filepath.Join(dir, base+ext))
		if err == nil && info.Mode().IsRegular() {
			return true
		}
	}
	return false
}
