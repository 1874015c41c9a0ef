// Package fsutil holds the small filesystem helpers shared by the project
// aggregator and the import operations.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// ExpandHome replaces a leading "~" with the current user's home directory.
// Other paths are returned unchanged.
func ExpandHome(path string) (string, error) {
	return homedir.Expand(path)
}

// Resolve turns a configured path into an absolute one. A leading "~" is
// home-expanded; relative paths are taken relative to base; the result is
// cleaned and, when it exists, has its symlinks evaluated.
func Resolve(base, path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		return ExpandHome(path)
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(base, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}

// maxUniqueDirs bounds the numbered names CreateUniqueDir tries.
const maxUniqueDirs = 100

// CreateUniqueDir creates a fresh directory called name under parent and
// returns its path. A taken name is retried as name-2, name-3 and so on, so
// an existing directory is never reused.
func CreateUniqueDir(parent, name string) (string, error) {
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", parent, err)
	}
	for n := 1; n <= maxUniqueDirs; n++ {
		dir := filepath.Join(parent, name)
		if n > 1 {
			dir += "-" + strconv.Itoa(n)
		}
		err := os.Mkdir(dir, 0o755)
		if err == nil {
			return dir, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return "", fmt.Errorf("creating %s: no free name after %d attempts", filepath.Join(parent, name), maxUniqueDirs)
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// CopyTree recursively copies the directory src into dst, creating dst if
// needed. Existing files in dst are never overwritten; a collision fails the
// copy and leaves whatever was already written in place.
func CopyTree(dst, src string) error {
	if !IsDir(src) {
		return fmt.Errorf("copying %s: not a directory", src)
	}
	if err := os.CopyFS(dst, os.DirFS(src)); err != nil {
		return fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	return nil
}
