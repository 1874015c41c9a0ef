// Package platforms reads the platform packages installed in the build
// tool's home directory. Each package lives in its own directory:
//
//	<home>/platforms/<name>/platform.json
//	<home>/platforms/<name>/boards/<board id>.json
//	<home>/platforms/<name>/examples/...
//
// Local implements both ports.BoardRegistry and ports.PlatformCatalog.
package platforms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/jsamuelsen11/pio-home/internal/domain"
	"github.com/jsamuelsen11/pio-home/internal/domain/board"
	"github.com/jsamuelsen11/pio-home/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.BoardRegistry   = (*Local)(nil)
	_ ports.PlatformCatalog = (*Local)(nil)
)

const (
	platformsDir     = "platforms"
	boardsDir        = "boards"
	manifestFileName = "platform.json"
)

// manifest is the subset of platform.json the home server reads.
type manifest struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Version string `json:"version"`
}

// boardManifest is the subset of a board definition file the home server
// reads.
type boardManifest struct {
	Name   string `json:"name"`
	Vendor string `json:"vendor"`
	Build  struct {
		MCU string `json:"mcu"`
	} `json:"build"`
}

// Local reads installed platforms from a home directory.
type Local struct {
	root string
}

// NewLocal creates a reader for the platforms installed under homeDir.
func NewLocal(homeDir string) *Local {
	return &Local{root: filepath.Join(homeDir, platformsDir)}
}

// Installed returns the installed platforms sorted by name. Directories
// without a readable platform.json are ignored.
func (l *Local) Installed(_ context.Context) ([]board.Platform, error) {
	entries, err := os.ReadDir(l.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []board.Platform{}, nil
		}
		return nil, fmt.Errorf("listing %s: %w", l.root, err)
	}

	out := make([]board.Platform, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		p, err := readPlatform(filepath.Join(l.root, e.Name()))
		if err != nil {
			continue
		}
		out = append(out, *p)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Board looks the board ID up in every installed platform. It returns
// domain.ErrUnknownBoard when no platform ships the definition, and
// domain.ErrUnknownPlatform when the definition belongs to a package whose
// manifest is missing or broken.
func (l *Local) Board(_ context.Context, id string) (*board.Board, error) {
	if id == "" || filepath.Base(id) != id {
		return nil, fmt.Errorf("board %q: %w", id, domain.ErrUnknownBoard)
	}

	entries, err := os.ReadDir(l.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("board %q: %w", id, domain.ErrUnknownBoard)
		}
		return nil, fmt.Errorf("listing %s: %w", l.root, err)
	}

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		pkgDir := filepath.Join(l.root, e.Name())
		data, err := os.ReadFile(filepath.Join(pkgDir, boardsDir, id+".json"))
		if err != nil {
			continue
		}

		p, err := readPlatform(pkgDir)
		if err != nil {
			return nil, fmt.Errorf("board %q in %s: %w", id, e.Name(), domain.ErrUnknownPlatform)
		}

		var bm boardManifest
		if err := json.Unmarshal(data, &bm); err != nil {
			return nil, fmt.Errorf("decoding board %q: %w", id, err)
		}

		name := bm.Name
		if name == "" {
			name = id
		}
		return &board.Board{
			ID:       id,
			Name:     name,
			Platform: p.Name,
			MCU:      bm.Build.MCU,
			Vendor:   bm.Vendor,
		}, nil
	}

	return nil, fmt.Errorf("board %q: %w", id, domain.ErrUnknownBoard)
}

func readPlatform(dir string) (*board.Platform, error) {
	data, err := os.ReadFile(filepath.Join(dir, manifestFileName))
	if err != nil {
		return nil, err
	}
	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", manifestFileName, err)
	}
	if m.Name == "" {
		m.Name = filepath.Base(dir)
	}
	if m.Title == "" {
		m.Title = m.Name
	}
	return &board.Platform{Name: m.Name, Title: m.Title, Version: m.Version, Dir: dir}, nil
}
