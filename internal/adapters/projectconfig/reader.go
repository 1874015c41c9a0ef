// Package projectconfig reads platformio.ini project configuration files.
// It implements ports.ConfigReader on top of gopkg.in/ini.v1 with
// Python-style multi-line values enabled, which is how list options such as
// lib_extra_dirs are usually written:
//
//	[env:uno]
//	lib_extra_dirs =
//	    ~/Arduino/libraries
//	    ../shared
package projectconfig

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/jsamuelsen11/pio-home/internal/domain"
	"github.com/jsamuelsen11/pio-home/internal/domain/project"
	"github.com/jsamuelsen11/pio-home/internal/platform/logging"
	"github.com/jsamuelsen11/pio-home/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ConfigReader  = (*Reader)(nil)
	_ ports.ProjectConfig = (*Config)(nil)
)

// Options that select the default environments of a project.
const (
	optDefaultEnvs = "default_envs"
	optEnvDefault  = "env_default"
)

// knownSections are the non-environment sections the build tool reads.
var knownSections = map[string]bool{
	project.SectionMain: true,
	"env":               true,
}

// Reader loads project configuration files from disk.
type Reader struct{}

// NewReader creates a Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read parses the configuration file at path. A missing file yields an
// error wrapping domain.ErrNotFound.
func (r *Reader) Read(ctx context.Context, path string) (ports.ProjectConfig, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	f, err := ini.LoadSources(ini.LoadOptions{
		AllowPythonMultilineValues: true,
		SpaceBeforeInlineComment:   true,
	}, path)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &Config{path: path, file: f, logger: logging.FromContext(ctx)}, nil
}

// Config is a parsed project configuration.
type Config struct {
	path   string
	file   *ini.File
	logger *slog.Logger
}

// Path returns the file the configuration was read from.
func (c *Config) Path() string {
	return c.path
}

// Get returns the option value, or def when the section or key is absent.
func (c *Config) Get(section, key, def string) string {
	sec, err := c.file.GetSection(section)
	if err != nil || !sec.HasKey(key) {
		return def
	}
	return strings.TrimSpace(sec.Key(key).String())
}

// GetList returns a multi-value option split on newlines and commas, with
// surrounding blanks trimmed and empty items dropped.
func (c *Config) GetList(section, key string) []string {
	if !c.HasOption(section, key) {
		return nil
	}
	return splitList(c.Get(section, key, ""))
}

// HasOption reports whether section declares key.
func (c *Config) HasOption(section, key string) bool {
	sec, err := c.file.GetSection(section)
	if err != nil {
		return false
	}
	return sec.HasKey(key)
}

// Sections returns the section names in file order, without the implicit
// default section.
func (c *Config) Sections() []string {
	names := c.file.SectionStrings()
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == ini.DefaultSection {
			continue
		}
		out = append(out, name)
	}
	return out
}

// Validate checks that every environment section is named and that the
// default environment options only reference declared environments. When
// silent is false, sections the build tool does not know about are logged
// as warnings.
func (c *Config) Validate(silent bool) error {
	var errs []error
	envs := make(map[string]bool)

	for _, section := range c.Sections() {
		name, ok := project.EnvName(section)
		switch {
		case ok && strings.TrimSpace(name) == "":
			errs = append(errs, fmt.Errorf("%s: section %q has an empty environment name", c.path, section))
		case ok:
			envs[name] = true
		case knownSections[section]:
		default:
			if !silent {
				c.logger.Warn("unknown section in project configuration",
					slog.String("path", c.path),
					slog.String("section", section),
				)
			}
		}
	}

	for _, opt := range []string{optDefaultEnvs, optEnvDefault} {
		for _, env := range c.GetList(project.SectionMain, opt) {
			if !envs[env] {
				errs = append(errs, fmt.Errorf("%s: %s references unknown environment %q", c.path, opt, env))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrValidation, errors.Join(errs...))
	}
	return nil
}

func splitList(value string) []string {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == '\n' || r == ','
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
