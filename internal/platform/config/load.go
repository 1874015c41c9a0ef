package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/mitchellh/go-homedir"
)

const (
	envPrefix        = "APP_"
	coreEnvPrefix    = "PLATFORMIO_"
	defaultConfigDir = "configs"
)

// coreEnvKeys maps the build tool's own environment variables, minus their
// prefix, onto config keys. They sit below APP_ overrides.
var coreEnvKeys = map[string]string{
	"CORE_DIR": "core.home_dir",
}

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir reads base.yaml and the profile file from dir instead of
// ./configs.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

type layer struct {
	name     string
	provider koanf.Provider
	parser   koanf.Parser
}

// Load assembles the configuration for profile. Later layers win:
//
//  1. built-in defaults
//  2. {configDir}/base.yaml
//  3. {configDir}/{profile}.yaml
//  4. PLATFORMIO_CORE_DIR
//  5. APP_* environment variables
//
// APP_ names are matched against the keys already loaded, so underscores
// inside a key survive: APP_CORE_COMMAND_TIMEOUT sets core.command_timeout
// and APP_REGISTRY_CLIENT_RETRY_MAX_ATTEMPTS sets
// registry.client.retry.max_attempts. Path settings may start with "~".
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	basePath := filepath.Join(o.configDir, "base.yaml")
	profilePath := filepath.Join(o.configDir, profile+".yaml")
	for _, l := range []layer{
		{name: "defaults", provider: confmap.Provider(defaults(), ".")},
		{name: "base config " + basePath, provider: file.Provider(basePath), parser: yaml.Parser()},
		{name: "profile config " + profilePath, provider: file.Provider(profilePath), parser: yaml.Parser()},
		{name: "core env vars", provider: coreEnvProvider()},
	} {
		if err := k.Load(l.provider, l.parser); err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.name, err)
		}
	}

	// The APP_ layer needs the keys known so far.
	if err := k.Load(appEnvProvider(k.Keys()), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.expandPaths(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func coreEnvProvider() *env.Env {
	return env.Provider(".", env.Opt{
		Prefix: coreEnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			// Unknown PLATFORMIO_ variables map to "" and are skipped.
			return coreEnvKeys[strings.TrimPrefix(key, coreEnvPrefix)], value
		},
	})
}

func appEnvProvider(known []string) *env.Env {
	lookup := make(map[string]string, len(known))
	for _, key := range known {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}

	return env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			if dotted, ok := lookup[key]; ok {
				return dotted, value
			}
			return strings.ReplaceAll(key, "_", "."), value
		},
	})
}

// validateProfile rejects empty names and anything that could escape the
// config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// expandPaths resolves a leading "~" in every filesystem path setting.
func (c *Config) expandPaths() error {
	for _, p := range []*string{
		&c.Core.HomeDir,
		&c.Core.ArduinoLibsDir,
		&c.State.DBPath,
		&c.State.DefaultProjectsDir,
	} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("expanding %q: %w", *p, err)
		}
		*p = expanded
	}
	return nil
}
