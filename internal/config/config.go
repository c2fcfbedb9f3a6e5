// Package config handles Gularen project configuration file loading.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gularen-lang/gularen/internal/theme"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the Gularen project configuration file.
const ConfigFileName = "gularen.yaml"

// Config holds the core fileInclusion option plus the CLI settings
// that travel with a project (currently the color theme).
type Config struct {
	// FileInclusion toggles whether `?[path]` directives recursively
	// parse the referenced file. Defaults to true.
	FileInclusion bool `yaml:"fileInclusion"`

	// Theme names the color theme used by the CLI and the explorer TUI.
	Theme string `yaml:"theme"`

	// ProjectRoot is the absolute directory gularen.yaml was found in,
	// or the starting directory if no config file exists.
	ProjectRoot string `yaml:"-"`

	// ConfigPath is the absolute path to the config file that was
	// loaded, or empty if defaults were used.
	ConfigPath string `yaml:"-"`
}

// Default returns the configuration used when no gularen.yaml is found.
func Default(projectRoot string) *Config {
	return &Config{
		FileInclusion: true,
		Theme:         "default",
		ProjectRoot:   projectRoot,
	}
}

// Load searches for gularen.yaml starting from the current working
// directory, walking up the directory tree.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	return LoadFromPath(cwd)
}

// LoadFromPath searches for gularen.yaml starting from startPath,
// walking up the directory tree. If none is found, it returns the
// default configuration with startPath (resolved to absolute) as the
// ProjectRoot.
func LoadFromPath(startPath string) (*Config, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path for %q: %w", startPath, err)
	}

	currentPath := absPath
	for {
		configPath := filepath.Join(currentPath, ConfigFileName)
		if _, statErr := os.Stat(configPath); statErr == nil {
			cfg, parseErr := parseConfigFile(configPath)
			if parseErr != nil {
				return nil, parseErr
			}
			cfg.ProjectRoot = currentPath
			cfg.ConfigPath = configPath

			if validateErr := cfg.validate(); validateErr != nil {
				return nil, fmt.Errorf("invalid configuration in %s: %w", configPath, validateErr)
			}

			return cfg, nil
		}

		parentPath := filepath.Dir(currentPath)
		if parentPath == currentPath {
			break
		}
		currentPath = parentPath
	}

	return Default(absPath), nil
}

func parseConfigFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{FileInclusion: true}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("invalid YAML syntax: %v", typeErr.Errors)
		}

		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.Theme == "" {
		cfg.Theme = "default"
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := theme.Get(c.Theme); err != nil {
		return fmt.Errorf("invalid theme '%s', available themes: %v", c.Theme, theme.Available())
	}

	return nil
}
