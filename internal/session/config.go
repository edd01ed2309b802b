package session

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lyra-lang/lyra/internal/config"
)

// Config represents the build section of a lyra.yaml file.
type Config struct {
	// Features lists the experimental capabilities enabled for this build
	// (e.g. "const_for"). Unknown names are a configuration error.
	Features []string `yaml:"features,omitempty"`

	// StagedAPI activates the staged public-stability protocol.
	StagedAPI bool `yaml:"staged_api,omitempty"`

	// AllowExperimental marks this build as permitted to accept experimental
	// opt-ins. Defaults to true whenever Features is non-empty, since a build
	// that enables features has opted in already.
	AllowExperimental bool `yaml:"allow_experimental,omitempty"`

	// UncheckedConstEval is the debug-only const-check escape. Not for
	// general use; it exists for internal diagnostic bypass.
	UncheckedConstEval bool `yaml:"unchecked_const_eval,omitempty"`
}

// LoadConfig reads and parses a lyra.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses lyra.yaml content from bytes.
// The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return &cfg, nil
}

// FindConfig searches for lyra.yaml starting from dir and walking up to
// parent directories. Returns the path to the config file and nil error if
// found, or empty string and nil error if not found.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range config.ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", nil
		}
		dir = parent
	}
}

// validate checks the configuration for semantic errors.
func (c *Config) validate(path string) error {
	seen := make(map[string]bool)
	for i, name := range c.Features {
		if name == "" {
			return fmt.Errorf("%s: features[%d]: empty feature name", path, i)
		}
		if !KnownFeature(Feature(name)) {
			return fmt.Errorf("%s: features[%d]: unknown feature %q", path, i, name)
		}
		if seen[name] {
			return fmt.Errorf("%s: features[%d]: duplicate feature %q", path, i, name)
		}
		seen[name] = true
	}
	return nil
}

// setDefaults fills in default values for omitted fields.
func (c *Config) setDefaults() {
	if len(c.Features) > 0 {
		c.AllowExperimental = true
	}
}
