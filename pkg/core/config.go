// pkg/core/config.go
package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// EnvPathVar is the environment variable holding the ordered,
// colon-separated list of environment roots.
const EnvPathVar = "PYENV_PATH"

// ErrNoRoots indicates that no environment roots are configured
var ErrNoRoots = errors.New("no environment roots configured (set " + EnvPathVar + ")")

// Config holds venvkit configuration
type Config struct {
	Roots        []string `yaml:"roots"`
	TemplatePath string   `yaml:"template_path"`
	Interpreter  string   `yaml:"interpreter"`
	Debug        bool     `yaml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from file
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = filepath.Join(xdg.ConfigHome, "venvkit", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		path = filepath.Join(xdg.ConfigHome, "venvkit", "config.yaml")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// RootsFromEnv parses the root list from the PYENV_PATH environment
// variable. Empty entries are skipped. Returns nil when the variable
// is unset or empty.
func RootsFromEnv() []string {
	value := os.Getenv(EnvPathVar)
	if value == "" {
		return nil
	}

	var roots []string
	for _, root := range filepath.SplitList(value) {
		if root != "" {
			roots = append(roots, root)
		}
	}
	return roots
}

// SearchRoots returns the ordered list of environment roots. PYENV_PATH
// always wins over the config file.
func (c *Config) SearchRoots() []string {
	if roots := RootsFromEnv(); len(roots) > 0 {
		return roots
	}
	return c.Roots
}
