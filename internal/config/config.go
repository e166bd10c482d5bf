package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vvka-141/scriptenv/pkg/scriptenv"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig is the optional scriptenv.yaml stored in the working root.
type ProjectConfig struct {
	Environments       []string `yaml:"environments,omitempty"`
	Patterns           []string `yaml:"patterns,omitempty"`
	ExcludeDirectories []string `yaml:"exclude_directories,omitempty"`
}

const ConfigFileName = "scriptenv.yaml"

func Load(root string) (*ProjectConfig, error) {
	configPath := filepath.Join(root, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return &cfg, nil
}

// Save writes cfg to root/scriptenv.yaml, replacing any existing file.
func Save(root string, cfg *ProjectConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", ConfigFileName, err)
	}
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ConfigFileName, err)
	}
	return nil
}

// Default returns the configuration written by `scriptenv init`.
func Default() *ProjectConfig {
	return &ProjectConfig{
		Patterns: []string{scriptenv.DefaultScriptPattern},
	}
}

// Validate checks the configuration for values the scanner cannot use.
func (c *ProjectConfig) Validate() error {
	if len(c.Environments) > scriptenv.MaxEnvironmentCodes {
		return fmt.Errorf("%w: %d environments configured, at most %d are supported",
			scriptenv.ErrInvalidConfig, len(c.Environments), scriptenv.MaxEnvironmentCodes)
	}
	for _, p := range c.Patterns {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: patterns must not contain empty entries", scriptenv.ErrInvalidConfig)
		}
	}
	return nil
}
