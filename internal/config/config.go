package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the settings of the pickd command-line host. The picker
// widget itself takes no configuration from disk; everything here is merged
// into flags by cmd/pickd.
type Config struct {
	Picker struct {
		Prompt   string `yaml:"prompt"`    // Prompt line shown above the listing
		StartDir string `yaml:"start_dir"` // Initial directory (default: cwd)
		MaxRows  int    `yaml:"max_rows"`  // Cap on visible rows (0 = fit terminal)
	} `yaml:"picker"`
	Theme struct {
		Name string `yaml:"name"` // "simple" or "color"
	} `yaml:"theme"`
}

// New returns the default configuration.
func New() *Config {
	cfg := &Config{}
	cfg.Theme.Name = "color"
	return cfg
}

// LoadConfig loads configuration from the default location
// (~/.config/pickd/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "pickd", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if tempCfg.Picker.Prompt != "" {
		cfg.Picker.Prompt = tempCfg.Picker.Prompt
	}
	if tempCfg.Picker.StartDir != "" {
		cfg.Picker.StartDir = tempCfg.Picker.StartDir
	}
	if tempCfg.Picker.MaxRows > 0 {
		cfg.Picker.MaxRows = tempCfg.Picker.MaxRows
	}
	if tempCfg.Theme.Name != "" {
		cfg.Theme.Name = tempCfg.Theme.Name
	}

	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.Theme.Name {
	case "", "simple", "color":
	default:
		return fmt.Errorf("unknown theme: %q", c.Theme.Name)
	}
	if c.Picker.MaxRows < 0 {
		return fmt.Errorf("max_rows must not be negative")
	}
	return nil
}
