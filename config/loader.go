package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load overlays YAML tuning on top of the defaults and validates the result.
// Top-level sections left out of the document keep their default values; a
// boss, enemy type or level that is present replaces the default entry whole.
func Load(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// LoadFile reads and loads a YAML tuning file.
func LoadFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Load(data)
}
