// SPDX-License-Identifier: Apache-2.0

// Package config handles the optional user configuration file: custom chord
// fingerings merged into the chord table at startup, and a default layout
// width for non-interactive output.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"chordbook/internal/chord"
)

// Config represents the top-level application configuration.
type Config struct {
	// Width is the layout width used when the output is not a terminal
	// (optional; 0 means use the built-in default).
	Width int `yaml:"width,omitempty"`

	// Chords is a list of user-defined chord fingerings. Entries override
	// the embedded dataset on name collision.
	Chords []chord.Definition `yaml:"chords,omitempty"`
}

func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "chordbook", "config.yaml"), nil
}

// LoadConfig reads the user config file. A missing file is not an error,
// it simply yields the zero config.
func LoadConfig() (Config, error) {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", configPath, err)
	}
	return cfg, nil
}

// Parse decodes a config document. Split out of LoadConfig so decoding can
// be exercised without touching the filesystem.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// BuildTable loads the embedded chord table and merges the user's custom
// chord definitions on top. The returned config carries the remaining
// settings (layout width). A broken user chord definition is a startup
// error, same as a broken embedded dataset.
func BuildTable() (*chord.Table, Config, error) {
	table, err := chord.Load()
	if err != nil {
		return nil, Config{}, err
	}
	cfg, err := LoadConfig()
	if err != nil {
		return nil, Config{}, err
	}
	if len(cfg.Chords) > 0 {
		if err := table.Add(cfg.Chords); err != nil {
			return nil, Config{}, fmt.Errorf("user chord definitions: %w", err)
		}
	}
	return table, cfg, nil
}

func EnsureConfigDir() error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	configDir := filepath.Dir(configPath)
	err = os.MkdirAll(configDir, 0750) // rwxr-x---
	if err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}
	return nil
}

func SaveConfig(cfg Config) error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}

	err = EnsureConfigDir()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// Write with permissions rw-r----- (0640)
	err = os.WriteFile(configPath, data, 0640)
	if err != nil {
		return fmt.Errorf("failed to write config file %s: %w", configPath, err)
	}

	return nil
}
