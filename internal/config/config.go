// Package config loads the optional startpad config file. A missing file is
// not an error; every field has a working default.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user-tunable settings.
type Config struct {
	// DBPath overrides the default database location.
	DBPath string `yaml:"db_path"`

	// FocusMinutes is the default focus session length.
	FocusMinutes int `yaml:"focus_minutes"`

	// Username is shown in the dashboard greeting.
	Username string `yaml:"username"`

	// AccentColor is an ANSI 256 color for highlights.
	AccentColor string `yaml:"accent_color"`

	// Debug enables the file debug log.
	Debug bool `yaml:"debug"`
}

func Default() Config {
	return Config{
		FocusMinutes: 25,
		AccentColor:  "205",
	}
}

// DefaultPath returns ~/.startpad/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".startpad", "config.yaml"), nil
}

// Load reads the config at path, falling back to defaults when the file does
// not exist. An empty path means the default location.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.FocusMinutes <= 0 {
		cfg.FocusMinutes = 25
	}
	if cfg.AccentColor == "" {
		cfg.AccentColor = "205"
	}
	return cfg, nil
}
