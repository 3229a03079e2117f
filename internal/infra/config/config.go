// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "config.toml"

// Config represents the application configuration.
type Config struct {
	DBPath string    `toml:"db_path"` // Path to the SQLite database file
	Log    LogConfig `toml:"log"`     // [log] settings
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// NewDefault returns the default configuration. The database and logs
// live under ~/.farhost/devflow.
func NewDefault() *Config {
	return &Config{
		DBPath: filepath.Join(DataDir(), "devflow.db"),
		Log:    LogConfig{Level: "info"},
	}
}

// DataDir returns the default data directory.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".devflow"
	}
	return filepath.Join(home, ".farhost", "devflow")
}

// Loader loads configuration from TOML files.
type Loader struct {
	confDir string
}

// NewLoader creates a Loader reading from the default config directory
// (respecting XDG_CONFIG_HOME).
func NewLoader() *Loader {
	return &Loader{confDir: defaultConfigDir()}
}

// NewLoaderWithDir creates a Loader with a custom config directory.
// This is useful for testing.
func NewLoaderWithDir(dir string) *Loader {
	return &Loader{confDir: dir}
}

func defaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "devflow")
}

// Load returns the configuration, merging the config file over the
// defaults. A missing file yields the defaults.
func (l *Loader) Load() (*Config, error) {
	cfg := NewDefault()
	if l.confDir == "" {
		return cfg, nil
	}

	path := filepath.Join(l.confDir, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var file Config
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if file.DBPath != "" {
		cfg.DBPath = file.DBPath
	}
	if file.Log.Level != "" {
		cfg.Log.Level = file.Log.Level
	}
	return cfg, nil
}
