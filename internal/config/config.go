package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
// Every field can be overridden from the environment.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Theme    ColorScheme    `yaml:"theme"`
}

// DatabaseConfig locates the SQLite file
type DatabaseConfig struct {
	Path string `yaml:"path" env:"TODO_DB_PATH" env-description:"SQLite database file"`
}

// LogConfig controls the log file
type LogConfig struct {
	Level string `yaml:"level" env:"TODO_LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
	Path  string `yaml:"path" env:"TODO_LOG_PATH" env-description:"log file location"`
}

// Load reads the config file at path, or the default location when path is empty.
// A missing file is not an error: defaults and environment overrides still apply.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		if path, err = ConfigPath(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read config from environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the config as YAML to path, creating parent directories
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Marshal renders the config as YAML
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// SlogLevel parses Log.Level, falling back to info for unknown values
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// ConfigPath returns the path to the config file
func ConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "todo", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "todo", "config.yaml"), nil
}

// StateDir returns the directory holding the database and logs
func StateDir() (string, error) {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, "todo"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".local", "state", "todo"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() error {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	if c.Database.Path == "" || c.Log.Path == "" {
		stateDir, err := StateDir()
		if err != nil {
			return fmt.Errorf("locate state directory: %w", err)
		}
		if c.Database.Path == "" {
			c.Database.Path = filepath.Join(stateDir, "data", "todo.db")
		}
		if c.Log.Path == "" {
			c.Log.Path = filepath.Join(stateDir, "logs", "todo.log")
		}
	}

	c.Theme.ApplyDefaults()
	return nil
}
