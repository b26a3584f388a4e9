// Package config loads and persists the spendpad configuration file.
//
// Configuration lives in ~/.spendpad/config.yaml next to the expense data
// file. Defaults are usable without any file on disk; environment variables
// override file values so scripts can redirect the data slot.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment overrides.
const (
	// EnvDataFile overrides the expense data file path.
	EnvDataFile = "SPENDPAD_DATA_FILE"
	// EnvLogLevel overrides the configured log level.
	EnvLogLevel = "SPENDPAD_LOG_LEVEL"
	// EnvConfigDir overrides the ~/.spendpad directory (used heavily in tests).
	EnvConfigDir = "SPENDPAD_CONFIG_DIR"
)

const (
	dirName        = ".spendpad"
	configFileName = "config.yaml"
	dataFileName   = "expenses.json"
)

// LoggingConfig is the logging section of the config file.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
	File   string `yaml:"file,omitempty"`
}

// Config is the full spendpad configuration.
type Config struct {
	// DataFile is the path of the JSON slot holding the expense records.
	DataFile string `yaml:"data_file,omitempty"`

	// Currency is the symbol prefixed to rendered amounts.
	Currency string `yaml:"currency,omitempty"`

	// DefaultCategory preselects the form's category field.
	DefaultCategory string `yaml:"default_category,omitempty"`

	Logging LoggingConfig `yaml:"logging,omitempty"`

	path string
}

// New returns a Config populated with defaults. It never touches the disk.
func New() *Config {
	dir := Dir()
	return &Config{
		DataFile:        filepath.Join(dir, dataFileName),
		Currency:        "$",
		DefaultCategory: "Other",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		path: filepath.Join(dir, configFileName),
	}
}

// Dir returns the spendpad configuration directory. SPENDPAD_CONFIG_DIR wins;
// otherwise ~/.spendpad. Falls back to a relative .spendpad when the home
// directory cannot be resolved.
func Dir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return dirName
	}
	return filepath.Join(home, dirName)
}

// Load reads the config file on top of defaults and applies environment
// overrides. A missing file is not an error; a malformed one is.
func Load() (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(cfg.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", cfg.path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfg.path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDataFile); v != "" {
		c.DataFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
}

// Path returns the config file path this Config was resolved against.
func (c *Config) Path() string {
	return c.path
}

// Save writes the configuration as YAML, creating the directory when needed.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", c.path, err)
	}
	return nil
}
