// Package config loads the algolab YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algolab/complexity"
)

// DefaultPath is the file looked up when no --config flag is given.
const DefaultPath = "algolab.yaml"

// EnvStorePath overrides Store.Path when set.
const EnvStorePath = "ALGOLAB_STORE_PATH"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds all algolab configuration.
type Config struct {
	// Logging configures the zap logger of the CLI.
	Logging LoggingConfig `yaml:"logging"`

	// Compare configures the complexity harness.
	Compare complexity.Config `yaml:"compare"`

	// Store configures the report history database.
	Store StoreConfig `yaml:"store"`
}

// LoggingConfig selects level and encoder.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// StoreConfig locates the SQLite history database.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Compare: complexity.DefaultConfig(),
		Store:   StoreConfig{Path: "algolab.db"},
	}
}

// Load reads path over the defaults. A missing file is not an error; the
// defaults are returned. Environment overrides apply last, then Validate.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if v := os.Getenv(EnvStorePath); v != "" {
		cfg.Store.Path = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalid, c.Logging.Format)
	}
	if err := c.Compare.Validate(); err != nil {
		return fmt.Errorf("%w: compare: %w", ErrInvalid, err)
	}
	if c.Store.Path == "" {
		return fmt.Errorf("%w: store.path is empty", ErrInvalid)
	}

	return nil
}

// Save writes c to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	return nil
}
