// Package config loads siunit settings from the environment.
//
// Command-line flags take precedence; the values here only seed their
// defaults.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/roach88/siunit/internal/logging"
	"github.com/roach88/siunit/internal/unit"
)

// Config holds all application configuration.
type Config struct {
	// Format is the CLI output format, "text" or "json".
	Format string `envconfig:"SIUNIT_FORMAT" default:"text"`

	// Style names the rendering style, see unit.Styles.
	Style string `envconfig:"SIUNIT_STYLE" default:"plain"`

	// DB is the SQLite path for recorded harness runs. Empty disables
	// recording.
	DB string `envconfig:"SIUNIT_DB"`

	// GoldenDir holds golden trace files for "siunit check --golden".
	GoldenDir string `envconfig:"SIUNIT_GOLDEN_DIR" default:"testdata/golden"`

	Logging LogConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"SIUNIT_LOG_LEVEL" default:"warn"`
	Development bool   `envconfig:"SIUNIT_LOG_DEV" default:"false"`
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Format:    "text",
		Style:     "plain",
		GoldenDir: "testdata/golden",
		Logging: LogConfig{
			Level: "warn",
		},
	}
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid SIUNIT_FORMAT %q: must be text or json", c.Format)
	}
	if _, ok := unit.Styles[c.Style]; !ok {
		return fmt.Errorf("invalid SIUNIT_STYLE %q: must be plain or dot", c.Style)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid SIUNIT_LOG_LEVEL: %w", err)
	}
	return nil
}

// LoggerConfig converts the logging section to a logging.Config.
func (c *Config) LoggerConfig() logging.Config {
	if c.Logging.Development {
		cfg := logging.DevelopmentConfig()
		cfg.Level = c.Logging.Level
		return cfg
	}
	cfg := logging.DefaultConfig()
	cfg.Level = c.Logging.Level
	return cfg
}
