package internal

import (
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the ambient settings loaded from the optional settings
// file. The target directory and mode always come from the command line.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Rename  RenameConfig      `yaml:"rename"`
	Journal JournalConfig     `yaml:"journal"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	return c.Rename.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.In(
			slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError,
		)),
	)
}

// RenameConfig tunes the renaming pipeline.
type RenameConfig struct {
	// MaxProbes caps collision probes per file in sequential mode.
	// Zero leaves the probe loop unbounded.
	MaxProbes int `yaml:"max_probes"`
}

// Validate validates the rename configuration.
func (c *RenameConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.MaxProbes, validation.Min(0)),
	)
}

// JournalConfig holds the path to the optional SQLite rename journal.
type JournalConfig struct {
	Path string `yaml:"path"`
}

// Enabled reports whether rename attempts should be journaled.
func (c *JournalConfig) Enabled() bool {
	return c.Path != ""
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelWarn,
		},
	}
}
