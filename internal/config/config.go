// Package config loads Arranger's settings from the config file, the
// command-line and the first-run prompt
package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ayoisaiah/arranger/internal/models"
)

type (
	// Config holds all configuration settings
	Config struct {
		Timer   TimerConfig   `mapstructure:"timer"`
		Display DisplayConfig `mapstructure:"display"`
		Log     LogConfig     `mapstructure:"log"`
		CLI     CLIConfig     `mapstructure:"-"`

		// firstRun holds the answers given in the first-run prompt
		firstRun *PromptOptions
	}

	// TimerConfig holds countdown settings
	TimerConfig struct {
		Cmd      string        `mapstructure:"cmd"`
		Duration time.Duration `mapstructure:"duration"`
		Notify   bool          `mapstructure:"notify"`
		Sound    bool          `mapstructure:"sound"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// LogConfig holds logging settings
	LogConfig struct {
		Level    string `mapstructure:"level"`
		MaxFiles int    `mapstructure:"max_files"`
	}

	// CLIConfig holds values that only exist for the current invocation
	CLIConfig struct {
		// Mode overrides the saved window mode when set
		Mode models.Mode
		// Duration overrides the saved countdown duration when non-zero
		Duration time.Duration
		Debug    bool
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

// DefaultDuration is the countdown length used when nothing else is set.
const DefaultDuration = 15 * time.Minute

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// LogLevel returns the effective log level name.
func (c *Config) LogLevel() string {
	if c.CLI.Debug {
		return "debug"
	}

	return c.Log.Level
}

// String is used in debug logs.
func (c *Config) String() string {
	return fmt.Sprintf(
		"duration=%s notify=%t sound=%t log=%s/%d",
		c.Timer.Duration,
		c.Timer.Notify,
		c.Timer.Sound,
		c.Log.Level,
		c.Log.MaxFiles,
	)
}
