package config

import (
	"time"

	"github.com/rs/zerolog"
)

var (
	// The countdown dialog offers up to 59 in each of its three fields.
	minDuration = 1 * time.Second
	maxDuration = 59*time.Hour + 59*time.Minute + 59*time.Second

	minLogFiles = 1
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := validateDuration(c.Timer.Duration); err != nil {
		return err
	}

	if c.CLI.Duration != 0 {
		if err := validateDuration(c.CLI.Duration); err != nil {
			return err
		}
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil || c.Log.Level == "" {
		return errInvalidLogLevel.Fmt(c.Log.Level)
	}

	if c.Log.MaxFiles < minLogFiles {
		return errInvalidMaxFiles.Fmt(minLogFiles, c.Log.MaxFiles)
	}

	return nil
}

// ValidDuration reports whether d can be used for a countdown.
func ValidDuration(d time.Duration) bool {
	return validateDuration(d) == nil
}

func validateDuration(d time.Duration) error {
	if d < minDuration || d > maxDuration {
		return errInvalidDuration.Fmt(minDuration, maxDuration)
	}

	return nil
}
