package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

const (
	keyTimerDuration  = "timer.duration"
	keyTimerNotify    = "timer.notify"
	keyTimerSound     = "timer.sound"
	keyTimerCmd       = "timer.cmd"
	keyDarkTheme      = "display.dark_theme"
	keyTwentyFourHour = "display.24hr_clock"
	keyLogLevel       = "log.level"
	keyLogMaxFiles    = "log.max_files"
)

// DefaultMaxLogFiles is how many log files are retained.
const DefaultMaxLogFiles = 20

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. The file is created with default values if it does not
// exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		var notFound viper.ConfigFileNotFoundError

		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper registers defaults. Answers from the first-run prompt replace
// the defaults so that they are written to the new file.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyTimerDuration, DefaultDuration.String())
	v.SetDefault(keyTimerNotify, true)
	v.SetDefault(keyTimerSound, true)
	v.SetDefault(keyTimerCmd, "")
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogMaxFiles, DefaultMaxLogFiles)

	if c.firstRun != nil {
		if c.firstRun.DurationMinutes > 0 {
			d := time.Duration(c.firstRun.DurationMinutes) * time.Minute
			v.SetDefault(keyTimerDuration, d.String())
		}

		v.SetDefault(keyTimerNotify, c.firstRun.Notify)
	}
}

// loadViperConfig copies the merged configuration into c.
func loadViperConfig(v *viper.Viper, c *Config) error {
	// a bare number in the file means minutes
	if raw := v.GetString(keyTimerDuration); raw != "" {
		d, err := parseDuration(raw)
		if err != nil {
			return err
		}

		v.Set(keyTimerDuration, d.String())
	}

	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}

// parseDuration accepts Go duration strings, and bare numbers as minutes.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	mins, err := time.ParseDuration(s + "m")
	if err != nil {
		return 0, errInvalidCLIDuration.Fmt(s)
	}

	return mins, nil
}
