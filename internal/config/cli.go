package config

import (
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/arranger/internal/models"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Duration      string
	SessionCmd    string
	Relax         bool
	Work          bool
	DisableNotify bool
	Mute          bool
	Debug         bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Duration:      ctx.String("duration"),
			SessionCmd:    ctx.String("session-cmd"),
			Relax:         ctx.Bool("relax"),
			Work:          ctx.Bool("work"),
			DisableNotify: ctx.Bool("disable-notification"),
			Mute:          ctx.Bool("mute"),
			Debug:         ctx.Bool("debug"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.Duration != "" {
		d, err := parseDuration(opts.Duration)
		if err != nil {
			return err
		}

		c.CLI.Duration = d
	}

	switch {
	case opts.Relax:
		c.CLI.Mode = models.Relax
	case opts.Work:
		c.CLI.Mode = models.Work
	}

	if opts.SessionCmd != "" {
		c.Timer.Cmd = opts.SessionCmd
	}

	if opts.DisableNotify {
		c.Timer.Notify = false
	}

	if opts.Mute {
		c.Timer.Sound = false
	}

	c.CLI.Debug = opts.Debug

	return nil
}
