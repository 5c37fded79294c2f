package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
 █████╗ ██████╗ ██████╗  █████╗ ███╗   ██╗ ██████╗ ███████╗██████╗
██╔══██╗██╔══██╗██╔══██╗██╔══██╗████╗  ██║██╔════╝ ██╔════╝██╔══██╗
███████║██████╔╝██████╔╝███████║██╔██╗ ██║██║  ███╗█████╗  ██████╔╝
██╔══██║██╔══██╗██╔══██╗██╔══██║██║╚██╗██║██║   ██║██╔══╝  ██╔══██╗
██║  ██║██║  ██║██║  ██║██║  ██║██║ ╚████║╚██████╔╝███████╗██║  ██║
╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═══╝ ╚═════╝ ╚══════╝╚═╝  ╚═╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	DurationMinutes int
	Notify          bool
}

// WithPromptConfig returns an Option that configures settings via
// interactive prompts. It only runs when no config file exists yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, fs.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		return applyPromptOptions(c, opts)
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		Notify: true,
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure Arranger for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'arranger edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Default countdown length").
				Options(
					huh.NewOption("15 minutes", 15).Selected(true),
					huh.NewOption("25 minutes", 25),
					huh.NewOption("45 minutes", 45),
					huh.NewOption("60 minutes", 60),
					huh.NewOption("90 minutes", 90),
				).
				Value(&opts.DurationMinutes),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show a desktop notification when a countdown ends?").
				Affirmative("Yes").
				Negative("No").
				Value(&opts.Notify),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) error {
	if opts.DurationMinutes > 0 {
		c.Timer.Duration = time.Duration(opts.DurationMinutes) * time.Minute
	}

	c.Timer.Notify = opts.Notify
	c.firstRun = &opts

	return nil
}
