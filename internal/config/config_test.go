package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/arranger/internal/models"
)

func defaultConfig() *Config {
	return &Config{
		Timer: TimerConfig{
			Duration: 15 * time.Minute,
			Notify:   true,
			Sound:    true,
		},
		Display: DisplayConfig{
			DarkTheme: true,
		},
		Log: LogConfig{
			Level:    "info",
			MaxFiles: 20,
		},
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")

	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestViperWriteConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := New(WithViperConfig(path))
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(), cfg)

	_, err = os.Stat(path)
	require.NoError(t, err, "default config should be written")

	// reading the written file yields the same values
	again, err := New(WithViperConfig(path))
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestViperReadConfig(t *testing.T) {
	path := writeConfig(t, `
timer:
  duration: 45
  notify: false
  cmd: notify-send done
display:
  24hr_clock: true
log:
  level: debug
  max_files: 5
`)

	cfg, err := New(WithViperConfig(path))
	require.NoError(t, err)

	want := defaultConfig()
	want.Timer.Duration = 45 * time.Minute
	want.Timer.Notify = false
	want.Timer.Cmd = "notify-send done"
	want.Display.TwentyFourHour = true
	want.Log.Level = "debug"
	want.Log.MaxFiles = 5

	assert.Equal(t, want, cfg)
}

func TestValidation(t *testing.T) {
	cases := []struct {
		name    string
		content string
		err     error
	}{
		{
			name:    "zero duration",
			content: "timer:\n  duration: 0s\n",
			err:     errInvalidDuration,
		},
		{
			name:    "duration above dialog maximum",
			content: "timer:\n  duration: 72h\n",
			err:     errInvalidDuration,
		},
		{
			name:    "unknown log level",
			content: "log:\n  level: loud\n",
			err:     errInvalidLogLevel,
		},
		{
			name:    "no log files retained",
			content: "log:\n  max_files: 0\n",
			err:     errInvalidMaxFiles,
		},
		{
			name:    "unparseable duration",
			content: "timer:\n  duration: soon\n",
			err:     errInvalidCLIDuration,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(WithViperConfig(writeConfig(t, tc.content)))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestPromptAnswersAreWritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	prompt := func(c *Config) error {
		return applyPromptOptions(c, PromptOptions{
			DurationMinutes: 25,
			Notify:          false,
		})
	}

	cfg, err := New(prompt, WithViperConfig(path))
	require.NoError(t, err)
	assert.Equal(t, 25*time.Minute, cfg.Timer.Duration)
	assert.False(t, cfg.Timer.Notify)

	// a later run without the prompt sees the saved answers
	cfg, err = New(WithViperConfig(path))
	require.NoError(t, err)
	assert.Equal(t, 25*time.Minute, cfg.Timer.Duration)
	assert.False(t, cfg.Timer.Notify)
}

func TestApplyCLIOptions(t *testing.T) {
	cases := []struct {
		name  string
		opts  CLIOptions
		check func(t *testing.T, c *Config)
	}{
		{
			name: "duration in minutes",
			opts: CLIOptions{Duration: "30"},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, 30*time.Minute, c.CLI.Duration)
			},
		},
		{
			name: "duration string",
			opts: CLIOptions{Duration: "1h5m"},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, 65*time.Minute, c.CLI.Duration)
			},
		},
		{
			name: "relax mode",
			opts: CLIOptions{Relax: true},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, models.Relax, c.CLI.Mode)
			},
		},
		{
			name: "quiet",
			opts: CLIOptions{DisableNotify: true, Mute: true},
			check: func(t *testing.T, c *Config) {
				assert.False(t, c.Timer.Notify)
				assert.False(t, c.Timer.Sound)
			},
		},
		{
			name: "debug and command",
			opts: CLIOptions{Debug: true, SessionCmd: "echo done"},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "debug", c.LogLevel())
				assert.Equal(t, "echo done", c.Timer.Cmd)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := defaultConfig()

			require.NoError(t, applyCLIOptions(c, tc.opts))

			tc.check(t, c)
		})
	}
}

func TestApplyCLIOptionsInvalidDuration(t *testing.T) {
	err := applyCLIOptions(defaultConfig(), CLIOptions{Duration: "tomorrow"})
	assert.ErrorIs(t, err, errInvalidCLIDuration)
}

func TestWithCLIConfig(t *testing.T) {
	f := flag.NewFlagSet("arranger", flag.ContinueOnError)
	_ = f.String("duration", "", "")
	_ = f.Bool("relax", false, "")
	_ = f.Bool("mute", false, "")

	require.NoError(t, f.Parse([]string{"--duration", "20m", "--relax", "--mute"}))

	ctx := cli.NewContext(&cli.App{}, f, nil)

	c := defaultConfig()

	require.NoError(t, WithCLIConfig(ctx)(c))

	assert.Equal(t, 20*time.Minute, c.CLI.Duration)
	assert.Equal(t, models.Relax, c.CLI.Mode)
	assert.False(t, c.Timer.Sound)
	assert.True(t, c.Timer.Notify)
}

func TestValidDuration(t *testing.T) {
	assert.True(t, ValidDuration(time.Second))
	assert.True(t, ValidDuration(59*time.Hour+59*time.Minute+59*time.Second))
	assert.False(t, ValidDuration(0))
	assert.False(t, ValidDuration(60*time.Hour))
}
