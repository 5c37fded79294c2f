package app

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/arranger/internal/config"
	"github.com/ayoisaiah/arranger/internal/logger"
	"github.com/ayoisaiah/arranger/internal/osutil"
	"github.com/ayoisaiah/arranger/internal/pathutil"
	"github.com/ayoisaiah/arranger/internal/prefs"
	"github.com/ayoisaiah/arranger/internal/timeutil"
	"github.com/ayoisaiah/arranger/internal/ui"
	"github.com/ayoisaiah/arranger/logs"
	"github.com/ayoisaiah/arranger/report"
	"github.com/ayoisaiah/arranger/stats"
	"github.com/ayoisaiah/arranger/store"
	"github.com/ayoisaiah/arranger/timer"
)

const (
	envNoColor         = "NO_COLOR"
	envArrangerNoColor = "ARRANGER_NO_COLOR"
)

type configAction func(ctx *cli.Context, cfg *config.Config) error

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

func loadConfig(ctx *cli.Context, prompt bool) (*config.Config, error) {
	path := pathutil.ConfigFilePath()

	var opts []config.Option

	if prompt {
		opts = append(opts, config.WithPromptConfig(path))
	}

	opts = append(opts,
		config.WithViperConfig(path),
		config.WithCLIConfig(ctx),
	)

	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, nil
}

// startLogging opens a fresh log file for this run and removes the oldest
// files beyond the configured limit.
func startLogging(ctx *cli.Context, cfg *config.Config) (io.Closer, error) {
	dir := pathutil.LogDir()

	closer, err := logger.Setup(dir, pathutil.LogFilePrefix(), cfg.LogLevel())
	if err != nil {
		return nil, err
	}

	// the first write creates this run's file so that it counts as the newest
	log.Info().
		Str("command", commandName(ctx)).
		Str("version", config.Version).
		Msg("arranger started")
	log.Debug().Stringer("config", cfg).Msg("configuration loaded")

	removed, err := logs.Prune(dir, cfg.Log.MaxFiles)
	if err != nil {
		log.Warn().Err(err).Msg("unable to prune log files")
	}

	if len(removed) > 0 {
		log.Debug().Strs("files", removed).Msg("old log files removed")
	}

	return closer, nil
}

func commandName(ctx *cli.Context) string {
	if ctx.Command == nil || ctx.Command.Name == "" {
		return ctx.App.Name
	}

	return ctx.Command.FullName()
}

// logged runs a state-changing action with logging to a new log file.
func logged(prompt bool, action configAction) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		cfg, err := loadConfig(ctx, prompt)
		if err != nil {
			return err
		}

		return runLogged(ctx, cfg, action)
	}
}

// locked is like logged but takes the preference store first. A second
// instance is refused before any log file is opened or pruned.
func locked(
	prompt bool,
	action func(ctx *cli.Context, cfg *config.Config, p *prefs.Store) error,
) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		cfg, err := loadConfig(ctx, prompt)
		if err != nil {
			return err
		}

		p, err := prefs.Open(pathutil.PrefsFilePath())
		if err != nil {
			return err
		}

		defer p.Close()

		return runLogged(ctx, cfg, func(ctx *cli.Context, cfg *config.Config) error {
			return action(ctx, cfg, p)
		})
	}
}

func runLogged(ctx *cli.Context, cfg *config.Config, action configAction) error {
	closer, err := startLogging(ctx, cfg)
	if err != nil {
		return err
	}

	defer func() {
		logger.Disable()
		_ = closer.Close()
	}()

	err = action(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Str("command", commandName(ctx)).Msg("command failed")
	}

	return err
}

// readOnly runs an action that must not create or rotate log files.
func readOnly(action configAction) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		logger.Disable()

		cfg, err := loadConfig(ctx, false)
		if err != nil {
			return err
		}

		return action(ctx, cfg)
	}
}

func openDB() (*store.Client, error) {
	return store.NewClient(pathutil.DBFilePath())
}

// withDB opens the database for the duration of action.
func withDB(action func(ctx *cli.Context, cfg *config.Config, db store.DB) error) configAction {
	return func(ctx *cli.Context, cfg *config.Config) error {
		db, err := openDB()
		if err != nil {
			return err
		}

		defer db.Close()

		return action(ctx, cfg, db)
	}
}

// defaultAction opens the main window.
func defaultAction(_ *cli.Context, cfg *config.Config, p *prefs.Store) error {
	db, err := openDB()
	if err != nil {
		_ = p.Close()

		log.Error().Err(err).Msg("unable to open database")
		report.Quit(err)
	}

	defer db.Close()

	t := timer.New(timer.Options{
		DB:         db,
		Prefs:      p,
		Config:     cfg,
		StatusFile: pathutil.StatusFilePath(),
	})

	return t.Run()
}

// filter works out the session selection from the filter flags.
type filter struct {
	start time.Time
	end   time.Time
	task  string
}

func parseFilter(ctx *cli.Context, now time.Time) (filter, error) {
	f := filter{task: ctx.String("task")}

	period := timeutil.Period(ctx.String("period"))
	if _, ok := timeutil.Range[period]; !ok {
		return f, errInvalidPeriod.Fmt(period)
	}

	f.start, f.end = timeutil.PeriodBounds(period, now)

	if s := ctx.String("since"); s != "" {
		t, err := timeutil.FromStrAt(s, now)
		if err != nil {
			return f, errInvalidDate.Fmt(s).Wrap(err)
		}

		f.start = timeutil.RoundToStart(t)
		f.end = timeutil.RoundToEnd(now)
	}

	if s := ctx.String("until"); s != "" {
		t, err := timeutil.FromStrAt(s, now)
		if err != nil {
			return f, errInvalidDate.Fmt(s).Wrap(err)
		}

		f.end = timeutil.RoundToEnd(t)
	}

	if !f.start.IsZero() && f.end.Before(f.start) {
		return f, errPeriodBounds
	}

	return f, nil
}

func statsAction(ctx *cli.Context, _ *config.Config, db store.DB) error {
	f, err := parseFilter(ctx, time.Now())
	if err != nil {
		return err
	}

	return stats.Show(db, &stats.Options{
		Stdout:    config.Stdout,
		StartTime: f.start,
		EndTime:   f.end,
		Task:      f.task,
		JSON:      ctx.Bool("json"),
	})
}

// statusAction prints the countdown of a running instance.
func statusAction(_ *cli.Context, _ *config.Config) error {
	return timer.ReportStatus(
		config.Stdout,
		pathutil.PrefsFilePath(),
		pathutil.StatusFilePath(),
		time.Now(),
	)
}

// settingsAction edits the saved countdown duration and mode.
func settingsAction(_ *cli.Context, cfg *config.Config, p *prefs.Store) error {
	err := timer.Settings(p, cfg.Timer.Duration)
	if err != nil {
		return err
	}

	log.Info().
		Stringer("duration", p.Duration(cfg.Timer.Duration)).
		Str("mode", string(p.Mode())).
		Msg("settings saved")

	pterm.Success.Println("settings saved")

	return nil
}

// editConfigAction opens the config file in the user's default text editor.
func editConfigAction(_ *cli.Context, _ *config.Config) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/arranger/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	_, noColor := os.LookupEnv(envNoColor)
	_, arrangerNoColor := os.LookupEnv(envArrangerNoColor)

	if noColor || arrangerNoColor || ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}
