// Package timer runs the Arranger main window: the pending task list, the
// countdown and its dialogs
package timer

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	btimer "github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"

	"github.com/ayoisaiah/arranger/internal/config"
	"github.com/ayoisaiah/arranger/internal/models"
	"github.com/ayoisaiah/arranger/internal/ui"
	"github.com/ayoisaiah/arranger/store"
)

const (
	padding  = 2
	maxWidth = 80
)

type view int

const (
	mainView view = iota
	countdownView
	newTaskView
	confirmStopView
	confirmQuitView
)

// Prefs is the subset of the preference store used by the main window.
type Prefs interface {
	Duration(fallback time.Duration) time.Duration
	SetDuration(d time.Duration) error
	Mode() models.Mode
	SetMode(m models.Mode) error
	Compact() bool
	SetCompact(compact bool) error
}

// Timer is the bubbletea model of the main window.
type Timer struct {
	db    store.DB
	prefs Prefs
	Opts  *config.Config
	Style ui.Style
	now   func() time.Time

	keys     *keymap
	help     help.Model
	progress progress.Model
	clock    btimer.Model

	// form is the active dialog, if any
	form   *huh.Form
	view   view
	dialog *dialogValues

	tasks  []*models.Task
	cursor int

	// Current is the running session. It is nil while idle
	Current *models.Session
	task    *models.Task

	mode       models.Mode
	compact    bool
	statusFile string

	flash    string
	flashErr bool
}

// Options holds the dependencies of the main window.
type Options struct {
	DB         store.DB
	Prefs      Prefs
	Config     *config.Config
	StatusFile string
}

// New creates the main window model and loads the pending tasks.
func New(opts Options) *Timer {
	cfg := opts.Config

	t := &Timer{
		db:         opts.DB,
		prefs:      opts.Prefs,
		Opts:       cfg,
		Style:      ui.NewStyle(cfg.Display.DarkTheme),
		now:        time.Now,
		keys:       newKeymap(),
		help:       help.New(),
		progress:   progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		clock:      btimer.NewWithInterval(0, time.Second),
		mode:       opts.Prefs.Mode(),
		compact:    opts.Prefs.Compact(),
		statusFile: opts.StatusFile,
	}

	if cfg.CLI.Mode != "" {
		t.mode = cfg.CLI.Mode
	}

	t.loadTasks()
	t.updateKeys()

	return t
}

// Init implements tea.Model.
func (t *Timer) Init() tea.Cmd {
	return nil
}

// Run starts the main window and blocks until it exits.
func (t *Timer) Run() error {
	log.Info().
		Str("mode", string(t.mode)).
		Int("tasks", len(t.tasks)).
		Msg("main window opened")

	_, err := tea.NewProgram(t).Run()

	return err
}

// defaultDuration is the duration the countdown dialog starts with.
func (t *Timer) defaultDuration() time.Duration {
	if t.Opts.CLI.Duration > 0 {
		return t.Opts.CLI.Duration
	}

	return t.prefs.Duration(t.Opts.Timer.Duration)
}

func (t *Timer) idle() bool {
	return t.Current == nil
}

func (t *Timer) updateKeys() {
	t.keys.setIdle(t.idle(), t.mode == models.Work, len(t.tasks) > 0)
}

// selected returns the highlighted task, or nil when the list is empty.
func (t *Timer) selected() *models.Task {
	if t.mode != models.Work || len(t.tasks) == 0 {
		return nil
	}

	return t.tasks[t.cursor]
}

func (t *Timer) loadTasks() {
	tasks, err := t.db.GetTasks(false)
	if err != nil {
		t.showError("load tasks", err)
		return
	}

	t.tasks = tasks

	if t.cursor >= len(t.tasks) {
		t.cursor = max(len(t.tasks)-1, 0)
	}
}

// showError logs a failed operation and shows it on the message line.
func (t *Timer) showError(op string, err error) {
	log.Debug().Err(err).Str("op", op).Msg("operation failed")

	t.flash = op + ": " + err.Error()
	t.flashErr = true
}

func (t *Timer) setFlash(msg string) {
	t.flash = msg
	t.flashErr = false
}

func (t *Timer) savePrefs() {
	if err := t.prefs.SetMode(t.mode); err != nil {
		log.Debug().Err(err).Msg("unable to save mode")
	}

	if err := t.prefs.SetCompact(t.compact); err != nil {
		log.Debug().Err(err).Msg("unable to save overlay state")
	}
}
