package timer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	btimer "github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/arranger/internal/config"
	"github.com/ayoisaiah/arranger/internal/logger"
	"github.com/ayoisaiah/arranger/internal/models"
	"github.com/ayoisaiah/arranger/internal/prefs"
	"github.com/ayoisaiah/arranger/store"
)

type fixture struct {
	timer  *Timer
	db     *store.Client
	prefs  *prefs.Store
	status string
}

func newFixture(t *testing.T, tasks ...string) *fixture {
	t.Helper()

	dir := t.TempDir()

	db, err := store.NewClient(filepath.Join(dir, "arranger.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	p, err := prefs.Open(filepath.Join(dir, "prefs.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = p.Close()
	})

	for _, name := range tasks {
		_, err := db.AddTask(name)
		require.NoError(t, err)
	}

	cfg := &config.Config{
		Timer: config.TimerConfig{Duration: config.DefaultDuration},
	}

	status := filepath.Join(dir, "status.json")

	tm := New(Options{
		DB:         db,
		Prefs:      p,
		Config:     cfg,
		StatusFile: status,
	})

	clock := time.Date(2026, 10, 18, 9, 0, 0, 0, time.Local)
	tm.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	return &fixture{timer: tm, db: db, prefs: p, status: status}
}

func press(tm *Timer, keys string) tea.Cmd {
	_, cmd := tm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})
	return cmd
}

func tick(tm *Timer) tea.Cmd {
	_, cmd := tm.Update(btimer.TickMsg{ID: tm.clock.ID()})
	return cmd
}

func allSessions(t *testing.T, db store.DB) []*models.Session {
	t.Helper()

	sessions, err := db.GetSessions(time.Time{}, time.Time{}, "")
	require.NoError(t, err)

	return sessions
}

func assertIdle(t *testing.T, tm *Timer) {
	t.Helper()

	assert.True(t, tm.idle())
	assert.True(t, tm.keys.start.Enabled())
	assert.False(t, tm.keys.stop.Enabled())
	assert.True(t, tm.keys.mode.Enabled())
	assert.Contains(t, tm.View(), "00:00:00")
}

func TestInitialState(t *testing.T) {
	f := newFixture(t, "write report", "review")

	tm := f.timer

	assertIdle(t, tm)
	assert.Equal(t, models.Work, tm.mode)
	assert.True(t, tm.keys.newTask.Enabled())
	assert.True(t, tm.keys.deleteTask.Enabled())
	assert.Len(t, tm.tasks, 2)
	assert.Equal(t, "write report", tm.selected().Name)

	view := tm.View()
	assert.Contains(t, view, "write report")
	assert.Contains(t, view, "review")
}

func TestNoTasksDisablesDelete(t *testing.T) {
	f := newFixture(t)

	assert.True(t, f.timer.keys.newTask.Enabled())
	assert.False(t, f.timer.keys.deleteTask.Enabled())
	assert.Nil(t, f.timer.selected())
}

func TestCursorMovement(t *testing.T) {
	f := newFixture(t, "a", "b", "c")

	tm := f.timer

	press(tm, "j")
	press(tm, "j")
	press(tm, "j")
	assert.Equal(t, 2, tm.cursor)

	press(tm, "k")
	assert.Equal(t, "b", tm.selected().Name)
}

func TestStartOpensDialog(t *testing.T) {
	f := newFixture(t, "write report")

	tm := f.timer

	press(tm, "s")

	require.NotNil(t, tm.form)
	assert.Equal(t, countdownView, tm.view)
	assert.Equal(t, 15, tm.dialog.minutes)
	assert.Equal(t, tm.tasks[0].ID, tm.dialog.taskID)

	_, _ = tm.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, tm.form)
	assert.Equal(t, mainView, tm.view)
	assertIdle(t, tm)
}

func TestDialogUsesSavedDuration(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.prefs.SetDuration(1*time.Hour+2*time.Minute+3*time.Second))

	press(f.timer, "s")

	d := f.timer.dialog
	assert.Equal(t, []int{1, 2, 3}, []int{d.hours, d.minutes, d.seconds})
}

func TestSubmitCountdownDialog(t *testing.T) {
	f := newFixture(t, "write report", "review")

	tm := f.timer

	press(tm, "s")

	tm.dialog.hours, tm.dialog.minutes, tm.dialog.seconds = 0, 0, 30
	tm.dialog.taskID = tm.tasks[1].ID

	cmd := tm.submitForm()
	assert.NotNil(t, cmd)
	assert.Nil(t, tm.form)

	require.False(t, tm.idle())
	assert.Equal(t, "review", tm.Current.Task)
	assert.Equal(t, 30*time.Second, f.prefs.Duration(time.Minute))
}

func TestCountdownLifecycle(t *testing.T) {
	f := newFixture(t, "write report", "review")

	tm := f.timer
	task := tm.tasks[0]

	cmd := tm.startCountdown(2*time.Second, task)
	require.NotNil(t, cmd)

	assert.False(t, tm.keys.start.Enabled())
	assert.True(t, tm.keys.stop.Enabled())
	assert.False(t, tm.keys.mode.Enabled())
	assert.False(t, tm.keys.newTask.Enabled())
	assert.False(t, tm.keys.deleteTask.Enabled())

	sessions := allSessions(t, f.db)
	require.Len(t, sessions, 1)
	assert.Equal(t, "write report", sessions[0].Task)
	assert.False(t, sessions[0].Completed())
	assert.Equal(t, 2*time.Second, sessions[0].Duration)

	_, err := os.Stat(f.status)
	require.NoError(t, err)

	tick(tm)
	assert.Contains(t, tm.View(), "00:00:01")

	tick(tm)
	assert.Contains(t, tm.View(), "00:00:00")

	// notifications, sound and the session command are all off
	_, cmd = tm.Update(btimer.TimeoutMsg{ID: tm.clock.ID()})
	assert.Nil(t, cmd)

	assertIdle(t, tm)
	assert.Contains(t, tm.flash, "Work session completed")

	sessions = allSessions(t, f.db)
	require.Len(t, sessions, 1)
	assert.True(t, sessions[0].Completed())

	// the finished task drops out of the pending list
	require.Len(t, tm.tasks, 1)
	assert.Equal(t, "review", tm.tasks[0].Name)

	done, err := f.db.GetTask(task.ID)
	require.NoError(t, err)
	assert.True(t, done.Finished)

	_, err = os.Stat(f.status)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStaleTimeoutIgnored(t *testing.T) {
	f := newFixture(t)

	tm := f.timer

	tm.startCountdown(time.Minute, nil)

	_, cmd := tm.Update(btimer.TimeoutMsg{ID: tm.clock.ID() + 1000})
	assert.Nil(t, cmd)
	assert.False(t, tm.idle())
}

func TestStopCountdown(t *testing.T) {
	f := newFixture(t, "write report")

	tm := f.timer

	tm.startCountdown(time.Minute, tm.selected())
	tick(tm)

	press(tm, "x")
	require.NotNil(t, tm.form)
	assert.Equal(t, confirmStopView, tm.view)

	tm.dialog.confirmed = true
	tm.submitForm()

	assertIdle(t, tm)
	assert.Empty(t, allSessions(t, f.db))

	// the task stays pending
	assert.Len(t, tm.tasks, 1)

	_, err := os.Stat(f.status)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStopDeclined(t *testing.T) {
	f := newFixture(t)

	tm := f.timer

	tm.startCountdown(time.Minute, nil)

	press(tm, "x")
	tm.dialog.confirmed = false
	tm.submitForm()

	assert.False(t, tm.idle())
	assert.Len(t, allSessions(t, f.db), 1)
}

func TestTicksIgnoredWhenIdle(t *testing.T) {
	f := newFixture(t)

	cmd := tick(f.timer)
	assert.Nil(t, cmd)
	assertIdle(t, f.timer)
}

func TestRelaxMode(t *testing.T) {
	f := newFixture(t, "write report")

	tm := f.timer

	press(tm, "m")

	assert.Equal(t, models.Relax, tm.mode)
	assert.Equal(t, models.Relax, f.prefs.Mode())
	assert.False(t, tm.keys.newTask.Enabled())
	assert.False(t, tm.keys.deleteTask.Enabled())
	assert.False(t, tm.keys.up.Enabled())
	assert.Nil(t, tm.selected())

	press(tm, "s")
	require.NotNil(t, tm.form)
	assert.Zero(t, tm.dialog.taskID)

	tm.closeForm()

	tm.startCountdown(time.Minute, tm.tasks[0])
	require.False(t, tm.idle())
	assert.Equal(t, models.RelaxTask, tm.Current.Task)

	// mode changes are refused while timing
	press(tm, "m")
	assert.Equal(t, models.Relax, tm.mode)
}

func TestNewAndDeleteTask(t *testing.T) {
	f := newFixture(t, "first")

	tm := f.timer

	press(tm, "n")
	require.Equal(t, newTaskView, tm.view)

	tm.dialog.taskName = "  second  "
	tm.submitForm()

	require.Len(t, tm.tasks, 2)
	assert.Equal(t, "second", tm.tasks[1].Name)
	assert.Equal(t, 1, tm.cursor)

	press(tm, "d")

	require.Len(t, tm.tasks, 1)
	assert.Equal(t, "first", tm.tasks[0].Name)
	assert.Equal(t, 0, tm.cursor)

	tasks, err := f.db.GetTasks(true)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestOverlay(t *testing.T) {
	f := newFixture(t, "write report")

	tm := f.timer

	press(tm, "o")
	assert.Equal(t, "[Work] 00:00:00", tm.View())

	tm.startCountdown(90*time.Second, tm.selected())
	assert.Equal(t, "[Work write report] 00:01:30", tm.View())

	press(tm, "o")
	assert.Contains(t, tm.View(), "write report")
	assert.NotEqual(t, "[Work write report] 00:01:30", tm.View())
}

func TestQuitWhenIdle(t *testing.T) {
	f := newFixture(t)

	tm := f.timer

	press(tm, "o")

	cmd := press(tm, "q")
	require.NotNil(t, cmd)

	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
	assert.True(t, f.prefs.Compact())
}

func TestQuitWhileTimingConfirms(t *testing.T) {
	f := newFixture(t)

	tm := f.timer

	tm.startCountdown(time.Minute, nil)

	_, _ = tm.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.Equal(t, confirmQuitView, tm.view)

	tm.dialog.confirmed = true

	cmd := tm.submitForm()
	require.NotNil(t, cmd)

	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
	assert.Empty(t, allSessions(t, f.db))
}

func TestStoreErrorIsShown(t *testing.T) {
	f := newFixture(t)

	tm := f.timer

	require.NoError(t, f.db.Close())

	cmd := tm.startCountdown(time.Minute, nil)
	assert.Nil(t, cmd)
	assert.True(t, tm.idle())
	assert.True(t, tm.flashErr)
	assert.True(t, strings.HasPrefix(tm.flash, "start session"))
}

func TestZeroDurationRefused(t *testing.T) {
	f := newFixture(t)

	assert.Nil(t, f.timer.startCountdown(0, nil))
	assert.True(t, f.timer.idle())
	assert.Empty(t, allSessions(t, f.db))
}

func TestSessionCmdErrorShown(t *testing.T) {
	f := newFixture(t)

	_, _ = f.timer.Update(cmdDoneMsg{err: errSessionCmd})

	assert.True(t, f.timer.flashErr)
	assert.Contains(t, f.timer.flash, "session command")
}

func TestRunSessionCmd(t *testing.T) {
	assert.NoError(t, runSessionCmd(""))
	assert.ErrorIs(t, runSessionCmd(`echo "unterminated`), errSessionCmd)
}

func TestReportStatus(t *testing.T) {
	dir := t.TempDir()

	prefsPath := filepath.Join(dir, "prefs.db")
	statusPath := filepath.Join(dir, "status.json")
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	var buf bytes.Buffer

	// not running
	require.NoError(t, ReportStatus(&buf, prefsPath, statusPath, now))
	assert.Empty(t, buf.String())

	p, err := prefs.Open(prefsPath)
	require.NoError(t, err)

	defer p.Close()

	// running but idle
	require.NoError(t, ReportStatus(&buf, prefsPath, statusPath, now))
	assert.Empty(t, buf.String())

	tm := &Timer{
		statusFile: statusPath,
		now:        func() time.Time { return now },
		Current: &models.Session{
			Mode:     models.Work,
			Task:     "write report",
			Duration: 25 * time.Minute,
		},
		clock: btimer.NewWithInterval(12*time.Minute+5*time.Second, time.Second),
	}

	require.NoError(t, tm.writeStatusFile())

	require.NoError(t, ReportStatus(&buf, prefsPath, statusPath, now))
	assert.Equal(t, "[Work] write report: 00:12:05\n", buf.String())

	buf.Reset()

	require.NoError(t, ReportStatus(&buf, prefsPath, statusPath, now.Add(time.Hour)))
	assert.Empty(t, buf.String())
}

func TestCompletionCommands(t *testing.T) {
	sess := &models.Session{Task: "write report", Mode: models.Work}

	cases := []struct {
		name    string
		timer   config.TimerConfig
		notify  bool
		session bool
	}{
		{name: "all off"},
		{name: "notification", timer: config.TimerConfig{Notify: true}, notify: true},
		{name: "sound", timer: config.TimerConfig{Sound: true}, notify: true},
		{name: "session command", timer: config.TimerConfig{Cmd: "true"}, session: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tm := newFixture(t).timer
			tm.Opts.Timer = tc.timer

			assert.Equal(t, tc.notify, tm.notifyCmd(sess) != nil)
			assert.Equal(t, tc.session, tm.sessionCmd() != nil)
		})
	}
}

func TestCountdownLogShowsReadableDurations(t *testing.T) {
	var buf bytes.Buffer

	l, err := logger.New(&buf, "info")
	require.NoError(t, err)

	orig := log.Logger
	log.Logger = l

	t.Cleanup(func() {
		log.Logger = orig
	})

	tm := newFixture(t, "write report").timer

	require.NotNil(t, tm.startCountdown(90*time.Second, nil))
	tm.stopCountdown()

	out := buf.String()
	assert.Contains(t, out, "countdown started")
	assert.Contains(t, out, "duration=1m30s")
	assert.Contains(t, out, "remaining=1m30s")
}
