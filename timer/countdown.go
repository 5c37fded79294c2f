package timer

import (
	"time"

	btimer "github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/ayoisaiah/arranger/internal/models"
)

// startCountdown records a new session and starts the clock.
func (t *Timer) startCountdown(d time.Duration, task *models.Task) tea.Cmd {
	if d <= 0 {
		t.showError("start countdown", errZeroDuration)
		return nil
	}

	if t.mode == models.Relax {
		task = nil
	}

	now := t.now()

	sess := &models.Session{
		StartTime: now,
		EndTime:   now,
		Task:      models.TaskName(t.mode, task),
		Mode:      t.mode,
		Duration:  d,
	}

	if err := t.db.StartSession(sess); err != nil {
		t.showError("start session", err)
		return nil
	}

	t.Current = sess
	t.task = task
	t.clock = btimer.NewWithInterval(d, time.Second)
	t.setFlash("")
	t.updateKeys()

	if err := t.writeStatusFile(); err != nil {
		log.Debug().Err(err).Msg("status file not written")
	}

	log.Info().
		Str("mode", string(sess.Mode)).
		Str("task", sess.Task).
		Stringer("duration", d).
		Msg("countdown started")

	return t.clock.Init()
}

// stopCountdown discards the running session and resets the clock.
func (t *Timer) stopCountdown() {
	if t.idle() {
		return
	}

	if err := t.db.DeleteSession(t.Current.StartTime); err != nil {
		t.showError("delete session", err)
	}

	log.Info().
		Str("task", t.Current.Task).
		Stringer("remaining", t.clock.Timeout).
		Msg("countdown stopped")

	t.reset()
	t.setFlash("Countdown stopped")
}

// completeCountdown closes the running session once the clock reaches zero.
func (t *Timer) completeCountdown() tea.Cmd {
	sess := t.Current
	sess.EndTime = t.now()

	if err := t.db.CompleteSession(sess.StartTime, sess.EndTime); err != nil {
		t.showError("complete session", err)
	}

	if sess.Mode == models.Work && t.task != nil {
		if err := t.db.CompleteTask(t.task.ID); err != nil {
			t.showError("complete task", err)
		}
	}

	log.Info().
		Str("mode", string(sess.Mode)).
		Str("task", sess.Task).
		Stringer("elapsed", sess.Elapsed()).
		Msg("countdown completed")

	t.reset()
	t.loadTasks()
	t.updateKeys()

	if !t.flashErr {
		t.setFlash(sess.Mode.Label() + " session completed")
	}

	return tea.Batch(
		t.notifyCmd(sess),
		t.sessionCmd(),
	)
}

// reset returns the window to idle with the clock at 00:00:00.
func (t *Timer) reset() {
	t.Current = nil
	t.task = nil
	t.clock = btimer.NewWithInterval(0, time.Second)

	t.removeStatusFile()
	t.updateKeys()
}

// remaining is the time left on the clock, or zero while idle.
func (t *Timer) remaining() time.Duration {
	if t.idle() || t.clock.Timeout < 0 {
		return 0
	}

	return t.clock.Timeout
}

// percent is the fraction of the countdown that has elapsed.
func (t *Timer) percent() float64 {
	if t.idle() || t.Current.Duration <= 0 {
		return 0
	}

	return 1 - float64(t.remaining())/float64(t.Current.Duration)
}
