package timer

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	btimer "github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog/log"
)

// cmdDoneMsg reports the outcome of the post-session command.
type cmdDoneMsg struct {
	err error
}

// handleTimerTick processes timer tick events.
func (t *Timer) handleTimerTick(msg btimer.TickMsg) (tea.Model, tea.Cmd) {
	if t.idle() {
		return t, nil
	}

	var cmd tea.Cmd
	t.clock, cmd = t.clock.Update(msg)

	if err := t.writeStatusFile(); err != nil {
		log.Debug().Err(err).Msg("status file not written")
	}

	return t, cmd
}

func (t *Timer) handleTimeout(msg btimer.TimeoutMsg) (tea.Model, tea.Cmd) {
	if t.idle() || msg.ID != t.clock.ID() {
		return t, nil
	}

	return t, t.completeCountdown()
}

// handleFormMsg forwards msg to the active dialog and applies it once the
// dialog is done.
func (t *Timer) handleFormMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		t.closeForm()
		return t, nil
	}

	var cmds []tea.Cmd

	// the countdown keeps running behind the dialog
	switch msg := msg.(type) {
	case btimer.TickMsg:
		_, cmd := t.handleTimerTick(msg)
		cmds = append(cmds, cmd)
	case btimer.TimeoutMsg:
		_, cmd := t.handleTimeout(msg)
		cmds = append(cmds, cmd)
	}

	form, cmd := t.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.form = f
	}

	cmds = append(cmds, cmd)

	switch t.form.State {
	case huh.StateCompleted:
		cmds = append(cmds, t.submitForm())
	case huh.StateAborted:
		t.closeForm()
	}

	return t, tea.Batch(cmds...)
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, t.keys.start):
		return t, t.openCountdownDialog()

	case key.Matches(msg, t.keys.stop):
		return t, t.openConfirm(confirmStopView, "Stop the countdown?", "Stop")

	case key.Matches(msg, t.keys.newTask):
		return t, t.openNewTaskDialog()

	case key.Matches(msg, t.keys.deleteTask):
		t.deleteSelected()

	case key.Matches(msg, t.keys.mode):
		t.mode = t.mode.Toggle()
		t.updateKeys()

		if err := t.prefs.SetMode(t.mode); err != nil {
			log.Debug().Err(err).Msg("unable to save mode")
		}

	case key.Matches(msg, t.keys.overlay):
		t.compact = !t.compact

	case key.Matches(msg, t.keys.up):
		if t.cursor > 0 {
			t.cursor--
		}

	case key.Matches(msg, t.keys.down):
		if t.cursor < len(t.tasks)-1 {
			t.cursor++
		}

	case key.Matches(msg, t.keys.quit):
		if !t.idle() {
			return t, t.openConfirm(
				confirmQuitView,
				"A countdown is running. Stop it and quit?",
				"Quit",
			)
		}

		return t, t.quit()
	}

	return t, nil
}

func (t *Timer) deleteSelected() {
	task := t.selected()
	if task == nil {
		return
	}

	if err := t.db.DeleteTask(task.ID); err != nil {
		t.showError("delete task", err)
		return
	}

	log.Info().Int64("id", task.ID).Str("task", task.Name).Msg("task deleted")

	t.loadTasks()
	t.updateKeys()
	t.setFlash("Deleted " + task.Name)
}

func (t *Timer) quit() tea.Cmd {
	t.savePrefs()

	log.Info().Msg("main window closed")

	return tea.Quit
}

// Update implements tea.Model.
func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if t.form != nil {
		return t.handleFormMsg(msg)
	}

	switch msg := msg.(type) {
	case btimer.TickMsg:
		return t.handleTimerTick(msg)

	case btimer.StartStopMsg:
		var cmd tea.Cmd
		t.clock, cmd = t.clock.Update(msg)

		return t, cmd

	case btimer.TimeoutMsg:
		return t.handleTimeout(msg)

	case cmdDoneMsg:
		if msg.err != nil {
			t.showError("session command", msg.err)
		}

		return t, nil

	case tea.KeyMsg:
		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		t.help.Width = msg.Width
		t.progress.Width = min(msg.Width-padding*2-4, maxWidth)

		return t, nil

	// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	if e := log.Debug(); e.Enabled() {
		e.Msg("unhandled message: " + spew.Sdump(msg))
	}

	return t, nil
}
