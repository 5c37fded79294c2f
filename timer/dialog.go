package timer

import (
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"

	"github.com/ayoisaiah/arranger/internal/models"
	"github.com/ayoisaiah/arranger/internal/timeutil"
)

// dialogValues holds the values bound to the active form.
type dialogValues struct {
	hours     int
	minutes   int
	seconds   int
	taskID    int64
	taskName  string
	confirmed bool
}

func (d *dialogValues) duration() time.Duration {
	return timeutil.JoinHMS(d.hours, d.minutes, d.seconds)
}

// sixty is the range offered by each of the hour, minute and second fields.
func sixty() []huh.Option[int] {
	opts := make([]huh.Option[int], 60)
	for i := range opts {
		opts[i] = huh.NewOption(strconv.Itoa(i), i)
	}

	return opts
}

// durationFields returns inline selects for hours, minutes and seconds bound
// to d. The total is validated on the last field.
func durationFields(d *dialogValues) []huh.Field {
	return []huh.Field{
		huh.NewSelect[int]().
			Title("Hours").
			Inline(true).
			Options(sixty()...).
			Value(&d.hours),
		huh.NewSelect[int]().
			Title("Minutes").
			Inline(true).
			Options(sixty()...).
			Value(&d.minutes),
		huh.NewSelect[int]().
			Title("Seconds").
			Inline(true).
			Options(sixty()...).
			Value(&d.seconds).
			Validate(func(s int) error {
				if timeutil.JoinHMS(d.hours, d.minutes, s) <= 0 {
					return errZeroDuration
				}

				return nil
			}),
	}
}

func newDialogValues(d time.Duration) *dialogValues {
	h, m, s := timeutil.SplitHMS(d)

	return &dialogValues{hours: h, minutes: m, seconds: s}
}

// openCountdownDialog shows the duration and task selection form.
func (t *Timer) openCountdownDialog() tea.Cmd {
	t.dialog = newDialogValues(t.defaultDuration())

	fields := durationFields(t.dialog)

	if t.mode == models.Work {
		opts := []huh.Option[int64]{huh.NewOption(models.NoTask, int64(0))}
		for _, task := range t.tasks {
			opts = append(opts, huh.NewOption(task.Name, task.ID))
		}

		if sel := t.selected(); sel != nil {
			t.dialog.taskID = sel.ID
		}

		fields = append(fields, huh.NewSelect[int64]().
			Title("Task").
			Options(opts...).
			Value(&t.dialog.taskID),
		)
	}

	return t.openForm(countdownView, huh.NewGroup(fields...))
}

func (t *Timer) openNewTaskDialog() tea.Cmd {
	t.dialog = &dialogValues{}

	return t.openForm(newTaskView, huh.NewGroup(
		huh.NewInput().
			Title("New task").
			Placeholder("What are you working on?").
			Value(&t.dialog.taskName).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errEmptyTask
				}

				return nil
			}),
	))
}

func (t *Timer) openConfirm(v view, title, affirm string) tea.Cmd {
	t.dialog = &dialogValues{}

	return t.openForm(v, huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative(affirm).
			Negative("Cancel").
			Value(&t.dialog.confirmed),
	))
}

func (t *Timer) openForm(v view, group *huh.Group) tea.Cmd {
	t.form = huh.NewForm(group).WithShowHelp(true)
	t.view = v

	return t.form.Init()
}

func (t *Timer) closeForm() {
	t.form = nil
	t.dialog = nil
	t.view = mainView
}

// submitForm applies the values of a completed form.
func (t *Timer) submitForm() tea.Cmd {
	v, d := t.view, t.dialog

	t.closeForm()

	switch v {
	case countdownView:
		dur := d.duration()

		if err := t.prefs.SetDuration(dur); err != nil {
			log.Debug().Err(err).Msg("unable to save duration")
		}

		return t.startCountdown(dur, t.taskByID(d.taskID))

	case newTaskView:
		task, err := t.db.AddTask(strings.TrimSpace(d.taskName))
		if err != nil {
			t.showError("add task", err)
			return nil
		}

		log.Info().Int64("id", task.ID).Str("task", task.Name).Msg("task added")

		t.loadTasks()
		t.cursor = max(len(t.tasks)-1, 0)
		t.updateKeys()

	case confirmStopView:
		if d.confirmed {
			t.stopCountdown()
		}

	case confirmQuitView:
		if d.confirmed {
			t.stopCountdown()
			return t.quit()
		}
	}

	return nil
}

func (t *Timer) taskByID(id int64) *models.Task {
	for _, task := range t.tasks {
		if task.ID == id {
			return task
		}
	}

	return nil
}

// Settings runs a standalone form for the saved countdown duration and
// window mode.
func Settings(p Prefs, fallback time.Duration) error {
	d := newDialogValues(p.Duration(fallback))
	mode := p.Mode()

	fields := append(durationFields(d),
		huh.NewSelect[models.Mode]().
			Title("Mode").
			Options(
				huh.NewOption(models.Work.Label(), models.Work),
				huh.NewOption(models.Relax.Label(), models.Relax),
			).
			Value(&mode),
	)

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return err
	}

	if err := p.SetDuration(d.duration()); err != nil {
		return err
	}

	return p.SetMode(mode)
}
