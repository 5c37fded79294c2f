package timer

import (
	"fmt"
	"strings"

	"github.com/ayoisaiah/arranger/internal/models"
	"github.com/ayoisaiah/arranger/internal/timeutil"
)

func (t *Timer) timeFormat() string {
	if t.Opts.Display.TwentyFourHour {
		return "15:04:05"
	}

	return "03:04:05 PM"
}

func (t *Timer) headerView() string {
	var s strings.Builder

	if t.mode == models.Work {
		s.WriteString(t.Style.Work.Render())
	} else {
		s.WriteString(t.Style.Relax.Render())
	}

	if t.idle() {
		s.WriteString(t.Style.Hint.Render("idle"))
		return s.String()
	}

	end := t.Current.StartTime.Add(t.Current.Duration)

	s.WriteString(t.Style.Secondary.Render(t.Current.Task))
	s.WriteString(t.Style.Hint.Render("until " + end.Format(t.timeFormat())))

	return s.String()
}

func (t *Timer) tasksView() string {
	var s strings.Builder

	if t.mode == models.Relax {
		return t.Style.Disabled.Render("Task list is disabled while relaxing")
	}

	if len(t.tasks) == 0 {
		return t.Style.Disabled.Render("No pending tasks. Press n to add one.")
	}

	active := t.idle()

	for i, task := range t.tasks {
		line := fmt.Sprintf("%3d  %s", task.ID, task.Name)

		switch {
		case !active && t.task != nil && task.ID == t.task.ID:
			s.WriteString(t.Style.Selected.Render("▶ " + line))
		case !active:
			s.WriteString(t.Style.Disabled.Render("  " + line))
		case i == t.cursor:
			s.WriteString(t.Style.Selected.Render("> " + line))
		default:
			s.WriteString(t.Style.Task.Render("  " + line))
		}

		s.WriteString("\n")
	}

	return strings.TrimSuffix(s.String(), "\n")
}

func (t *Timer) clockView() string {
	return t.Style.Main.Render(timeutil.FormatHMS(t.remaining()))
}

func (t *Timer) flashView() string {
	if t.flash == "" {
		return ""
	}

	if t.flashErr {
		return "\n\n" + t.Style.Error.Render(t.flash)
	}

	return "\n\n" + t.Style.Flash.Render(t.flash)
}

// overlayView is the compact one-line rendition of the window.
func (t *Timer) overlayView() string {
	label := t.mode.Label()
	if !t.idle() {
		label += " " + t.Current.Task
	}

	return fmt.Sprintf("[%s] %s", label, timeutil.FormatHMS(t.remaining()))
}

func (t *Timer) mainView() string {
	var s strings.Builder

	s.WriteString(t.headerView())
	s.WriteString("\n\n")
	s.WriteString(t.tasksView())
	s.WriteString("\n\n")
	s.WriteString(t.clockView())
	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(t.percent()))
	s.WriteString(t.flashView())
	s.WriteString("\n\n")
	s.WriteString(t.help.View(t.keys))

	return s.String()
}

// View implements tea.Model.
func (t *Timer) View() string {
	if t.form != nil {
		header := t.headerView() + "  " + t.clockView()
		return t.Style.Base.Render(header + "\n\n" + t.form.View())
	}

	if t.compact {
		return t.overlayView()
	}

	return t.Style.Base.Render(t.mainView())
}
