package timer

import (
	"github.com/charmbracelet/bubbles/key"
)

type keymap struct {
	start      key.Binding
	stop       key.Binding
	newTask    key.Binding
	deleteTask key.Binding
	mode       key.Binding
	overlay    key.Binding
	up         key.Binding
	down       key.Binding
	quit       key.Binding
}

func newKeymap() *keymap {
	return &keymap{
		start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start"),
		),
		stop: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "stop"),
		),
		newTask: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new task"),
		),
		deleteTask: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete task"),
		),
		mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "work/relax"),
		),
		overlay: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "overlay"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap. Disabled bindings are left out by the
// help view.
func (k *keymap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.start,
		k.stop,
		k.newTask,
		k.deleteTask,
		k.mode,
		k.overlay,
		k.quit,
	}
}

func (k *keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down},
		k.ShortHelp(),
	}
}

// setIdle switches the bindings between the idle and timing layouts. Task
// controls are only available in work mode.
func (k *keymap) setIdle(idle, work, hasTasks bool) {
	k.start.SetEnabled(idle)
	k.stop.SetEnabled(!idle)
	k.mode.SetEnabled(idle)
	k.newTask.SetEnabled(idle && work)
	k.deleteTask.SetEnabled(idle && work && hasTasks)
	k.up.SetEnabled(idle && work && hasTasks)
	k.down.SetEnabled(idle && work && hasTasks)
}
