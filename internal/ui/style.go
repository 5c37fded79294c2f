package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Style holds the lipgloss styles used by the main window.
type Style struct {
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Work      lipgloss.Style
	Relax     lipgloss.Style
	Selected  lipgloss.Style
	Task      lipgloss.Style
	Disabled  lipgloss.Style
	Flash     lipgloss.Style
	Error     lipgloss.Style
}

// NewStyle returns the window styles for a dark or light terminal.
func NewStyle(dark bool) Style {
	accent, text, dim := lipgloss.Color("205"), lipgloss.Color("255"), lipgloss.Color("245")
	work, relax, danger := lipgloss.Color("42"), lipgloss.Color("39"), lipgloss.Color("196")

	if !dark {
		accent, text, dim = lipgloss.Color("162"), lipgloss.Color("235"), lipgloss.Color("240")
		work, relax, danger = lipgloss.Color("28"), lipgloss.Color("25"), lipgloss.Color("124")
	}

	return Style{
		Base:      lipgloss.NewStyle().Padding(1, 2),
		Main:      lipgloss.NewStyle().Foreground(text).Bold(true),
		Secondary: lipgloss.NewStyle().Foreground(accent),
		Hint:      lipgloss.NewStyle().Foreground(dim).PaddingLeft(1),
		Work: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(work).
			Padding(0, 1).
			MarginRight(1).
			SetString("Work"),
		Relax: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(relax).
			Padding(0, 1).
			MarginRight(1).
			SetString("Relax"),
		Selected: lipgloss.NewStyle().Foreground(accent).Bold(true),
		Task:     lipgloss.NewStyle().Foreground(text),
		Disabled: lipgloss.NewStyle().Foreground(dim).Faint(true),
		Flash:    lipgloss.NewStyle().Foreground(accent).Italic(true),
		Error:    lipgloss.NewStyle().Foreground(danger),
	}
}
