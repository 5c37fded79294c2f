package ui

import (
	"github.com/pterm/pterm"
)

var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Blue(a any) string {
	if DarkTheme {
		return pterm.LightBlue(a)
	}

	return pterm.Blue(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

// Level colours a log level abbreviation.
func Level(lvl string) string {
	switch lvl {
	case "DBG", "TRC":
		return Cyan(lvl)
	case "WRN":
		return Yellow(lvl)
	case "ERR", "FTL", "PNC":
		return Red(lvl)
	case "INF":
		return Green(lvl)
	default:
		return lvl
	}
}

// Mode colours a timer mode label.
func Mode(label string, work bool) string {
	if work {
		return Green(label)
	}

	return Blue(label)
}
