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

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Percent colours a remaining-lifetime percentage: red at or below warn,
// yellow up to twice warn, green above.
func Percent(p, warn int) string {
	s := pterm.Sprintf("%d%%", p)

	switch {
	case p <= warn:
		return Red(s)
	case p <= warn*2:
		return Yellow(s)
	default:
		return Green(s)
	}
}

// Bool renders a validity flag.
func Bool(ok bool) string {
	if ok {
		return Green("yes")
	}

	return Red("no")
}
