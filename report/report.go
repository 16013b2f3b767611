// Package report prints user-facing outcomes of commands
package report

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/tanss/internal/osutil"
)

func SessionSaved(key string) {
	pterm.Success.Printfln("session %s saved", key)
}

func SessionDeleted(key string) {
	pterm.Info.Printfln("session %s deleted", key)
}

func LookupSaved(kind string, id int, name string) {
	pterm.Success.Printfln("%s #%d -> %s", kind, id, name)
}

func Warn(msg string) {
	pterm.Warning.Println(msg)
}

func Error(err error) {
	pterm.Error.Println(err)
}

func Fatal(err error) tea.Cmd {
	pterm.Error.Println(err)
	return tea.Quit
}

func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(osutil.ExitError.Int())
}
