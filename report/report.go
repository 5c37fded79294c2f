// Package report prints short outcome messages for CLI commands
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/arranger/internal/osutil"
)

func TaskAdded(id int64, name string) {
	pterm.Success.Printfln("task #%d added: %s", id, name)
}

func TaskUpdated(id int64, action string) {
	pterm.Success.Printfln("task #%d %s", id, action)
}

func SessionsDeleted(n int) {
	pterm.Info.Printfln("%d session(s) deleted", n)
}

func Nothing(what string) {
	pterm.Info.Printfln("no %s found", what)
}

func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(int(osutil.ExitError))
}
