package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/arranger/app"
	"github.com/ayoisaiah/arranger/internal/osutil"
	"github.com/ayoisaiah/arranger/internal/pathutil"
)

func run(args []string) error {
	if err := pathutil.Initialize(); err != nil {
		return err
	}

	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(int(osutil.ExitError))
	}
}
