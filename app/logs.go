package app

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/arranger/internal/config"
	"github.com/ayoisaiah/arranger/internal/pathutil"
	"github.com/ayoisaiah/arranger/internal/ui"
	"github.com/ayoisaiah/arranger/logs"
	"github.com/ayoisaiah/arranger/report"
)

func printLogFiles(files []logs.File) {
	tableBody := make([][]string, len(files))

	for i, f := range files {
		tableBody[i] = []string{
			fmt.Sprintf("%d", i+1),
			f.Name,
			f.ModTime.Format("Jan 02, 2006 03:04:05 PM"),
			pterm.Sprintf("%.1f KB", float64(f.Size)/1024),
		}
	}

	tableBody = append([][]string{
		{"#", "FILE", "MODIFIED", "SIZE"},
	}, tableBody...)

	ui.PrintTable(tableBody, config.Stdout)
}

func printLogEntries(file logs.File, entries []logs.Entry) {
	fmt.Fprintln(config.Stdout, ui.Blue(file.Name))

	tableBody := make([][]string, len(entries))

	for i, e := range entries {
		tableBody[i] = []string{e.Time, ui.Level(e.Level), e.Message}
	}

	tableBody = append([][]string{
		{"TIME", "LEVEL", "MESSAGE"},
	}, tableBody...)

	ui.PrintTable(tableBody, config.Stdout)
}

// logsAction shows the newest log file, a chosen one, or the list of files.
func logsAction(ctx *cli.Context, _ *config.Config) error {
	dir := pathutil.LogDir()

	if ctx.Bool("list") {
		files, err := logs.List(dir)
		if err != nil {
			return err
		}

		if len(files) == 0 {
			report.Nothing("log files")
			return nil
		}

		printLogFiles(files)

		return nil
	}

	var (
		file logs.File
		err  error
	)

	if name := ctx.String("file"); name != "" {
		file, err = logs.Find(dir, name)
	} else {
		file, err = logs.Latest(dir)
	}

	if err != nil {
		return err
	}

	entries, err := logs.Read(file.Path)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		report.Nothing("log entries")
		return nil
	}

	printLogEntries(file, entries)

	return nil
}
