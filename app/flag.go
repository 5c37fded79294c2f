package app

import (
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/arranger/internal/timeutil"
)

var (
	durationFlag = &cli.StringFlag{
		Name:    "duration",
		Aliases: []string{"d"},
		Usage:   "Initial countdown duration (e.g. 25m, 1h30m, or minutes as a plain number)",
	}

	relaxFlag = &cli.BoolFlag{
		Name:    "relax",
		Aliases: []string{"r"},
		Usage:   "Open the main window in relax mode",
	}

	workFlag = &cli.BoolFlag{
		Name:    "work",
		Aliases: []string{"w"},
		Usage:   "Open the main window in work mode",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:  "disable-notification",
		Usage: "Disable the system notification that appears after a countdown is completed",
	}

	muteFlag = &cli.BoolFlag{
		Name:  "mute",
		Usage: "Do not play the completion chime",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each completed countdown",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug messages to the log file",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	allFlag = &cli.BoolFlag{
		Name:    "all",
		Aliases: []string{"a"},
		Usage:   "Include finished tasks",
	}

	sortFlag = &cli.StringFlag{
		Name:  "sort",
		Usage: "Sort tasks by 'id', 'name' or 'created'",
		Value: "id",
	}

	sinceFlag = &cli.StringFlag{
		Name:    "since",
		Aliases: []string{"s"},
		Usage:   "Start of the reporting period (e.g. '2 weeks ago', 'last monday', '2026-10-01')",
	}

	untilFlag = &cli.StringFlag{
		Name:    "until",
		Aliases: []string{"u"},
		Usage:   "End of the reporting period (defaults to the end of today)",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Named reporting period, ignored when --since is set. One of: " + periods(),
		Value:   string(timeutil.Period7Days),
	}

	taskFilterFlag = &cli.StringFlag{
		Name:    "task",
		Aliases: []string{"t"},
		Usage:   "Only include sessions recorded against this task name",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Do not ask for confirmation",
	}

	listLogsFlag = &cli.BoolFlag{
		Name:    "list",
		Aliases: []string{"l"},
		Usage:   "List the available log files, newest first",
	}

	logFileFlag = &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "Show this log file instead of the newest one",
	}
)

func periods() string {
	var s string

	for i, p := range timeutil.PeriodCollection {
		if i > 0 {
			s += ", "
		}

		s += string(p)
	}

	return s
}

// filterFlags are shared by the commands that select sessions.
func filterFlags() []cli.Flag {
	return []cli.Flag{sinceFlag, untilFlag, periodFlag, taskFilterFlag}
}
