// Package app defines the Arranger command-line interface
package app

import (
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/arranger/internal/config"
)

func taskCommand() *cli.Command {
	return &cli.Command{
		Name:    "task",
		Aliases: []string{"t"},
		Usage:   "Manage the task list",
		Subcommands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a pending task",
				ArgsUsage: "<name>",
				Action:    logged(false, withDB(addTaskAction)),
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List pending tasks",
				Flags:   []cli.Flag{allFlag, sortFlag, jsonFlag},
				Action:  readOnly(withDB(listTasksAction)),
			},
			{
				Name:      "done",
				Usage:     "Mark one or more tasks as finished",
				ArgsUsage: "<id>...",
				Action:    logged(false, withDB(doneTaskAction)),
			},
			{
				Name:      "edit",
				Usage:     "Rename a task",
				ArgsUsage: "<id> <name>",
				Action:    logged(false, withDB(editTaskAction)),
			},
			{
				Name:      "delete",
				Aliases:   []string{"rm"},
				Usage:     "Delete one or more tasks",
				ArgsUsage: "<id>...",
				Action:    logged(false, withDB(deleteTaskAction)),
			},
		},
	}
}

func sessionCommand() *cli.Command {
	return &cli.Command{
		Name:    "session",
		Aliases: []string{"s"},
		Usage:   "Manage recorded sessions",
		Subcommands: []*cli.Command{
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List the sessions started within a time period. Defaults to 7 days",
				Flags:   append(filterFlags(), jsonFlag),
				Action:  readOnly(withDB(listSessionsAction)),
			},
			{
				Name:    "delete",
				Aliases: []string{"rm"},
				Usage:   "Delete the sessions started within a time period",
				Flags:   append(filterFlags(), yesFlag),
				Action:  logged(false, withDB(deleteSessionsAction)),
			},
		},
	}
}

// Get retrieves the arranger app instance.
func Get() *cli.App {
	arrangerApp := &cli.App{
		Name: "arranger",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Arranger is a cross-platform productivity timer for the terminal. Keep a
		list of tasks, count down work and relax sessions against them, and
		review where your time went.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			taskCommand(),
			sessionCommand(),
			{
				Name: "stats",
				Usage: `
				Track your progress with detailed statistics reporting. Defaults to a 
				reporting period of 7 days`,
				Flags:  append(filterFlags(), jsonFlag),
				Action: readOnly(withDB(statsAction)),
			},
			{
				Name:   "logs",
				Usage:  "Show the log of a previous run",
				Flags:  []cli.Flag{listLogsFlag, logFileFlag},
				Action: readOnly(logsAction),
			},
			{
				Name:   "status",
				Usage:  "Print the status of the countdown in another terminal",
				Action: readOnly(statusAction),
			},
			{
				Name:   "settings",
				Usage:  "Change the default countdown duration and mode",
				Action: locked(false, settingsAction),
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: readOnly(editConfigAction),
			},
		},
		Flags: []cli.Flag{
			durationFlag,
			relaxFlag,
			workFlag,
			disableNotificationFlag,
			muteFlag,
			sessionCmdFlag,
			debugFlag,
			noColorFlag,
		},
		Action: locked(true, defaultAction),
		Before: beforeAction,
	}

	return arrangerApp
}
