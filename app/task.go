package app

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/maruel/natural"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/arranger/internal/config"
	"github.com/ayoisaiah/arranger/internal/models"
	"github.com/ayoisaiah/arranger/internal/ui"
	"github.com/ayoisaiah/arranger/report"
	"github.com/ayoisaiah/arranger/store"
)

func parseIDs(args []string) ([]int64, error) {
	if len(args) == 0 {
		return nil, errMissingID
	}

	ids := make([]int64, len(args))

	for i, arg := range args {
		id, err := strconv.ParseInt(strings.TrimPrefix(arg, "#"), 10, 64)
		if err != nil || id < 1 {
			return nil, errInvalidID.Fmt(arg)
		}

		ids[i] = id
	}

	return ids, nil
}

func addTaskAction(ctx *cli.Context, _ *config.Config, db store.DB) error {
	name := strings.TrimSpace(strings.Join(ctx.Args().Slice(), " "))
	if name == "" {
		return errNoTaskName
	}

	task, err := db.AddTask(name)
	if err != nil {
		return err
	}

	log.Info().Int64("id", task.ID).Str("task", task.Name).Msg("task added")

	report.TaskAdded(task.ID, task.Name)

	return nil
}

func sortTasks(tasks []*models.Task, by string) error {
	switch by {
	case "", "id":
		slices.SortFunc(tasks, func(a, b *models.Task) int {
			return cmp.Compare(a.ID, b.ID)
		})
	case "name":
		slices.SortStableFunc(tasks, func(a, b *models.Task) int {
			switch {
			case natural.Less(a.Name, b.Name):
				return -1
			case natural.Less(b.Name, a.Name):
				return 1
			default:
				return 0
			}
		})
	case "created":
		slices.SortStableFunc(tasks, func(a, b *models.Task) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})
	default:
		return errInvalidSort.Fmt(by)
	}

	return nil
}

// printTasksTable prints a task table to the command-line.
func printTasksTable(tasks []*models.Task) {
	tableBody := make([][]string, len(tasks))

	for i, task := range tasks {
		statusText := ui.Cyan("pending")
		if task.Finished {
			statusText = ui.Green("finished")
		}

		tableBody[i] = []string{
			fmt.Sprintf("%d", task.ID),
			task.Name,
			task.CreatedAt.Format("Jan 02, 2006 03:04 PM"),
			statusText,
		}
	}

	tableBody = append([][]string{
		{"ID", "TASK", "CREATED", "STATUS"},
	}, tableBody...)

	ui.PrintTable(tableBody, config.Stdout)
}

func listTasksAction(ctx *cli.Context, _ *config.Config, db store.DB) error {
	tasks, err := db.GetTasks(ctx.Bool("all"))
	if err != nil {
		return err
	}

	err = sortTasks(tasks, ctx.String("sort"))
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		if tasks == nil {
			tasks = []*models.Task{}
		}

		b, err := json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(config.Stdout, string(b))

		return nil
	}

	if len(tasks) == 0 {
		report.Nothing("tasks")
		return nil
	}

	printTasksTable(tasks)

	return nil
}

// eachTask applies fn to every task ID given as an argument.
func eachTask(
	ctx *cli.Context,
	action string,
	fn func(id int64) error,
) error {
	ids, err := parseIDs(ctx.Args().Slice())
	if err != nil {
		return err
	}

	for _, id := range ids {
		if err := fn(id); err != nil {
			return err
		}

		log.Info().Int64("id", id).Msg("task " + action)

		report.TaskUpdated(id, action)
	}

	return nil
}

func deleteTaskAction(ctx *cli.Context, _ *config.Config, db store.DB) error {
	return eachTask(ctx, "deleted", db.DeleteTask)
}

func doneTaskAction(ctx *cli.Context, _ *config.Config, db store.DB) error {
	return eachTask(ctx, "finished", db.CompleteTask)
}

func editTaskAction(ctx *cli.Context, _ *config.Config, db store.DB) error {
	args := ctx.Args().Slice()

	ids, err := parseIDs(args[:min(len(args), 1)])
	if err != nil {
		return err
	}

	name := strings.TrimSpace(strings.Join(args[1:], " "))
	if name == "" {
		return errNoTaskName
	}

	if err := db.RenameTask(ids[0], name); err != nil {
		return err
	}

	log.Info().Int64("id", ids[0]).Str("task", name).Msg("task renamed")

	report.TaskUpdated(ids[0], "renamed to "+name)

	return nil
}
