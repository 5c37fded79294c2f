package app

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/arranger/internal/config"
	"github.com/ayoisaiah/arranger/internal/models"
	"github.com/ayoisaiah/arranger/internal/timeutil"
	"github.com/ayoisaiah/arranger/internal/ui"
	"github.com/ayoisaiah/arranger/report"
	"github.com/ayoisaiah/arranger/store"
)

const noSessionsMsg = "No sessions found for the specified time range"

func getSessions(ctx *cli.Context, db store.DB) ([]*models.Session, error) {
	f, err := parseFilter(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	return db.GetSessions(f.start, f.end, f.task)
}

// printSessionsTable prints a session table to the command-line.
func printSessionsTable(w io.Writer, sessions []*models.Session) {
	tableBody := make([][]string, len(sessions))

	for i := range sessions {
		sess := sessions[i]

		statusText := ui.Green("completed")
		endDate := sess.EndTime.Format("Jan 02, 2006 03:04 PM")

		if !sess.Completed() {
			statusText = ui.Red("incomplete")
			endDate = ""
		}

		row := []string{
			fmt.Sprintf("%d", i+1),
			sess.StartTime.Format("Jan 02, 2006 03:04 PM"),
			endDate,
			ui.Mode(sess.Mode.Label(), sess.Mode == models.Work),
			sess.Task,
			timeutil.FormatHMS(sess.Duration),
			statusText,
		}

		tableBody[i] = row
	}

	tableBody = append([][]string{
		{"#", "START DATE", "END DATE", "MODE", "TASK", "DURATION", "STATUS"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

func listSessionsAction(ctx *cli.Context, _ *config.Config, db store.DB) error {
	sessions, err := getSessions(ctx, db)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		if sessions == nil {
			sessions = []*models.Session{}
		}

		b, err := json.MarshalIndent(sessions, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(config.Stdout, string(b))

		return nil
	}

	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	printSessionsTable(config.Stdout, sessions)

	return nil
}

// delSessions deletes all the specified sessions. It requests for confirmation
// before proceeding with the operation unless skipConfirm is set.
func delSessions(
	db store.DB,
	sessions []*models.Session,
	skipConfirm bool,
) error {
	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	t := make([]time.Time, len(sessions))

	for i := range sessions {
		t[i] = sessions[i].StartTime
	}

	if !skipConfirm {
		printSessionsTable(config.Stdout, sessions)

		warning := pterm.Warning.Sprint(
			"The above sessions will be deleted permanently. Press ENTER to proceed",
		)

		fmt.Fprint(config.Stdout, warning)

		reader := bufio.NewReader(config.Stdin)

		_, _ = reader.ReadString('\n')
	}

	if err := db.DeleteSessions(t); err != nil {
		return err
	}

	log.Info().Int("count", len(t)).Msg("sessions deleted")

	report.SessionsDeleted(len(t))

	return nil
}

func deleteSessionsAction(ctx *cli.Context, _ *config.Config, db store.DB) error {
	sessions, err := getSessions(ctx, db)
	if err != nil {
		return err
	}

	return delSessions(db, sessions, ctx.Bool("yes"))
}
