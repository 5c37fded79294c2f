// Package stats reports Arranger session statistics
package stats

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/arranger/internal/models"
	"github.com/ayoisaiah/arranger/internal/timeutil"
	"github.com/ayoisaiah/arranger/internal/ui"
	"github.com/ayoisaiah/arranger/store"
)

const noSessionsMsg = "No sessions found for the specified time range"

// Options controls the reporting period and output.
type Options struct {
	Stdout    io.Writer
	StartTime time.Time
	EndTime   time.Time
	Task      string
	JSON      bool
}

// TaskTotal is the work time logged against one task.
type TaskTotal struct {
	Name string
	Time time.Duration
}

// DayTotal is the work time logged on one day.
type DayTotal struct {
	Day  time.Time
	Time time.Duration
}

// Summary holds the totals for a reporting period.
type Summary struct {
	StartTime  time.Time
	EndTime    time.Time
	Tasks      []TaskTotal
	Days       []DayTotal
	WorkTime   time.Duration
	RelaxTime  time.Duration
	Completed  int
	Incomplete int
}

// Compute totals the sessions that started between start and end. Time is
// only counted for completed sessions. A zero start begins the period on the
// day of the first session.
func Compute(sessions []*models.Session, start, end time.Time) Summary {
	if start.IsZero() && len(sessions) > 0 {
		start = timeutil.RoundToStart(sessions[0].StartTime)
	}

	s := Summary{
		StartTime: start,
		EndTime:   end,
	}

	tasks := make(map[string]time.Duration)
	days := make(map[int]time.Duration)

	for _, sess := range sessions {
		if !sess.Completed() {
			s.Incomplete++
			continue
		}

		s.Completed++

		elapsed := sess.Elapsed()

		if sess.Mode == models.Relax {
			s.RelaxTime += elapsed
			continue
		}

		s.WorkTime += elapsed
		tasks[sess.Task] += elapsed
		days[timeutil.DayFormat(sess.StartTime)] += elapsed
	}

	for name, d := range tasks {
		s.Tasks = append(s.Tasks, TaskTotal{Name: name, Time: d})
	}

	slices.SortFunc(s.Tasks, func(a, b TaskTotal) int {
		if c := cmp.Compare(b.Time, a.Time); c != 0 {
			return c
		}

		if natural.Less(a.Name, b.Name) {
			return -1
		}

		return 1
	})

	if start.IsZero() {
		return s
	}

	// every day of the period is listed, including idle ones
	for day := timeutil.RoundToStart(start); !day.After(end); day = day.AddDate(0, 0, 1) {
		s.Days = append(s.Days, DayTotal{
			Day:  day,
			Time: days[timeutil.DayFormat(day)],
		})
	}

	return s
}

func formatDuration(d time.Duration) string {
	h, m := timeutil.MinsToHoursAndMins(timeutil.Round(d.Minutes()))

	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}

	return fmt.Sprintf("%dh %02dm", h, m)
}

func getSummary(s *Summary) string {
	header := fmt.Sprintf("%s\n", ui.Blue("Summary"))

	return header +
		fmt.Sprintf("Work time: %s\n", ui.Green(formatDuration(s.WorkTime))) +
		fmt.Sprintf("Relax time: %s\n", ui.Green(formatDuration(s.RelaxTime))) +
		fmt.Sprintln("Sessions completed:", ui.Green(s.Completed)) +
		fmt.Sprintln("Sessions incomplete:", ui.Green(s.Incomplete))
}

func getTasks(s *Summary) [][]string {
	table := [][]string{{"TASK", "TIME"}}

	for _, t := range s.Tasks {
		table = append(table, []string{t.Name, formatDuration(t.Time)})
	}

	return table
}

func getDays(s *Summary) pterm.Bars {
	bars := make(pterm.Bars, 0, len(s.Days))

	for _, d := range s.Days {
		bars = append(bars, pterm.Bar{
			Label: d.Day.Format("Jan 02, Mon"),
			Value: timeutil.Round(d.Time.Minutes()),
		})
	}

	return bars
}

type jsonTotal struct {
	Name    string `json:"name"`
	Minutes int    `json:"minutes"`
}

type jsonSummary struct {
	StartTime    time.Time   `json:"start_time"`
	EndTime      time.Time   `json:"end_time"`
	Tasks        []jsonTotal `json:"tasks"`
	Days         []jsonTotal `json:"days"`
	WorkMinutes  int         `json:"work_minutes"`
	RelaxMinutes int         `json:"relax_minutes"`
	Completed    int         `json:"completed"`
	Incomplete   int         `json:"incomplete"`
}

// MarshalJSON reports durations in whole minutes.
func (s Summary) MarshalJSON() ([]byte, error) {
	out := jsonSummary{
		StartTime:    s.StartTime,
		EndTime:      s.EndTime,
		Tasks:        []jsonTotal{},
		Days:         []jsonTotal{},
		WorkMinutes:  timeutil.Round(s.WorkTime.Minutes()),
		RelaxMinutes: timeutil.Round(s.RelaxTime.Minutes()),
		Completed:    s.Completed,
		Incomplete:   s.Incomplete,
	}

	for _, t := range s.Tasks {
		out.Tasks = append(out.Tasks, jsonTotal{
			Name:    t.Name,
			Minutes: timeutil.Round(t.Time.Minutes()),
		})
	}

	for _, d := range s.Days {
		out.Days = append(out.Days, jsonTotal{
			Name:    d.Day.Format(time.DateOnly),
			Minutes: timeutil.Round(d.Time.Minutes()),
		})
	}

	return json.Marshal(out)
}

// Print writes s to w as text or, with asJSON, as indented JSON.
func Print(w io.Writer, s *Summary, asJSON bool) error {
	if asJSON {
		b, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(w, string(b))

		return err
	}

	if s.Completed+s.Incomplete == 0 {
		_, err := fmt.Fprintln(w, noSessionsMsg)
		return err
	}

	reportingStart := s.StartTime.Format("January 02, 2006")
	reportingEnd := s.EndTime.Format("January 02, 2006")
	timePeriod := "Reporting period: " + reportingStart + " - " + reportingEnd

	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintln(timePeriod)

	fmt.Fprint(w, header)
	fmt.Fprintln(w, strings.TrimSpace(getSummary(s)))

	if len(s.Tasks) > 0 {
		fmt.Fprintf(w, "\n%s\n", ui.Blue("Tasks"))
		ui.PrintTable(getTasks(s), w)
	}

	if len(s.Days) > 1 {
		fmt.Fprintf(w, "\n%s\n", ui.Blue("Daily breakdown (minutes)"))
		ui.PrintBars(getDays(s), w)
	}

	return nil
}

// Show loads the sessions for the reporting period and prints their
// statistics.
func Show(db store.DB, opts *Options) error {
	sessions, err := db.GetSessions(opts.StartTime, opts.EndTime, opts.Task)
	if err != nil {
		return err
	}

	s := Compute(sessions, opts.StartTime, opts.EndTime)

	return Print(opts.Stdout, &s, opts.JSON)
}
