package stats

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/arranger/internal/models"
	"github.com/ayoisaiah/arranger/store"
)

var day = time.Date(2026, 10, 16, 0, 0, 0, 0, time.Local)

func session(
	start time.Duration,
	elapsed time.Duration,
	task string,
	mode models.Mode,
) *models.Session {
	s := day.Add(start)

	return &models.Session{
		StartTime: s,
		EndTime:   s.Add(elapsed),
		Task:      task,
		Mode:      mode,
		Duration:  elapsed,
	}
}

func fixtures() []*models.Session {
	return []*models.Session{
		session(9*time.Hour, 25*time.Minute, "write", models.Work),
		session(10*time.Hour, 5*time.Minute, models.RelaxTask, models.Relax),
		session(11*time.Hour, 0, "write", models.Work),
		session(33*time.Hour, 50*time.Minute, "review", models.Work),
		session(35*time.Hour, 15*time.Minute, "write", models.Work),
		session(36*time.Hour, 20*time.Minute, models.NoTask, models.Work),
	}
}

func TestCompute(t *testing.T) {
	start := day
	end := day.AddDate(0, 0, 2).Add(-time.Second)

	got := Compute(fixtures(), start, end)

	want := Summary{
		StartTime:  start,
		EndTime:    end,
		Completed:  5,
		Incomplete: 1,
		WorkTime:   110 * time.Minute,
		RelaxTime:  5 * time.Minute,
		Tasks: []TaskTotal{
			{Name: "review", Time: 50 * time.Minute},
			{Name: "write", Time: 40 * time.Minute},
			{Name: models.NoTask, Time: 20 * time.Minute},
		},
		Days: []DayTotal{
			{Day: day, Time: 25 * time.Minute},
			{Day: day.AddDate(0, 0, 1), Time: 85 * time.Minute},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Compute() mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeAllTime(t *testing.T) {
	end := day.AddDate(0, 0, 3).Add(-time.Second)

	got := Compute(fixtures(), time.Time{}, end)

	assert.Equal(t, day, got.StartTime)
	assert.Len(t, got.Days, 3)
	assert.Zero(t, got.Days[2].Time)
}

func TestComputeEmpty(t *testing.T) {
	got := Compute(nil, time.Time{}, day)

	assert.Zero(t, got.Completed)
	assert.Empty(t, got.Days)
	assert.Empty(t, got.Tasks)
}

func TestPrintJSON(t *testing.T) {
	s := Compute(fixtures(), day, day.AddDate(0, 0, 2).Add(-time.Second))

	var buf bytes.Buffer

	require.NoError(t, Print(&buf, &s, true))

	var out jsonSummary

	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, 110, out.WorkMinutes)
	assert.Equal(t, 5, out.RelaxMinutes)
	assert.Equal(t, []jsonTotal{
		{Name: "review", Minutes: 50},
		{Name: "write", Minutes: 40},
		{Name: models.NoTask, Minutes: 20},
	}, out.Tasks)
	assert.Equal(t, []jsonTotal{
		{Name: "2026-10-16", Minutes: 25},
		{Name: "2026-10-17", Minutes: 85},
	}, out.Days)
}

func TestPrintText(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	s := Compute(fixtures(), day, day.AddDate(0, 0, 2).Add(-time.Second))

	var buf bytes.Buffer

	require.NoError(t, Print(&buf, &s, false))

	out := buf.String()

	assert.Contains(t, out, "Reporting period: October 16, 2026 - October 17, 2026")
	assert.Contains(t, out, "Work time: 1h 50m")
	assert.Contains(t, out, "Relax time: 5m")
	assert.Contains(t, out, "Sessions completed: 5")
	assert.Contains(t, out, "Sessions incomplete: 1")
	assert.Contains(t, out, "review")
	assert.Contains(t, out, "Oct 17, Sat")
}

func TestPrintNoSessions(t *testing.T) {
	s := Compute(nil, day, day)

	var buf bytes.Buffer

	require.NoError(t, Print(&buf, &s, false))
	assert.Equal(t, noSessionsMsg+"\n", buf.String())
}

func TestShowFiltersByTask(t *testing.T) {
	db, err := store.NewClient(filepath.Join(t.TempDir(), "arranger.db"))
	require.NoError(t, err)

	defer db.Close()

	for _, sess := range fixtures() {
		end, completed := sess.EndTime, sess.Completed()

		require.NoError(t, db.StartSession(sess))

		if completed {
			require.NoError(t, db.CompleteSession(sess.StartTime, end))
		}
	}

	var buf bytes.Buffer

	err = Show(db, &Options{
		Stdout:    &buf,
		StartTime: day,
		EndTime:   day.AddDate(0, 0, 2).Add(-time.Second),
		Task:      "write",
		JSON:      true,
	})
	require.NoError(t, err)

	var out jsonSummary

	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, 40, out.WorkMinutes)
	assert.Equal(t, 2, out.Completed)
	assert.Equal(t, 1, out.Incomplete)
}
