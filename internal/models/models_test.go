package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCompleted(t *testing.T) {
	start := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	sess := &Session{StartTime: start, EndTime: start, Duration: 15 * time.Minute}
	assert.False(t, sess.Completed())
	assert.Zero(t, sess.Elapsed())

	sess.EndTime = start.Add(15 * time.Minute)
	assert.True(t, sess.Completed())
	assert.Equal(t, 15*time.Minute, sess.Elapsed())
}

func TestTaskName(t *testing.T) {
	task := &Task{ID: 3, Name: "write report"}

	assert.Equal(t, "write report", TaskName(Work, task))
	assert.Equal(t, NoTask, TaskName(Work, nil))
	assert.Equal(t, RelaxTask, TaskName(Relax, task))
}

func TestMode(t *testing.T) {
	assert.Equal(t, Relax, Work.Toggle())
	assert.Equal(t, Work, Relax.Toggle())
	assert.Equal(t, Relax, ParseMode("relax"))
	assert.Equal(t, Work, ParseMode("garbage"))
	assert.Equal(t, "Relax", Relax.Label())
}

func TestSessionJSONDurationInSeconds(t *testing.T) {
	start := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	sess := &Session{
		StartTime: start,
		EndTime:   start.Add(25 * time.Minute),
		Task:      "write report",
		Mode:      Work,
		Duration:  25 * time.Minute,
	}

	b, err := json.Marshal(sess)
	require.NoError(t, err)

	var raw map[string]any

	require.NoError(t, json.Unmarshal(b, &raw))
	assert.InDelta(t, 1500, raw["duration"], 0)
	assert.Equal(t, "work", raw["mode"])
	assert.Equal(t, "write report", raw["task"])

	var got Session

	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, 25*time.Minute, got.Duration)
	assert.True(t, start.Equal(got.StartTime))
	assert.Equal(t, "write report", got.Task)
}
