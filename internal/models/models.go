// Package models defines the records persisted by Arranger
package models

import (
	"encoding/json"
	"time"
)

// Mode decides whether a countdown is work on a task or a rest.
type Mode string

const (
	Work  Mode = "work"
	Relax Mode = "relax"
)

// Label returns the human readable mode name.
func (m Mode) Label() string {
	if m == Relax {
		return "Relax"
	}

	return "Work"
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == Relax {
		return Work
	}

	return Relax
}

// ParseMode converts a stored value into a Mode. Unknown values fall back to
// Work.
func ParseMode(s string) Mode {
	if Mode(s) == Relax {
		return Relax
	}

	return Work
}

const (
	// NoTask names work sessions started without a selected task.
	NoTask = "None"
	// RelaxTask names every relax session.
	RelaxTask = "Relaxing"
)

// Task is a to-do entry that can be the subject of a work session. The ID is
// assigned by the store and never changes.
type Task struct {
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	ID        int64     `json:"id"`
	Finished  bool      `json:"finished"`
}

// Session is one timed work or rest interval attempt.
type Session struct {
	// StartTime identifies the session
	StartTime time.Time `json:"start_time"`
	// EndTime equals StartTime until the countdown completes
	EndTime  time.Time     `json:"end_time"`
	Task     string        `json:"task"`
	Mode     Mode          `json:"mode"`
	Duration time.Duration `json:"duration"`
}

// MarshalJSON writes the duration in whole seconds, as it is stored.
func (s Session) MarshalJSON() ([]byte, error) {
	type session Session

	return json.Marshal(struct {
		session
		Duration int64 `json:"duration"`
	}{
		session:  session(s),
		Duration: int64(s.Duration / time.Second),
	})
}

func (s *Session) UnmarshalJSON(b []byte) error {
	type session Session

	aux := struct {
		*session
		Duration int64 `json:"duration"`
	}{
		session: (*session)(s),
	}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	s.Duration = time.Duration(aux.Duration) * time.Second

	return nil
}

// Completed reports whether the session ran to the end of its countdown.
func (s *Session) Completed() bool {
	return s.EndTime.After(s.StartTime)
}

// Elapsed returns how long the session actually ran.
func (s *Session) Elapsed() time.Duration {
	if !s.Completed() {
		return 0
	}

	return s.EndTime.Sub(s.StartTime)
}

// TaskName returns the name to record for a session in the given mode.
func TaskName(mode Mode, task *Task) string {
	if mode == Relax {
		return RelaxTask
	}

	if task == nil {
		return NoTask
	}

	return task.Name
}
