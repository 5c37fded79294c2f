package store

import (
	"time"

	"github.com/ayoisaiah/arranger/internal/models"
)

// DB is the database storage interface.
type DB interface {
	// AddTask creates a pending task and returns it with its assigned ID
	AddTask(name string) (*models.Task, error)
	// GetTask retrieves a single task by ID
	GetTask(id int64) (*models.Task, error)
	// GetTasks lists tasks in creation order. Finished tasks are only
	// included when includeFinished is set
	GetTasks(includeFinished bool) ([]*models.Task, error)
	// RenameTask changes the name of a task without touching its ID
	RenameTask(id int64, name string) error
	// CompleteTask sets the completion flag of a task
	CompleteTask(id int64) error
	// DeleteTask removes a task. Its ID is never handed out again
	DeleteTask(id int64) error
	// StartSession records the beginning of a countdown. The terminate time
	// is set to the start time
	StartSession(sess *models.Session) error
	// CompleteSession sets the terminate time of a running session
	CompleteSession(startTime, endTime time.Time) error
	// DeleteSession removes an interrupted session
	DeleteSession(startTime time.Time) error
	// DeleteSessions removes several sessions at once
	DeleteSessions(startTimes []time.Time) error
	// GetSessions returns sessions started within the bounds, optionally
	// restricted to one task name
	GetSessions(since, until time.Time, task string) ([]*models.Session, error)
	// Close ends the database connection
	Close() error
}
