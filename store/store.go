// Package store connects to the SQLite data store and manages tasks and
// sessions
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ayoisaiah/arranger/internal/models"
	"github.com/ayoisaiah/arranger/internal/osutil"
	"github.com/ayoisaiah/arranger/internal/timeutil"
)

const driverName = "sqlite"

// Client is a SQLite database client.
type Client struct {
	db  *sql.DB
	now func() time.Time
}

// NewClient opens (or creates) the database at dbPath and brings its schema
// up to date.
func NewClient(dbPath string) (*Client, error) {
	err := os.MkdirAll(filepath.Dir(dbPath), osutil.DirPermission)
	if err != nil {
		return nil, errOpenDB.Fmt(dbPath).Wrap(err)
	}

	dsn := fmt.Sprintf(
		"file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
		dbPath,
	)

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, errOpenDB.Fmt(dbPath).Wrap(err)
	}

	// a single connection keeps every statement on the same SQLite handle
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, errOpenDB.Fmt(dbPath).Wrap(err)
	}

	c := &Client{
		db:  db,
		now: time.Now,
	}

	if err = c.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return c, nil
}

// Close ends the database connection.
func (c *Client) Close() error {
	return c.db.Close()
}

func (c *Client) withTx(fn func(tx *sql.Tx) error) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}

	if err = fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func expectOne(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return notFound
	}

	return nil
}

// AddTask creates a pending task.
func (c *Client) AddTask(name string) (*models.Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyTaskName
	}

	created := c.now()

	res, err := c.db.Exec(
		`INSERT INTO tasks (is_finished, task, created_at) VALUES (0, ?, ?)`,
		name,
		timeutil.ToKey(created),
	)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	return &models.Task{
		ID:        id,
		Name:      name,
		CreatedAt: created,
	}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (*models.Task, error) {
	var (
		t        models.Task
		finished int
		created  string
	)

	err := row.Scan(&t.ID, &finished, &t.Name, &created)
	if err != nil {
		return nil, err
	}

	t.Finished = finished != 0

	t.CreatedAt, err = timeutil.FromKey(created)
	if err != nil {
		return nil, fmt.Errorf("task %d: %w", t.ID, err)
	}

	return &t, nil
}

// GetTask retrieves a task by ID.
func (c *Client) GetTask(id int64) (*models.Task, error) {
	row := c.db.QueryRow(
		`SELECT id, is_finished, task, created_at FROM tasks WHERE id = ?`,
		id,
	)

	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTaskNotFound.Fmt(id)
	}

	return t, err
}

// GetTasks lists tasks ordered by ID.
func (c *Client) GetTasks(includeFinished bool) ([]*models.Task, error) {
	query := `SELECT id, is_finished, task, created_at FROM tasks`
	if !includeFinished {
		query += ` WHERE is_finished = 0`
	}

	query += ` ORDER BY id`

	rows, err := c.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}

	defer rows.Close()

	var tasks []*models.Task

	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}

		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// RenameTask changes a task's name.
func (c *Client) RenameTask(id int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyTaskName
	}

	res, err := c.db.Exec(`UPDATE tasks SET task = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("rename task: %w", err)
	}

	return expectOne(res, ErrTaskNotFound.Fmt(id))
}

// CompleteTask marks a task as finished.
func (c *Client) CompleteTask(id int64) error {
	res, err := c.db.Exec(`UPDATE tasks SET is_finished = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("complete task: %w", err)
	}

	return expectOne(res, ErrTaskNotFound.Fmt(id))
}

// DeleteTask removes a task. AUTOINCREMENT guarantees that its ID is not
// reused.
func (c *Client) DeleteTask(id int64) error {
	res, err := c.db.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	return expectOne(res, ErrTaskNotFound.Fmt(id))
}

// StartSession inserts a session whose terminate time equals its start time.
func (c *Client) StartSession(sess *models.Session) error {
	key := timeutil.ToKey(sess.StartTime)

	mode := sess.Mode
	if mode == "" {
		mode = models.Work
	}

	_, err := c.db.Exec(
		`INSERT INTO sessions (start_time, terminate_time, task, duration, mode)
		VALUES (?, ?, ?, ?, ?)`,
		key,
		key,
		sess.Task,
		int64(sess.Duration/time.Second),
		string(mode),
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	sess.EndTime = sess.StartTime

	return nil
}

// CompleteSession records the time a session's countdown finished.
func (c *Client) CompleteSession(startTime, endTime time.Time) error {
	res, err := c.db.Exec(
		`UPDATE sessions SET terminate_time = ? WHERE start_time = ?`,
		timeutil.ToKey(endTime),
		timeutil.ToKey(startTime),
	)
	if err != nil {
		return fmt.Errorf("complete session: %w", err)
	}

	return expectOne(res, ErrSessionNotFound.Fmt(timeutil.ToKey(startTime)))
}

// DeleteSession removes the session that started at startTime.
func (c *Client) DeleteSession(startTime time.Time) error {
	res, err := c.db.Exec(
		`DELETE FROM sessions WHERE start_time = ?`,
		timeutil.ToKey(startTime),
	)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return expectOne(res, ErrSessionNotFound.Fmt(timeutil.ToKey(startTime)))
}

// DeleteSessions removes all the given sessions in one transaction.
func (c *Client) DeleteSessions(startTimes []time.Time) error {
	return c.withTx(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`DELETE FROM sessions WHERE start_time = ?`)
		if err != nil {
			return err
		}

		defer stmt.Close()

		for _, t := range startTimes {
			if _, err := stmt.Exec(timeutil.ToKey(t)); err != nil {
				return fmt.Errorf("delete session: %w", err)
			}
		}

		return nil
	})
}

// GetSessions returns the sessions that started between since and until
// (inclusive), oldest first. A zero until means no upper bound. An empty task
// matches every task.
func (c *Client) GetSessions(
	since, until time.Time,
	task string,
) ([]*models.Session, error) {
	query := `SELECT start_time, terminate_time, task, duration, mode
		FROM sessions WHERE start_time >= ?`
	args := []any{timeutil.ToKey(since)}

	if !until.IsZero() {
		query += ` AND start_time <= ?`

		args = append(args, timeutil.ToKey(until))
	}

	if task != "" {
		query += ` AND task = ?`

		args = append(args, task)
	}

	query += ` ORDER BY start_time`

	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	defer rows.Close()

	var sessions []*models.Session

	for rows.Next() {
		var (
			sess       models.Session
			start, end string
			secs       int64
			mode       string
		)

		err = rows.Scan(&start, &end, &sess.Task, &secs, &mode)
		if err != nil {
			return nil, err
		}

		if sess.StartTime, err = timeutil.FromKey(start); err != nil {
			return nil, err
		}

		if sess.EndTime, err = timeutil.FromKey(end); err != nil {
			return nil, err
		}

		sess.Duration = time.Duration(secs) * time.Second
		sess.Mode = models.ParseMode(mode)

		sessions = append(sessions, &sess)
	}

	return sessions, rows.Err()
}
