package store

import (
	"database/sql"
	"fmt"
)

// migrations are applied in order. The database's user_version records how
// many have run.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id          INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
		is_finished INTEGER NOT NULL DEFAULT 0,
		task        TEXT NOT NULL,
		created_at  TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS sessions (
		start_time     TEXT PRIMARY KEY NOT NULL,
		terminate_time TEXT NOT NULL,
		task           TEXT NOT NULL,
		duration       INTEGER NOT NULL,
		mode           TEXT NOT NULL DEFAULT 'work'
	);
	CREATE INDEX IF NOT EXISTS sessions_task ON sessions (task);`,
}

func schemaVersion(db *sql.DB) (int, error) {
	var v int

	err := db.QueryRow("PRAGMA user_version").Scan(&v)

	return v, err
}

func (c *Client) migrate() error {
	current, err := schemaVersion(c.db)
	if err != nil {
		return err
	}

	for i := current; i < len(migrations); i++ {
		version := i + 1

		err = c.withTx(func(tx *sql.Tx) error {
			if _, err := tx.Exec(migrations[i]); err != nil {
				return err
			}

			_, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", version))

			return err
		})
		if err != nil {
			return errMigrate.Fmt(version).Wrap(err)
		}
	}

	return nil
}
