package store

import "github.com/ayoisaiah/arranger/internal/apperr"

var (
	ErrTaskNotFound = &apperr.Error{
		Message: "task %d not found",
	}

	ErrSessionNotFound = &apperr.Error{
		Message: "no session started at %s",
	}

	ErrEmptyTaskName = &apperr.Error{
		Message: "task name cannot be empty",
	}

	errOpenDB = &apperr.Error{
		Message: "unable to open database at %s",
	}

	errMigrate = &apperr.Error{
		Message: "database migration to version %d failed",
	}
)
