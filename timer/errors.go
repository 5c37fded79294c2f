package timer

import "github.com/ayoisaiah/arranger/internal/apperr"

var (
	errZeroDuration = &apperr.Error{
		Message: "the countdown must be longer than zero seconds",
	}

	errEmptyTask = &apperr.Error{
		Message: "task name cannot be empty",
	}

	errSessionCmd = &apperr.Error{
		Message: "unable to parse session command",
	}

	errReadStatus = &apperr.Error{
		Message: "unable to read status file",
	}

	errWriteStatus = &apperr.Error{
		Message: "unable to write status file",
	}
)
