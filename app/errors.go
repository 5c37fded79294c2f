package app

import "github.com/ayoisaiah/arranger/internal/apperr"

var (
	errInvalidID = &apperr.Error{
		Message: "invalid task ID: %s",
	}

	errNoTaskName = &apperr.Error{
		Message: "a task name is required",
	}

	errMissingID = &apperr.Error{
		Message: "at least one task ID is required",
	}

	errInvalidPeriod = &apperr.Error{
		Message: "unknown period %q",
	}

	errInvalidDate = &apperr.Error{
		Message: "unable to parse date %q",
	}

	errInvalidSort = &apperr.Error{
		Message: "unknown sort order %q",
	}

	errPeriodBounds = &apperr.Error{
		Message: "the start of the period must come before its end",
	}
)
