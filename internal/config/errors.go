package config

import "github.com/ayoisaiah/arranger/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidDuration = &apperr.Error{
		Message: "countdown duration must be between %v and %v",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid duration %q: use a value like 25m, 1h30m or 45",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level: %s",
	}

	errInvalidMaxFiles = &apperr.Error{
		Message: "log.max_files must be at least %d, got %d",
	}
)
