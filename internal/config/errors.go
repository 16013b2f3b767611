package config

import "github.com/ayoisaiah/tanss/internal/apperr"

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

	errInvalidServerURL = &apperr.Error{
		Message: "server url must be an absolute http(s) url, got %q",
	}

	errInvalidTimezone = &apperr.Error{
		Message: "unknown vacation timezone: %s",
	}

	errInvalidWarnPercent = &apperr.Error{
		Message: "session warn percent must be between %d and %d, got %d",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "log level must be one of %v, got %q",
	}

	errInvalidLogRotation = &apperr.Error{
		Message: "log max_size and max_backups cannot be negative",
	}
)
