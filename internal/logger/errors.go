package logger

import "github.com/ayoisaiah/tanss/internal/apperr"

var (
	errUnknownLevel = &apperr.Error{
		Message: "unknown log level: %q",
	}

	errLogDir = &apperr.Error{
		Message: "creating log directory failed",
	}
)
