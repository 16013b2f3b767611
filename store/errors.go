package store

import "github.com/ayoisaiah/tanss/internal/apperr"

var (
	ErrInstanceRunning = &apperr.Error{
		Message: "is tanss already running? The database at %s is locked by another process",
	}

	ErrSessionNotFound = &apperr.Error{
		Message: "no session stored for %s: save one with 'tanss session save'",
	}

	errDecodeSession = &apperr.Error{
		Message: "decoding session %s",
	}
)
