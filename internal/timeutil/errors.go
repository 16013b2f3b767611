package timeutil

import "github.com/ayoisaiah/tanss/internal/apperr"

// ErrInvalidClock is returned by ParseClock for malformed input.
var ErrInvalidClock = &apperr.Error{
	Message: "invalid time of day %q: expected HH:MM",
}
