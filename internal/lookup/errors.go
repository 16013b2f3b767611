package lookup

import "github.com/ayoisaiah/tanss/internal/apperr"

// ErrUnknownKind is returned for a kind name that is not supported.
var ErrUnknownKind = &apperr.Error{
	Message: "unknown lookup kind %q",
}
