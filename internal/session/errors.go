package session

import "github.com/ayoisaiah/tanss/internal/apperr"

var (
	// ErrMissingCredential means the session holds no access credential.
	ErrMissingCredential = &apperr.Error{
		Message: "session for %s has no access credential",
	}

	// ErrInvalidLifetime means the access lifetime is zero, negative or
	// unknown, so no percentage can be derived from it.
	ErrInvalidLifetime = &apperr.Error{
		Message: "invalid access lifetime %v: token expiry must be after its creation",
	}

	// ErrSessionExpired means the access credential can no longer be used.
	ErrSessionExpired = &apperr.Error{
		Message: "session for %s has expired",
	}

	errUnsetTimestamp = &apperr.Error{
		Message: "%s timestamp is not set",
	}
)
