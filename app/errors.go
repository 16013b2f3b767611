package app

import "github.com/ayoisaiah/tanss/internal/apperr"

var (
	errNoAccount = &apperr.Error{
		Message: "no server or username configured: pass --server and --user or run 'tanss edit-config'",
	}

	errInvalidDate = &apperr.Error{
		Message: "unable to understand date %q",
	}

	errInvalidExpiry = &apperr.Error{
		Message: "expiry %s is not in the future",
	}

	errMissingToken = &apperr.Error{
		Message: "an access token is required",
	}

	errReadPayload = &apperr.Error{
		Message: "reading day payload",
	}

	errNotLoaded = &apperr.Error{
		Message: "configuration has not been loaded",
	}
)
