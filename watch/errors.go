package watch

import "github.com/ayoisaiah/tanss/internal/apperr"

var errParseExpireCmd = &apperr.Error{
	Message: "unable to parse session.expire_cmd option",
}
