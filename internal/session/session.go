// Package session tracks the lifetime of an authenticated connection to a
// TANSS server: the credential pair handed out by the server and the
// timestamps that decide whether the access credential is still usable.
package session

import (
	"time"

	"github.com/ayoisaiah/tanss/internal/timeutil"
)

// Session represents one authenticated connection to a TANSS server.
// Timestamps are nil when unset. All derived values are recomputed on every
// call from the timestamps, the access credential and the session clock.
type Session struct {
	Created      *time.Time       `json:"created,omitempty"`
	Expires      *time.Time       `json:"expires,omitempty"`
	Modified     *time.Time       `json:"modified,omitempty"`
	now          func() time.Time
	Server       string           `json:"server"`
	Username     string           `json:"username"`
	EmployeeType string           `json:"employee_type,omitempty"`
	Message      string           `json:"message,omitempty"`
	AccessToken  Credential       `json:"access_token"`
	RefreshToken Credential       `json:"refresh_token"`
	EmployeeID   int              `json:"employee_id,omitempty"`
}

// Option configures a Session created with New.
type Option func(*Session)

// WithClock sets the function used to read the current time.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithEmployee records the employee the credentials were issued to.
func WithEmployee(id int, employeeType string) Option {
	return func(s *Session) {
		s.EmployeeID = id
		s.EmployeeType = employeeType
	}
}

// WithMessage sets the status message returned by the server.
func WithMessage(msg string) Option {
	return func(s *Session) {
		s.Message = msg
	}
}

// New records a freshly authenticated session whose access credential is
// valid for lifetime from now.
func New(
	server, username string,
	access, refresh Credential,
	lifetime time.Duration,
	opts ...Option,
) *Session {
	s := &Session{
		Server:   server,
		Username: username,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.issue(access, refresh, lifetime)

	return s
}

// SetClock replaces the function used to read the current time. A nil
// function restores the wall clock.
func (s *Session) SetClock(now func() time.Time) {
	s.now = now
}

// Refresh replaces the credential pair after a token refresh. The new access
// credential is valid for lifetime from now.
func (s *Session) Refresh(access, refresh Credential, lifetime time.Duration) {
	s.issue(access, refresh, lifetime)
}

func (s *Session) issue(access, refresh Credential, lifetime time.Duration) {
	now := s.clock()
	expires := now.Add(lifetime)
	created := now
	modified := now

	s.AccessToken = access
	s.RefreshToken = refresh
	s.Created = &created
	s.Expires = &expires
	s.Modified = &modified
}

// Key identifies the session in the local store.
func (s *Session) Key() string {
	return s.Server + "|" + s.Username
}

func (s *Session) clock() time.Time {
	if s.now != nil {
		return s.now()
	}

	return time.Now()
}

// Valid reports whether the access credential can be used for requests: it
// must be present and its expiry must be set and not in the past.
func (s *Session) Valid() bool {
	if s.Expires == nil {
		return false
	}

	if s.Expires.Before(s.clock()) {
		return false
	}

	return !s.AccessToken.IsZero()
}

// AccessLifetime is the span between creation and expiry of the access
// credential. It is negative if the clocks that produced the timestamps
// disagree, and zero if either timestamp is unset.
func (s *Session) AccessLifetime() time.Duration {
	lifetime, err := s.lifetime()
	if err != nil {
		return 0
	}

	return lifetime
}

func (s *Session) lifetime() (time.Duration, error) {
	if s.Created == nil {
		return 0, errUnsetTimestamp.Fmt("created")
	}

	if s.Expires == nil {
		return 0, errUnsetTimestamp.Fmt("expiry")
	}

	return s.Expires.Sub(*s.Created), nil
}

// TimeRemaining returns how long the access credential stays valid,
// truncated to whole seconds. It is zero once expired or when no expiry is
// set.
func (s *Session) TimeRemaining() time.Duration {
	return s.remainingAt(s.clock())
}

func (s *Session) remainingAt(now time.Time) time.Duration {
	if s.Expires == nil || !s.Expires.After(now) {
		return 0
	}

	return s.Expires.Sub(now).Truncate(time.Second)
}

// PercentRemaining returns the share of the access lifetime that is left,
// rounded half to even into [0, 100]. An expired session yields 0.
// A lifetime that is zero, negative or unknown yields ErrInvalidLifetime.
func (s *Session) PercentRemaining() (int, error) {
	now := s.clock()

	if s.Expires == nil || !s.Expires.After(now) {
		return 0, nil
	}

	lifetime, err := s.lifetime()
	if err != nil {
		return 0, ErrInvalidLifetime.Fmt("unknown").Wrap(err)
	}

	if lifetime <= 0 {
		return 0, ErrInvalidLifetime.Fmt(lifetime)
	}

	percent := timeutil.RoundHalfEven(
		float64(s.remainingAt(now)) * 100 / float64(lifetime),
	)

	return min(max(percent, 0), 100), nil
}

// Authorization returns the access credential to send with a request.
func (s *Session) Authorization() (Credential, error) {
	if s.AccessToken.IsZero() {
		return Credential{}, ErrMissingCredential.Fmt(s.Key())
	}

	if !s.Valid() {
		return Credential{}, ErrSessionExpired.Fmt(s.Key())
	}

	return s.AccessToken, nil
}

// String returns "<server> | <username> | <time remaining>". Segments are
// dropped from the right when unset, and "Session" is returned when there is
// no server.
func (s *Session) String() string {
	if s.Server == "" {
		return "Session"
	}

	label := s.Server

	if s.Username == "" {
		return label
	}

	label += " | " + s.Username

	if remaining := s.TimeRemaining(); remaining > 0 {
		label += " | " + timeutil.FormatSpan(remaining)
	}

	return label
}
