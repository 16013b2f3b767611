package session

import (
	"log/slog"
)

const redacted = "[REDACTED]"

// Credential is an opaque secret such as an access or refresh token. Its
// value is only available through Reveal; formatting or logging a
// Credential never prints the secret.
type Credential struct {
	secret string
}

// NewCredential wraps a raw secret.
func NewCredential(secret string) Credential {
	return Credential{secret: secret}
}

// IsZero reports whether the credential is absent.
func (c Credential) IsZero() bool {
	return c.secret == ""
}

// Reveal returns the raw secret.
func (c Credential) Reveal() string {
	return c.secret
}

func (c Credential) String() string {
	if c.IsZero() {
		return ""
	}

	return redacted
}

// LogValue implements slog.LogValuer.
func (c Credential) LogValue() slog.Value {
	return slog.StringValue(c.String())
}

// MarshalText allows the credential to be persisted by the local store.
func (c Credential) MarshalText() ([]byte, error) {
	return []byte(c.secret), nil
}

func (c *Credential) UnmarshalText(b []byte) error {
	c.secret = string(b)

	return nil
}

// Equal reports whether both credentials hold the same secret.
func (c Credential) Equal(other Credential) bool {
	return c.secret == other.secret
}
