package store

import (
	"github.com/ayoisaiah/tanss/internal/lookup"
	"github.com/ayoisaiah/tanss/internal/session"
)

// DB is the database storage interface.
type DB interface {
	// SaveSession creates or overwrites the session stored under its key
	SaveSession(sess *session.Session) error
	// GetSession returns the session stored under key
	GetSession(key string) (*session.Session, error)
	// ListSessions returns every stored session ordered by key
	ListSessions() ([]*session.Session, error)
	// DeleteSession removes the session stored under key
	DeleteSession(key string) error
	// PutLookup stores a single resolved id
	PutLookup(kind lookup.Kind, id int, name string) error
	// SaveLookups writes every entry of the cache
	SaveLookups(cache *lookup.Cache) error
	// LoadLookups reads all stored entries into a new cache
	LoadLookups() (*lookup.Cache, error)
	// Close ends the database connection
	Close() error
}
