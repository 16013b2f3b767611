// Package store persists sessions and lookup tables in a local BoltDB file
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"strconv"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/tanss/internal/lookup"
	"github.com/ayoisaiah/tanss/internal/session"
)

const (
	sessionBucket = "sessions"
	lookupBucket  = "lookups"
	metaBucket    = "meta"
)

var _ DB = (*Client)(nil)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
	// now is handed to sessions read back from the database
	now func() time.Time
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithClock sets the clock attached to sessions returned by the client.
func WithClock(now func() time.Time) ClientOption {
	return func(c *Client) {
		c.now = now
	}
}

func (c *Client) SaveSession(sess *session.Session) error {
	value, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).Put([]byte(sess.Key()), value)
	})
}

func (c *Client) GetSession(key string) (*session.Session, error) {
	var sess *session.Session

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(sessionBucket)).Get([]byte(key))
		if v == nil {
			return ErrSessionNotFound.Fmt(key)
		}

		var err error

		sess, err = c.decodeSession(key, v)

		return err
	})
	if err != nil {
		return nil, err
	}

	return sess, nil
}

func (c *Client) ListSessions() ([]*session.Session, error) {
	var sessions []*session.Session

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).ForEach(func(k, v []byte) error {
			sess, err := c.decodeSession(string(k), v)
			if err != nil {
				return err
			}

			sessions = append(sessions, sess)

			return nil
		})
	})

	return sessions, err
}

func (c *Client) DeleteSession(key string) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionBucket))
		if b.Get([]byte(key)) == nil {
			return ErrSessionNotFound.Fmt(key)
		}

		return b.Delete([]byte(key))
	})
}

func (c *Client) decodeSession(key string, v []byte) (*session.Session, error) {
	var sess session.Session

	if err := json.Unmarshal(v, &sess); err != nil {
		return nil, errDecodeSession.Fmt(key).Wrap(err)
	}

	sess.SetClock(c.now)

	return &sess, nil
}

func (c *Client) PutLookup(kind lookup.Kind, id int, name string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return putLookup(tx, kind, id, name)
	})
}

func (c *Client) SaveLookups(cache *lookup.Cache) error {
	return c.Update(func(tx *bolt.Tx) error {
		for _, kind := range cache.Kinds() {
			for _, e := range cache.Entries(kind) {
				if err := putLookup(tx, kind, e.ID, e.Name); err != nil {
					return err
				}
			}
		}

		return nil
	})
}

func putLookup(tx *bolt.Tx, kind lookup.Kind, id int, name string) error {
	b, err := tx.Bucket([]byte(lookupBucket)).CreateBucketIfNotExists([]byte(kind))
	if err != nil {
		return err
	}

	return b.Put([]byte(strconv.Itoa(id)), []byte(name))
}

// LoadLookups reads every stored table. Tables of kinds this build does not
// know about are skipped.
func (c *Client) LoadLookups() (*lookup.Cache, error) {
	cache := lookup.New()

	err := c.View(func(tx *bolt.Tx) error {
		root := tx.Bucket([]byte(lookupBucket))

		return root.ForEachBucket(func(k []byte) error {
			kind, err := lookup.ParseKind(string(k))
			if err != nil {
				return nil
			}

			return root.Bucket(k).ForEach(func(id, name []byte) error {
				n, err := strconv.Atoi(string(id))
				if err != nil {
					return err
				}

				cache.Put(kind, n, string(name))

				return nil
			})
		})
	})
	if err != nil {
		return nil, err
	}

	return cache, nil
}

// open creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, ErrInstanceRunning.Fmt(pathToDB)
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string, opts ...ClientOption) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	c := &Client{DB: db}

	for _, opt := range opts {
		opt(c)
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{sessionBucket, lookupBucket, metaBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}

		return c.migrate(tx)
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return c, nil
}
