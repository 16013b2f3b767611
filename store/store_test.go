package store

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/tanss/internal/lookup"
	"github.com/ayoisaiah/tanss/internal/session"
	"github.com/ayoisaiah/tanss/internal/testutil"
)

var t0 = time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)

func newTestClient(t *testing.T, clock *testutil.Clock) *Client {
	t.Helper()

	c, err := NewClient(
		filepath.Join(t.TempDir(), "tanss.db"),
		WithClock(clock.Now),
	)
	require.NoError(t, err)

	t.Cleanup(func() { _ = c.Close() })

	return c
}

func newSession(clock *testutil.Clock, server, user string) *session.Session {
	return session.New(
		server,
		user,
		session.NewCredential("access-"+user),
		session.NewCredential("refresh-"+user),
		time.Hour,
		session.WithClock(clock.Now),
		session.WithEmployee(7, "technician"),
	)
}

func TestSessionRoundTrip(t *testing.T) {
	clock := &testutil.Clock{T: t0}
	c := newTestClient(t, clock)

	sess := newSession(clock, "https://tanss.example.com", "jdoe")
	require.NoError(t, c.SaveSession(sess))

	got, err := c.GetSession(sess.Key())
	require.NoError(t, err)

	assert.Equal(t, "jdoe", got.Username)
	assert.Equal(t, 7, got.EmployeeID)
	assert.Equal(t, "access-jdoe", got.AccessToken.Reveal())
	assert.True(t, got.Created.Equal(t0))

	// the stored session reads time from the client clock
	clock.Advance(30 * time.Minute)

	percent, err := got.PercentRemaining()
	require.NoError(t, err)
	assert.Equal(t, 50, percent)

	clock.Advance(time.Hour)
	assert.False(t, got.Valid())
}

func TestGetSessionNotFound(t *testing.T) {
	c := newTestClient(t, &testutil.Clock{T: t0})

	_, err := c.GetSession("https://tanss.example.com|nobody")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestListAndDeleteSessions(t *testing.T) {
	clock := &testutil.Clock{T: t0}
	c := newTestClient(t, clock)

	for _, user := range []string{"zed", "amy"} {
		require.NoError(t, c.SaveSession(newSession(clock, "https://a.example.com", user)))
	}

	sessions, err := c.ListSessions()
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "amy", sessions[0].Username)
	assert.Equal(t, "zed", sessions[1].Username)

	require.NoError(t, c.DeleteSession("https://a.example.com|amy"))

	sessions, err = c.ListSessions()
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "zed", sessions[0].Username)

	err = c.DeleteSession("https://a.example.com|amy")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSaveSessionOverwrites(t *testing.T) {
	clock := &testutil.Clock{T: t0}
	c := newTestClient(t, clock)

	sess := newSession(clock, "https://a.example.com", "jdoe")
	require.NoError(t, c.SaveSession(sess))

	clock.Advance(2 * time.Hour)
	sess.Refresh(session.NewCredential("new"), session.NewCredential("r2"), time.Hour)
	require.NoError(t, c.SaveSession(sess))

	got, err := c.GetSession(sess.Key())
	require.NoError(t, err)

	assert.Equal(t, "new", got.AccessToken.Reveal())
	assert.True(t, got.Valid())

	sessions, err := c.ListSessions()
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestLookups(t *testing.T) {
	c := newTestClient(t, &testutil.Clock{T: t0})

	cache := lookup.New()
	cache.Put(lookup.Employees, 7, "Jane Doe")
	cache.Put(lookup.Employees, 12, "John Roe")
	cache.Put(lookup.TicketStates, 1, "Open")

	require.NoError(t, c.SaveLookups(cache))
	require.NoError(t, c.PutLookup(lookup.Employees, 7, "Jane Smith"))

	got, err := c.LoadLookups()
	require.NoError(t, err)

	assert.Equal(t, []lookup.Kind{lookup.TicketStates, lookup.Employees}, got.Kinds())
	assert.Equal(t, "Jane Smith", got.Name(lookup.Employees, 7))
	assert.Equal(t, "John Roe", got.Name(lookup.Employees, 12))
	assert.Equal(t, "Open", got.Name(lookup.TicketStates, 1))
}

func TestLoadLookupsSkipsUnknownKinds(t *testing.T) {
	c := newTestClient(t, &testutil.Clock{T: t0})

	err := c.Update(func(tx *bolt.Tx) error {
		b, err := tx.Bucket([]byte(lookupBucket)).CreateBucket([]byte("printers"))
		if err != nil {
			return err
		}

		return b.Put([]byte("1"), []byte("Laser"))
	})
	require.NoError(t, err)

	got, err := c.LoadLookups()
	require.NoError(t, err)
	assert.Empty(t, got.Kinds())
}

func TestInstanceRunning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tanss.db")

	c, err := NewClient(path)
	require.NoError(t, err)

	t.Cleanup(func() { _ = c.Close() })

	_, err = NewClient(path)
	assert.ErrorIs(t, err, ErrInstanceRunning)
}

func TestMigrateRekeysSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tanss.db")

	sess := newSession(&testutil.Clock{T: t0}, "https://a.example.com", "jdoe")
	value, err := json.Marshal(sess)
	require.NoError(t, err)

	db, err := bolt.Open(path, 0o600, nil)
	require.NoError(t, err)

	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucket([]byte(sessionBucket))
		if err != nil {
			return err
		}

		return b.Put([]byte("jdoe"), value)
	})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	c, err := NewClient(path)
	require.NoError(t, err)

	t.Cleanup(func() { _ = c.Close() })

	_, err = c.GetSession("jdoe")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	got, err := c.GetSession("https://a.example.com|jdoe")
	require.NoError(t, err)
	assert.Equal(t, "jdoe", got.Username)

	err = c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(metaBucket)).Get(keySchemaVersion)
		assert.Equal(t, "1", string(v))

		return nil
	})
	require.NoError(t, err)
}
