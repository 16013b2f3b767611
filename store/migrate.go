package store

import (
	"encoding/json"
	"strconv"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/tanss/internal/session"
)

// schemaVersion is bumped whenever stored records change shape.
const schemaVersion = 1

var keySchemaVersion = []byte("schema_version")

// rekeySessions moves every session to the key derived from its own server
// and username. Early databases keyed sessions by username alone.
func rekeySessions(tx *bolt.Tx) error {
	bucket := tx.Bucket([]byte(sessionBucket))

	type move struct {
		from, to []byte
		value    []byte
	}

	var moves []move

	err := bucket.ForEach(func(k, v []byte) error {
		var s session.Session

		if err := json.Unmarshal(v, &s); err != nil {
			return errDecodeSession.Fmt(string(k)).Wrap(err)
		}

		if key := s.Key(); key != string(k) {
			moves = append(moves, move{
				from:  append([]byte(nil), k...),
				to:    []byte(key),
				value: append([]byte(nil), v...),
			})
		}

		return nil
	})
	if err != nil {
		return err
	}

	for _, m := range moves {
		if err := bucket.Delete(m.from); err != nil {
			return err
		}

		if err := bucket.Put(m.to, m.value); err != nil {
			return err
		}
	}

	return nil
}

func (c *Client) migrate(tx *bolt.Tx) error {
	meta := tx.Bucket([]byte(metaBucket))

	version := 0
	if v := meta.Get(keySchemaVersion); v != nil {
		n, err := strconv.Atoi(string(v))
		if err != nil {
			return err
		}

		version = n
	}

	if version >= schemaVersion {
		return nil
	}

	if err := rekeySessions(tx); err != nil {
		return err
	}

	return meta.Put(keySchemaVersion, []byte(strconv.Itoa(schemaVersion)))
}
