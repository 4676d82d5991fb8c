package boltkv

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"

	"github.com/escolabase/carometro/core"
)

var bucketName = []byte("collections")

// Store persists JSON-encoded collections in a single-file bbolt database.
type Store struct {
	db *bolt.DB
}

var _ core.Store = (*Store)(nil) // interface compliance check

func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "opening store")
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "initializing store")
	}
	return &Store{db: db}, nil
}

func (s *Store) Load(key string, dst interface{}) (bool, error) {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketName).Get([]byte(key)); v != nil {
			raw = append(raw, v...) // the value is only valid inside the transaction
		}
		return nil
	})
	if err != nil {
		return false, errors.Wrapf(err, "reading %q", key)
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return true, errors.Wrapf(core.ErrMalformedData, "decoding %q: %v", key, err)
	}
	return true, nil
}

func (s *Store) Save(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encoding %q", key)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), raw)
	})
	return errors.Wrapf(err, "writing %q", key)
}

func (s *Store) Close() error {
	return s.db.Close()
}
