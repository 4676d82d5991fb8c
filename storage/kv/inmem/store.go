package inmemkv

import (
	"encoding/json"
	"sync"

	"github.com/pkg/errors"

	"github.com/escolabase/carometro/core"
)

// Store keeps JSON-encoded collections in memory. It backs ephemeral runs
// and tests; nothing survives the process.
type Store struct {
	mutex sync.RWMutex
	table map[string][]byte
}

var _ core.Store = (*Store)(nil) // interface compliance check

func Open() *Store {
	return &Store{table: make(map[string][]byte)}
}

func (s *Store) Load(key string, dst interface{}) (bool, error) {
	s.mutex.RLock()
	raw, ok := s.table[key]
	s.mutex.RUnlock()

	if !ok {
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
	s.mutex.Lock()
	s.table[key] = raw
	s.mutex.Unlock()
	return nil
}

// SaveRaw writes arbitrary bytes under key, bypassing encoding. It lets
// tests stage corrupt persisted data.
func (s *Store) SaveRaw(key string, raw []byte) {
	s.mutex.Lock()
	s.table[key] = append([]byte(nil), raw...)
	s.mutex.Unlock()
}
