package core

// Store is durable, key-keyed storage of whole collections. A collection is
// always written and read as one value; there are no incremental writes.
type Store interface {
	// Load decodes the value stored under key into dst. found is false when
	// the key has never been saved. A stored value that cannot be decoded
	// yields an error wrapping ErrMalformedData; implementations must not
	// panic on corrupt data.
	Load(key string, dst interface{}) (found bool, err error)

	// Save encodes v and durably writes it under key, replacing any previous
	// value, so that a fresh Store on the same backing data Loads an equal value.
	Save(key string, v interface{}) error
}
