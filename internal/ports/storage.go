package ports

import "context"

// KVStore is the client-local persistent key/value store. Values are JSON
// documents. Writes are synchronous: when Set returns
// nil the value is durable and a subsequent Get observes it.
type KVStore interface {
	// Get returns the stored value and true, or nil and false when the key is
	// absent. An error is reserved for backend failures.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
