package kvstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key has never been written
// or has been deleted.
var ErrKeyNotFound = errors.New("key not found")

// Store is a durable key/value store holding small serialized documents.
// The catalog persists the whole resource collection under a single key
// and the session under another, so every Set replaces the full value:
// either the write lands completely or the previous value stays intact.
//
// Writes from concurrent process instances are last-writer-wins. That is
// a documented limitation of the single-client model, not a bug to be
// papered over with locking here.
type Store interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value stored under key atomically.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// Persisted keys. The layout mirrors the original client-local storage:
// one document per concern.
const (
	KeyResources = "resources"
	KeyUser      = "user"
)
