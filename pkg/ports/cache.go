package ports

import (
	"context"
	"errors"
)

// ErrCacheMiss is returned by Cache.Get when the key has no entry.
var ErrCacheMiss = errors.New("cache miss")

// Cache remembers serialized union results keyed by their input documents.
// Implementations are free to evict entries at any time; a miss is never an
// error condition for callers, just a reason to rebuild.
type Cache interface {
	// Get returns the payload stored under key, or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores the payload under key.
	Set(ctx context.Context, key string, payload []byte) error
}
