package interfaces

import (
	"context"
	"time"
)

// -----------------------------------------------------------------------------
// ICacheStore defines the key/value store with per-key TTL.
// Implementations must be safe for concurrent use.
// -----------------------------------------------------------------------------

//go:generate mockgen -package=service_test -destination=../service/mock_cache_store_test.go -source=cache_store.go ICacheStore
type ICacheStore interface {

	// -----------------------------------------------------------------------------

	// Initialize opens connections and prepares the schema when needed.
	Initialize() error

	// -----------------------------------------------------------------------------

	// Get returns the stored value; found is false on a miss or expired key.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// -----------------------------------------------------------------------------

	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// -----------------------------------------------------------------------------

	// Close the underlying connection
	Close() error
}
