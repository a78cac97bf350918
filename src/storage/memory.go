package storage

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"market-indexes/src/logger"
)

const defaultCleanupInterval = 10 * time.Minute

// MemoryCacheStore keeps entries in process memory. Expired entries are
// invisible immediately and purged by go-cache's janitor.
type MemoryCacheStore struct {
	Cache  *cache.Cache
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewMemoryCacheStore(cleanupInterval time.Duration, log *logger.Logger) *MemoryCacheStore {
	if cleanupInterval <= 0 {
		cleanupInterval = defaultCleanupInterval
	}
	return &MemoryCacheStore{
		Cache:  cache.New(cache.NoExpiration, cleanupInterval),
		Logger: log,
	}
}

// -----------------------------------------------------------------------------

func (m *MemoryCacheStore) Initialize() error {
	m.Logger.Info("In-memory cache ready")
	return nil
}

// -----------------------------------------------------------------------------

func (m *MemoryCacheStore) Get(_ context.Context, key string) (string, bool, error) {
	v, found := m.Cache.Get(key)
	if !found {
		return "", false, nil
	}
	s, ok := v.(string)
	return s, ok, nil
}

// -----------------------------------------------------------------------------

func (m *MemoryCacheStore) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	m.Cache.Set(key, value, ttl)
	return nil
}

// -----------------------------------------------------------------------------

func (m *MemoryCacheStore) Close() error {
	m.Cache.Flush()
	return nil
}
