package storage

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"market-indexes/src/interfaces"
	"market-indexes/src/logger"
	"market-indexes/src/models"
)

const (
	ProviderMemory   = "memory"
	ProviderRedis    = "redis"
	ProviderSQLite   = "sqlite"
	ProviderPostgres = "postgres"
)

// IExpiringStore is implemented by stores that need explicit purging
type IExpiringStore interface {
	CleanupExpired(ctx context.Context) (int64, error)
}

// -----------------------------------------------------------------------------

// NewCacheStore builds the store selected by cache.provider. The caller owns
// its lifecycle (Initialize and Close).
func NewCacheStore(cfg *models.MConfig, log *logger.Logger) (interfaces.ICacheStore, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Cache.Provider))
	switch provider {
	case "", ProviderMemory:
		interval := time.Duration(cfg.Cache.CleanupIntervalSeconds) * time.Second
		return NewMemoryCacheStore(interval, log), nil
	case ProviderRedis:
		return NewRedisCacheStore(cfg.Cache.RedisURL, log), nil
	case ProviderSQLite:
		return NewAsyncSQLiteDB(cfg.Cache.DBPath, log), nil
	case ProviderPostgres:
		return NewPostgresDB(cfg.Cache.DBConnectionString, log)
	default:
		return nil, fmt.Errorf("unknown cache provider %q", cfg.Cache.Provider)
	}
}

// -----------------------------------------------------------------------------

// RunCleanup purges expired rows of SQL-backed stores until ctx is done.
// Stores that expire entries themselves are left alone.
func RunCleanup(ctx context.Context, store interfaces.ICacheStore, interval time.Duration, log *logger.Logger) {
	expiring, ok := store.(IExpiringStore)
	if !ok || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := expiring.CleanupExpired(ctx)
			if err != nil {
				log.Error("Cache cleanup error: %v", err)
				continue
			}
			if n > 0 {
				log.Debug("Cache cleanup removed %d expired entries", n)
			}
		}
	}
}

// -----------------------------------------------------------------------------

// expiresAt is the absolute expiry in unix milliseconds; ttl <= 0 never expires
func expiresAt(now time.Time, ttl time.Duration) int64 {
	if ttl <= 0 {
		return math.MaxInt64
	}
	return now.Add(ttl).UnixMilli()
}
