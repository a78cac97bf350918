package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"market-indexes/src/logger"
)

// RedisCacheStore shares the cache between instances. TTLs are enforced by Redis.
type RedisCacheStore struct {
	URL    string
	Client *redis.Client
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewRedisCacheStore(url string, log *logger.Logger) *RedisCacheStore {
	return &RedisCacheStore{URL: url, Logger: log}
}

// -----------------------------------------------------------------------------

func (r *RedisCacheStore) Initialize() error {
	opts, err := redis.ParseURL(r.URL)
	if err != nil {
		return fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("could not connect to redis at %s: %w", opts.Addr, err)
	}

	r.Client = client
	r.Logger.Info("Connected to Redis at %s (db %d)", opts.Addr, opts.DB)
	return nil
}

// -----------------------------------------------------------------------------

func (r *RedisCacheStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis GET %s: %w", key, err)
	}
	return val, true, nil
}

// -----------------------------------------------------------------------------

func (r *RedisCacheStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := r.Client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis SET %s: %w", key, err)
	}
	return nil
}

// -----------------------------------------------------------------------------

func (r *RedisCacheStore) Close() error {
	if r.Client != nil {
		return r.Client.Close()
	}
	return nil
}
