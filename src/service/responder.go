package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"market-indexes/src/interfaces"
	"market-indexes/src/logger"
	"market-indexes/src/models"
)

// BroadcastDevice addresses every connected listener
const BroadcastDevice = "*"

// Producer computes a fresh result on a cache miss
type Producer func(ctx context.Context) (any, error)

// -----------------------------------------------------------------------------

// Responder is a read-through cache in front of the upstream producers.
type Responder struct {
	Store    interfaces.ICacheStore
	Notifier interfaces.INotifier
	Clock    func() time.Time
	Logger   *logger.Logger
}

// -----------------------------------------------------------------------------

func NewResponder(store interfaces.ICacheStore, notifier interfaces.INotifier, clock func() time.Time, log *logger.Logger) *Responder {
	if clock == nil {
		clock = time.Now
	}
	return &Responder{Store: store, Notifier: notifier, Clock: clock, Logger: log}
}

// -----------------------------------------------------------------------------

// GetOrFetch returns the cached JSON for key verbatim, or runs produce,
// caches its JSON for policy.TTL(now) and notifies listeners. Store errors
// never fail the request.
func (r *Responder) GetOrFetch(ctx context.Context, key string, policy interfaces.ITTLPolicy, updateType string, produce Producer) (json.RawMessage, error) {
	cached, found, err := r.Store.Get(ctx, key)
	switch {
	case err != nil:
		r.Logger.Warning("Cache get %s failed, treating as miss: %v", key, err)
	case found:
		r.Logger.Debug("Cache hit %s", key)
		return json.RawMessage(cached), nil
	}

	result, err := produce(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", key, err)
	}

	ttl := policy.TTL(r.Clock())
	if err := r.Store.Set(ctx, key, string(data), ttl); err != nil {
		r.Logger.Warning("Cache set %s failed: %v", key, err)
	} else {
		r.Logger.Debug("Cached %s for %s", key, ttl)
	}

	if r.Notifier != nil {
		r.Notifier.Publish(models.MUpdateMessage{
			DeviceID: BroadcastDevice,
			Type:     updateType,
			Data:     data,
		})
	}

	return data, nil
}
