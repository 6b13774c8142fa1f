package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/hojattop/hojattop-api/consts"
	"github.com/hojattop/hojattop-api/schema"
)

const logPrefix = "cache"

// Cache stores JSON payloads in a KeyValueStore wrapped in a timestamped
// envelope. Storage failures are logged and never returned: a broken cache
// behaves like an empty one.
type Cache struct {
	store KeyValueStore
	ttl   time.Duration
	now   func() time.Time
	keys  []string
}

type Option func(*Cache)

// WithClock replaces time.Now, mainly for expiry tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithManagedKeys sets the keys removed by ClearAll.
func WithManagedKeys(keys ...string) Option {
	return func(c *Cache) {
		c.keys = keys
	}
}

func New(store KeyValueStore, opts ...Option) *Cache {
	c := &Cache{
		store: store,
		ttl:   consts.CacheTTL,
		now:   time.Now,
		keys:  consts.ManagedCacheKeys,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Now returns the cache clock in epoch milliseconds.
func (c *Cache) Now() int64 {
	return c.now().UnixNano() / int64(time.Millisecond)
}

// Set replaces the entry under key with data.
func (c *Cache) Set(ctx context.Context, key string, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		log.WithField("prefix", logPrefix).WithField("key", key).WithError(err).Error("fail to encode cache data")
		return
	}

	envelope, err := json.Marshal(schema.CacheEnvelope{
		Data:      payload,
		Timestamp: c.Now(),
		Version:   consts.CacheVersion,
	})
	if err != nil {
		log.WithField("prefix", logPrefix).WithField("key", key).WithError(err).Error("fail to encode cache envelope")
		return
	}

	if err := c.store.Set(ctx, key, string(envelope)); err != nil {
		log.WithField("prefix", logPrefix).WithField("key", key).WithError(err).Error("fail to write cache")
	}
}

func (c *Cache) envelope(ctx context.Context, key string) (*schema.CacheEnvelope, bool) {
	raw, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			log.WithField("prefix", logPrefix).WithField("key", key).WithError(err).Error("fail to read cache")
		}
		return nil, false
	}

	var e schema.CacheEnvelope
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		log.WithField("prefix", logPrefix).WithField("key", key).WithError(err).Warn("corrupted cache entry")
		return nil, false
	}
	return &e, true
}

// Get decodes the cached data under key into v. It reports false when the
// entry is absent or cannot be decoded.
func (c *Cache) Get(ctx context.Context, key string, v interface{}) bool {
	e, ok := c.envelope(ctx, key)
	if !ok || len(e.Data) == 0 {
		return false
	}

	if err := json.Unmarshal(e.Data, v); err != nil {
		log.WithField("prefix", logPrefix).WithField("key", key).WithError(err).Warn("fail to decode cache data")
		return false
	}
	return true
}

// IsValid reports whether key holds an entry younger than the TTL.
func (c *Cache) IsValid(ctx context.Context, key string) bool {
	e, ok := c.envelope(ctx, key)
	if !ok {
		return false
	}
	return c.Now()-e.Timestamp < c.ttl.Milliseconds()
}

// Timestamp returns when key was last written, in epoch milliseconds.
func (c *Cache) Timestamp(ctx context.Context, key string) (int64, bool) {
	e, ok := c.envelope(ctx, key)
	if !ok {
		return 0, false
	}
	return e.Timestamp, true
}

func (c *Cache) Clear(ctx context.Context, key string) {
	if err := c.store.Remove(ctx, key); err != nil {
		log.WithField("prefix", logPrefix).WithField("key", key).WithError(err).Error("fail to clear cache")
	}
}

// ClearAll removes every managed key.
func (c *Cache) ClearAll(ctx context.Context) {
	if err := c.store.MultiRemove(ctx, c.keys); err != nil {
		log.WithField("prefix", logPrefix).WithError(err).Error("fail to clear all cache")
	}
}
