package cache

import (
	"context"
	"sync"

	"github.com/hojattop/hojattop-api/consts"
	"github.com/hojattop/hojattop-api/schema"
)

// ToiletCache holds the whole toilet collection under one key. Every write
// replaces the full list.
type ToiletCache struct {
	mu    sync.Mutex
	cache *Cache
}

func NewToiletCache(c *Cache) *ToiletCache {
	return &ToiletCache{cache: c}
}

func (t *ToiletCache) Save(ctx context.Context, toilets []schema.Toilet) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cache.Set(ctx, consts.ToiletsCacheKey, toilets)
}

// Load returns the cached list regardless of its age.
func (t *ToiletCache) Load(ctx context.Context) ([]schema.Toilet, bool) {
	var toilets []schema.Toilet
	if !t.cache.Get(ctx, consts.ToiletsCacheKey, &toilets) || toilets == nil {
		return nil, false
	}
	return toilets, true
}

func (t *ToiletCache) IsValid(ctx context.Context) bool {
	return t.cache.IsValid(ctx, consts.ToiletsCacheKey)
}

func (t *ToiletCache) Timestamp(ctx context.Context) (int64, bool) {
	return t.cache.Timestamp(ctx, consts.ToiletsCacheKey)
}

// Find scans the cached list for id.
func (t *ToiletCache) Find(ctx context.Context, id string) (*schema.Toilet, bool) {
	toilets, ok := t.Load(ctx)
	if !ok {
		return nil, false
	}
	for i := range toilets {
		if toilets[i].ID == id {
			return &toilets[i], true
		}
	}
	return nil, false
}

// Append adds toilet to the cached list. Nothing is written when no list is
// cached yet.
func (t *ToiletCache) Append(ctx context.Context, toilet schema.Toilet) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	toilets, ok := t.Load(ctx)
	if !ok {
		return false
	}
	t.cache.Set(ctx, consts.ToiletsCacheKey, append(toilets, toilet))
	return true
}

// Patch applies fn to the cached toilet with id and rewrites the list.
func (t *ToiletCache) Patch(ctx context.Context, id string, fn func(*schema.Toilet)) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	toilets, ok := t.Load(ctx)
	if !ok {
		return false
	}

	patched := false
	for i := range toilets {
		if toilets[i].ID == id {
			fn(&toilets[i])
			patched = true
		}
	}
	if patched {
		t.cache.Set(ctx, consts.ToiletsCacheKey, toilets)
	}
	return patched
}

func (t *ToiletCache) Clear(ctx context.Context) {
	t.cache.Clear(ctx, consts.ToiletsCacheKey)
}
