package cache

import (
	"context"
	"sync"

	"github.com/hojattop/hojattop-api/consts"
	"github.com/hojattop/hojattop-api/schema"
)

// ReviewCache holds the reviews of every toilet under one key. Per-toilet
// reads filter the whole list.
type ReviewCache struct {
	mu    sync.Mutex
	cache *Cache
}

func NewReviewCache(c *Cache) *ReviewCache {
	return &ReviewCache{cache: c}
}

func (r *ReviewCache) Load(ctx context.Context) []schema.Review {
	var reviews []schema.Review
	if !r.cache.Get(ctx, consts.ReviewsCacheKey, &reviews) {
		return []schema.Review{}
	}
	return reviews
}

// ForToilet returns the cached reviews of one toilet in cached order.
func (r *ReviewCache) ForToilet(ctx context.Context, toiletID string) []schema.Review {
	result := []schema.Review{}
	for _, rv := range r.Load(ctx) {
		if rv.ToiletID == toiletID {
			result = append(result, rv)
		}
	}
	return result
}

func (r *ReviewCache) Append(ctx context.Context, review schema.Review) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cache.Set(ctx, consts.ReviewsCacheKey, append(r.Load(ctx), review))
}

// ReplaceForToilet drops every cached review of toiletID and stores reviews
// in their place. Reviews of other toilets are kept.
func (r *ReviewCache) ReplaceForToilet(ctx context.Context, toiletID string, reviews []schema.Review) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.Load(ctx)
	kept := make([]schema.Review, 0, len(all)+len(reviews))
	for _, rv := range all {
		if rv.ToiletID != toiletID {
			kept = append(kept, rv)
		}
	}
	r.cache.Set(ctx, consts.ReviewsCacheKey, append(kept, reviews...))
}

func (r *ReviewCache) Clear(ctx context.Context) {
	r.cache.Clear(ctx, consts.ReviewsCacheKey)
}
