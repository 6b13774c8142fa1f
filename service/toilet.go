package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/hojattop/hojattop-api/cache"
	"github.com/hojattop/hojattop-api/geo"
	"github.com/hojattop/hojattop-api/schema"
	"github.com/hojattop/hojattop-api/store"
)

// FetchResult is a toilet list together with where it came from. Timestamp
// is the cache write time for cached data and the fetch time otherwise.
type FetchResult struct {
	Toilets   []schema.Toilet `json:"toilets"`
	Source    schema.Source   `json:"source"`
	Timestamp int64           `json:"timestamp"`
}

type NearbyResult struct {
	Toilets   []schema.ToiletWithDistance `json:"toilets"`
	Source    schema.Source               `json:"source"`
	Timestamp int64                       `json:"timestamp"`
}

// ToiletService reads toilets cache first and writes rating changes
// through to both the remote store and the cache.
type ToiletService struct {
	store store.Toilet
	cache *cache.ToiletCache
	now   func() time.Time
}

func NewToiletService(s store.Toilet, c *cache.ToiletCache) *ToiletService {
	return &ToiletService{
		store: s,
		cache: c,
		now:   time.Now,
	}
}

// normalize fills the defaults of fields the remote document left out.
func (t *ToiletService) normalize(toilet schema.Toilet) schema.Toilet {
	if toilet.Features == nil {
		toilet.Features = &schema.Features{}
	}
	if toilet.Photos == nil {
		toilet.Photos = []string{}
	}
	if toilet.LastUpdated == 0 {
		toilet.LastUpdated = epochMillis(t.now())
	}
	return toilet
}

func (t *ToiletService) cachedResult(ctx context.Context) (FetchResult, bool) {
	toilets, ok := t.cache.Load(ctx)
	if !ok {
		return FetchResult{}, false
	}
	ts, _ := t.cache.Timestamp(ctx)
	return FetchResult{
		Toilets:   toilets,
		Source:    schema.SourceCache,
		Timestamp: ts,
	}, true
}

// FetchAll returns every toilet. A fresh cache is served unless
// forceRefresh is set. When the remote store fails a stale cache is served
// instead, and ErrDataUnavailable is returned when there is none.
func (t *ToiletService) FetchAll(ctx context.Context, forceRefresh bool) (FetchResult, error) {
	if !forceRefresh && t.cache.IsValid(ctx) {
		if result, ok := t.cachedResult(ctx); ok {
			return result, nil
		}
	}

	toilets, err := t.store.ListToilets(ctx)
	if err != nil {
		log.WithField("prefix", logPrefix).WithError(err).Warn("fetch toilets from network")
		if result, ok := t.cachedResult(ctx); ok {
			return result, nil
		}
		return FetchResult{Toilets: []schema.Toilet{}, Source: schema.SourceNone}, fmt.Errorf("%w: %s", ErrDataUnavailable, err)
	}

	normalized := make([]schema.Toilet, 0, len(toilets))
	for _, toilet := range toilets {
		normalized = append(normalized, t.normalize(toilet))
	}
	t.cache.Save(ctx, normalized)

	return FetchResult{
		Toilets:   normalized,
		Source:    schema.SourceNetwork,
		Timestamp: epochMillis(t.now()),
	}, nil
}

// FetchByID looks the toilet up in any cached list first, ignoring its age,
// unless forceRefresh is set. A remote failure or miss falls back to the
// cache once more.
func (t *ToiletService) FetchByID(ctx context.Context, id string, forceRefresh bool) (*schema.Toilet, error) {
	if !forceRefresh {
		if toilet, ok := t.cache.Find(ctx, id); ok {
			return toilet, nil
		}
	}

	toilet, err := t.store.GetToilet(ctx, id)
	if err == nil {
		normalized := t.normalize(*toilet)
		return &normalized, nil
	}
	if !errors.Is(err, store.ErrToiletNotFound) {
		log.WithField("prefix", logPrefix).WithField("toilet ID", id).WithError(err).Warn("fetch toilet from network")
	}

	if cached, ok := t.cache.Find(ctx, id); ok {
		return cached, nil
	}
	return nil, ErrToiletNotFound
}

// FetchNearby returns the toilets within maxDistanceKm of origin, nearest
// first. Distances are in meters.
func (t *ToiletService) FetchNearby(ctx context.Context, origin schema.Location, maxDistanceKm float64, forceRefresh bool) (NearbyResult, error) {
	result, err := t.FetchAll(ctx, forceRefresh)
	if err != nil {
		return NearbyResult{Toilets: []schema.ToiletWithDistance{}, Source: result.Source}, err
	}

	limit := maxDistanceKm * 1000
	nearby := make([]schema.ToiletWithDistance, 0, len(result.Toilets))
	for _, toilet := range result.Toilets {
		d := geo.DistanceMeters(origin, toilet.Coordinate())
		if d > limit {
			continue
		}
		nearby = append(nearby, schema.ToiletWithDistance{Toilet: toilet, Distance: d})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].Distance < nearby[j].Distance
	})

	return NearbyResult{
		Toilets:   nearby,
		Source:    result.Source,
		Timestamp: result.Timestamp,
	}, nil
}

// FetchAllForMap returns every toilet with a zero distance.
func (t *ToiletService) FetchAllForMap(ctx context.Context, forceRefresh bool) (NearbyResult, error) {
	result, err := t.FetchAll(ctx, forceRefresh)
	if err != nil {
		return NearbyResult{Toilets: []schema.ToiletWithDistance{}, Source: result.Source}, err
	}

	toilets := make([]schema.ToiletWithDistance, 0, len(result.Toilets))
	for _, toilet := range result.Toilets {
		toilets = append(toilets, schema.ToiletWithDistance{Toilet: toilet})
	}

	return NearbyResult{
		Toilets:   toilets,
		Source:    result.Source,
		Timestamp: result.Timestamp,
	}, nil
}

// RecordRating writes new rating aggregates to the remote store and then
// patches the cached copy in place.
func (t *ToiletService) RecordRating(ctx context.Context, id string, rating float64, reviewCount int) error {
	lastUpdated := epochMillis(t.now())
	if err := t.store.UpdateToiletRating(ctx, id, rating, reviewCount, lastUpdated); err != nil {
		if errors.Is(err, store.ErrToiletNotFound) {
			return ErrToiletNotFound
		}
		return err
	}

	t.cache.Patch(ctx, id, func(toilet *schema.Toilet) {
		toilet.Rating = rating
		toilet.ReviewCount = reviewCount
		toilet.LastUpdated = lastUpdated
	})
	return nil
}

// Create inserts a toilet and appends it to the cached list when one exists.
func (t *ToiletService) Create(ctx context.Context, toilet schema.Toilet) (string, error) {
	toilet.LastUpdated = epochMillis(t.now())

	id, err := t.store.CreateToilet(ctx, toilet)
	if err != nil {
		log.WithField("prefix", logPrefix).WithField("name", toilet.Name).WithError(err).Error("create toilet")
		return "", err
	}
	toilet.ID = id

	t.cache.Append(ctx, toilet)
	return id, nil
}

// CacheTimestamp reports when the toilet list was last cached.
func (t *ToiletService) CacheTimestamp(ctx context.Context) (int64, bool) {
	return t.cache.Timestamp(ctx)
}

// ClearCache drops the cached toilet list.
func (t *ToiletService) ClearCache(ctx context.Context) {
	t.cache.Clear(ctx)
}
