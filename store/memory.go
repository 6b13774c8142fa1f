package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/hojattop/hojattop-api/schema"
)

// memoryDB keeps documents in process memory. It backs local development
// and tests.
type memoryDB struct {
	sync.RWMutex
	toiletOrder []string
	toilets     map[string]schema.Toilet
	reviews     []schema.Review
}

func NewMemoryStore() Store {
	return &memoryDB{
		toilets: make(map[string]schema.Toilet),
	}
}

func (m *memoryDB) ListToilets(_ context.Context) ([]schema.Toilet, error) {
	m.RLock()
	defer m.RUnlock()

	toilets := make([]schema.Toilet, 0, len(m.toiletOrder))
	for _, id := range m.toiletOrder {
		toilets = append(toilets, m.toilets[id])
	}
	return toilets, nil
}

func (m *memoryDB) GetToilet(_ context.Context, id string) (*schema.Toilet, error) {
	m.RLock()
	defer m.RUnlock()

	t, ok := m.toilets[id]
	if !ok {
		return nil, ErrToiletNotFound
	}
	return &t, nil
}

func (m *memoryDB) CreateToilet(_ context.Context, toilet schema.Toilet) (string, error) {
	m.Lock()
	defer m.Unlock()

	if toilet.ID == "" {
		toilet.ID = uuid.New().String()
	}
	if _, ok := m.toilets[toilet.ID]; !ok {
		m.toiletOrder = append(m.toiletOrder, toilet.ID)
	}
	m.toilets[toilet.ID] = toilet
	return toilet.ID, nil
}

func (m *memoryDB) UpdateToiletRating(_ context.Context, id string, rating float64, reviewCount int, lastUpdated int64) error {
	m.Lock()
	defer m.Unlock()

	t, ok := m.toilets[id]
	if !ok {
		return ErrToiletNotFound
	}
	t.Rating = rating
	t.ReviewCount = reviewCount
	t.LastUpdated = lastUpdated
	m.toilets[id] = t
	return nil
}

func (m *memoryDB) ListReviewsOrdered(ctx context.Context, toiletID string, limit int64) ([]schema.Review, error) {
	reviews, _ := m.ListReviews(ctx, toiletID)
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt > reviews[j].CreatedAt
	})
	if limit > 0 && int64(len(reviews)) > limit {
		reviews = reviews[:limit]
	}
	return reviews, nil
}

func (m *memoryDB) ListReviews(_ context.Context, toiletID string) ([]schema.Review, error) {
	m.RLock()
	defer m.RUnlock()

	reviews := make([]schema.Review, 0)
	for _, r := range m.reviews {
		if r.ToiletID == toiletID {
			reviews = append(reviews, r)
		}
	}
	return reviews, nil
}

func (m *memoryDB) CreateReview(_ context.Context, review schema.Review) (string, error) {
	m.Lock()
	defer m.Unlock()

	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	m.reviews = append(m.reviews, review)
	return review.ID, nil
}
