package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/hojattop/hojattop-api/cache"
	"github.com/hojattop/hojattop-api/geo"
	"github.com/hojattop/hojattop-api/schema"
	"github.com/hojattop/hojattop-api/store"
	"github.com/hojattop/hojattop-api/store/mocks"
)

var (
	baseTime = time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)

	nearTashkent = schema.Toilet{
		ID:        "near",
		Name:      "Near",
		Latitude:  41.3000,
		Longitude: 69.2410,
		Rating:    4.5,
		Features:  &schema.Features{IsFree: true, IsAccessible: true},
	}
	chorsu = schema.Toilet{
		ID:        "chorsu",
		Name:      "Chorsu",
		Latitude:  41.3260,
		Longitude: 69.2350,
		Rating:    3,
		Features:  &schema.Features{HasAblution: true},
	}
	minorMosque = schema.Toilet{
		ID:        "minor",
		Name:      "Minor",
		Latitude:  41.3200,
		Longitude: 69.2544,
		Rating:    2,
		Features:  &schema.Features{HasBabyChanging: true, IsFree: true},
	}
	yunusabad = schema.Toilet{
		ID:        "yunusabad",
		Name:      "Yunusabad",
		Latitude:  41.3500,
		Longitude: 69.2900,
		Features:  &schema.Features{IsFree: true},
	}
	samarkand = schema.Toilet{
		ID:        "samarkand",
		Name:      "Registan",
		Latitude:  39.6542,
		Longitude: 66.9597,
		Features:  &schema.Features{},
	}
)

type ToiletServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockStore *mocks.MockStore
	now       time.Time
	cache     *cache.ToiletCache
	service   *ToiletService
}

func (s *ToiletServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockStore = mocks.NewMockStore(s.ctrl)
	s.now = baseTime

	clock := func() time.Time { return s.now }
	s.cache = cache.NewToiletCache(cache.New(cache.NewMemoryStore(), cache.WithClock(clock)))
	s.service = NewToiletService(s.mockStore, s.cache)
	s.service.now = clock
}

func (s *ToiletServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ToiletServiceTestSuite) nowMillis() int64 {
	return epochMillis(s.now)
}

func (s *ToiletServiceTestSuite) TestFetchAllFromNetworkNormalizes() {
	ctx := context.Background()
	s.mockStore.EXPECT().ListToilets(gomock.Any()).Return([]schema.Toilet{
		{ID: "bare", Latitude: 41.3, Longitude: 69.2},
		{ID: "full", Name: "Full", Photos: []string{"a.jpg"}, LastUpdated: 1000, Features: &schema.Features{IsFree: true}},
	}, nil)

	result, err := s.service.FetchAll(ctx, false)
	s.NoError(err)
	s.Equal(schema.SourceNetwork, result.Source)
	s.Equal(s.nowMillis(), result.Timestamp)
	s.Require().Len(result.Toilets, 2)

	bare := result.Toilets[0]
	s.Equal("", bare.Name)
	s.Equal(0.0, bare.Rating)
	s.Equal(0, bare.ReviewCount)
	s.Equal(&schema.Features{}, bare.Features)
	s.Equal([]string{}, bare.Photos)
	s.Equal(s.nowMillis(), bare.LastUpdated)

	full := result.Toilets[1]
	s.Equal([]string{"a.jpg"}, full.Photos)
	s.Equal(int64(1000), full.LastUpdated)
	s.True(full.Features.IsFree)

	cached, ok := s.cache.Load(ctx)
	s.True(ok)
	s.Equal(result.Toilets, cached)
}

func (s *ToiletServiceTestSuite) TestFetchAllServesValidCache() {
	ctx := context.Background()
	s.cache.Save(ctx, []schema.Toilet{chorsu})
	savedAt := s.nowMillis()

	s.now = s.now.Add(59 * time.Minute)

	result, err := s.service.FetchAll(ctx, false)
	s.NoError(err)
	s.Equal(schema.SourceCache, result.Source)
	s.Equal(savedAt, result.Timestamp)
	s.Equal([]schema.Toilet{chorsu}, result.Toilets)
}

func (s *ToiletServiceTestSuite) TestFetchAllForceRefreshSkipsCache() {
	ctx := context.Background()
	s.cache.Save(ctx, []schema.Toilet{chorsu})
	s.mockStore.EXPECT().ListToilets(gomock.Any()).Return([]schema.Toilet{chorsu, minorMosque}, nil)

	result, err := s.service.FetchAll(ctx, true)
	s.NoError(err)
	s.Equal(schema.SourceNetwork, result.Source)
	s.Len(result.Toilets, 2)
}

func (s *ToiletServiceTestSuite) TestFetchAllExpiredCacheRefetches() {
	ctx := context.Background()
	s.cache.Save(ctx, []schema.Toilet{chorsu})
	s.now = s.now.Add(61 * time.Minute)
	s.mockStore.EXPECT().ListToilets(gomock.Any()).Return([]schema.Toilet{minorMosque}, nil)

	result, err := s.service.FetchAll(ctx, false)
	s.NoError(err)
	s.Equal(schema.SourceNetwork, result.Source)
	s.Require().Len(result.Toilets, 1)
	s.Equal("minor", result.Toilets[0].ID)

	ts, ok := s.service.CacheTimestamp(ctx)
	s.True(ok)
	s.Equal(s.nowMillis(), ts)
}

func (s *ToiletServiceTestSuite) TestFetchAllNetworkFailureServesStaleCache() {
	ctx := context.Background()
	s.cache.Save(ctx, []schema.Toilet{chorsu})
	savedAt := s.nowMillis()
	s.now = s.now.Add(2 * time.Hour)
	s.mockStore.EXPECT().ListToilets(gomock.Any()).Return(nil, fmt.Errorf("unavailable"))

	result, err := s.service.FetchAll(ctx, false)
	s.NoError(err)
	s.Equal(schema.SourceCache, result.Source)
	s.Equal(savedAt, result.Timestamp)
	s.Equal([]schema.Toilet{chorsu}, result.Toilets)
}

func (s *ToiletServiceTestSuite) TestFetchAllNetworkFailureWithoutCache() {
	s.mockStore.EXPECT().ListToilets(gomock.Any()).Return(nil, fmt.Errorf("unavailable"))

	result, err := s.service.FetchAll(context.Background(), false)
	s.ErrorIs(err, ErrDataUnavailable)
	s.Equal(schema.SourceNone, result.Source)
	s.Len(result.Toilets, 0)
}

func (s *ToiletServiceTestSuite) TestFetchByIDFromCacheIgnoresAge() {
	ctx := context.Background()
	s.cache.Save(ctx, []schema.Toilet{chorsu, minorMosque})
	s.now = s.now.Add(3 * time.Hour)

	toilet, err := s.service.FetchByID(ctx, "minor", false)
	s.NoError(err)
	s.Equal(minorMosque, *toilet)
}

func (s *ToiletServiceTestSuite) TestFetchByIDFromNetwork() {
	ctx := context.Background()
	remote := chorsu
	remote.Photos = nil
	s.mockStore.EXPECT().GetToilet(gomock.Any(), "chorsu").Return(&remote, nil)

	toilet, err := s.service.FetchByID(ctx, "chorsu", false)
	s.NoError(err)
	s.Equal("Chorsu", toilet.Name)
	s.Equal([]string{}, toilet.Photos)
}

func (s *ToiletServiceTestSuite) TestFetchByIDForceRefreshSkipsCache() {
	ctx := context.Background()
	s.cache.Save(ctx, []schema.Toilet{chorsu})

	updated := chorsu
	updated.Rating = 4.8
	s.mockStore.EXPECT().GetToilet(gomock.Any(), "chorsu").Return(&updated, nil)

	toilet, err := s.service.FetchByID(ctx, "chorsu", true)
	s.NoError(err)
	s.Equal(4.8, toilet.Rating)
}

func (s *ToiletServiceTestSuite) TestFetchByIDNetworkFailureFallsBackToCache() {
	ctx := context.Background()
	s.cache.Save(ctx, []schema.Toilet{chorsu})
	s.mockStore.EXPECT().GetToilet(gomock.Any(), "chorsu").Return(nil, fmt.Errorf("unavailable"))

	toilet, err := s.service.FetchByID(ctx, "chorsu", true)
	s.NoError(err)
	s.Equal(chorsu, *toilet)
}

func (s *ToiletServiceTestSuite) TestFetchByIDNotFound() {
	s.mockStore.EXPECT().GetToilet(gomock.Any(), "missing").Return(nil, store.ErrToiletNotFound)

	toilet, err := s.service.FetchByID(context.Background(), "missing", false)
	s.Nil(toilet)
	s.ErrorIs(err, ErrToiletNotFound)
}

func (s *ToiletServiceTestSuite) TestFetchNearby() {
	ctx := context.Background()
	s.mockStore.EXPECT().ListToilets(gomock.Any()).Return([]schema.Toilet{samarkand, chorsu, yunusabad, minorMosque, nearTashkent}, nil)

	result, err := s.service.FetchNearby(ctx, geo.TashkentCenter, 5, false)
	s.NoError(err)
	s.Equal(schema.SourceNetwork, result.Source)
	s.Require().Len(result.Toilets, 3)

	s.Equal("near", result.Toilets[0].ID)
	s.Equal("minor", result.Toilets[1].ID)
	s.Equal("chorsu", result.Toilets[2].ID)

	for i, t := range result.Toilets {
		s.LessOrEqual(t.Distance, 5000.0)
		if i > 0 {
			s.LessOrEqual(result.Toilets[i-1].Distance, t.Distance)
		}
	}
	s.InDelta(2573.5, result.Toilets[1].Distance, 1)
}

func (s *ToiletServiceTestSuite) TestFetchNearbyKeepsInputOrderOnTies() {
	first := chorsu
	first.ID = "first"
	second := chorsu
	second.ID = "second"
	s.mockStore.EXPECT().ListToilets(gomock.Any()).Return([]schema.Toilet{first, second}, nil)

	result, err := s.service.FetchNearby(context.Background(), geo.TashkentCenter, 5, false)
	s.NoError(err)
	s.Require().Len(result.Toilets, 2)
	s.Equal("first", result.Toilets[0].ID)
	s.Equal("second", result.Toilets[1].ID)
}

func (s *ToiletServiceTestSuite) TestFetchNearbyWithoutData() {
	s.mockStore.EXPECT().ListToilets(gomock.Any()).Return(nil, fmt.Errorf("unavailable"))

	result, err := s.service.FetchNearby(context.Background(), geo.TashkentCenter, 5, false)
	s.ErrorIs(err, ErrDataUnavailable)
	s.Equal(schema.SourceNone, result.Source)
	s.Len(result.Toilets, 0)
}

func (s *ToiletServiceTestSuite) TestFetchAllForMap() {
	ctx := context.Background()
	s.cache.Save(ctx, []schema.Toilet{samarkand, chorsu})

	result, err := s.service.FetchAllForMap(ctx, false)
	s.NoError(err)
	s.Equal(schema.SourceCache, result.Source)
	s.Require().Len(result.Toilets, 2)
	for _, t := range result.Toilets {
		s.Equal(0.0, t.Distance)
	}
	s.Equal("samarkand", result.Toilets[0].ID)
}

func (s *ToiletServiceTestSuite) TestRecordRatingPatchesCache() {
	ctx := context.Background()
	s.cache.Save(ctx, []schema.Toilet{chorsu, minorMosque})
	s.now = s.now.Add(time.Minute)
	s.mockStore.EXPECT().UpdateToiletRating(gomock.Any(), "chorsu", 3.0, 2, s.nowMillis()).Return(nil)

	s.NoError(s.service.RecordRating(ctx, "chorsu", 3.0, 2))

	toilet, ok := s.cache.Find(ctx, "chorsu")
	s.True(ok)
	s.Equal(3.0, toilet.Rating)
	s.Equal(2, toilet.ReviewCount)
	s.Equal(s.nowMillis(), toilet.LastUpdated)

	other, ok := s.cache.Find(ctx, "minor")
	s.True(ok)
	s.Equal(minorMosque, *other)
}

func (s *ToiletServiceTestSuite) TestRecordRatingRemoteFailureKeepsCache() {
	ctx := context.Background()
	s.cache.Save(ctx, []schema.Toilet{chorsu})
	s.mockStore.EXPECT().UpdateToiletRating(gomock.Any(), "chorsu", 5.0, 1, gomock.Any()).Return(store.ErrToiletNotFound)

	s.ErrorIs(s.service.RecordRating(ctx, "chorsu", 5.0, 1), ErrToiletNotFound)

	toilet, ok := s.cache.Find(ctx, "chorsu")
	s.True(ok)
	s.Equal(chorsu.Rating, toilet.Rating)
}

func (s *ToiletServiceTestSuite) TestCreateAppendsToCachedList() {
	ctx := context.Background()
	s.cache.Save(ctx, []schema.Toilet{chorsu})

	draft := schema.Toilet{Name: "New", Features: &schema.Features{}}
	s.mockStore.EXPECT().CreateToilet(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, toilet schema.Toilet) (string, error) {
			s.Equal(s.nowMillis(), toilet.LastUpdated)
			return "new-id", nil
		})

	id, err := s.service.Create(ctx, draft)
	s.NoError(err)
	s.Equal("new-id", id)

	cached, ok := s.cache.Load(ctx)
	s.True(ok)
	s.Require().Len(cached, 2)
	s.Equal("new-id", cached[1].ID)
	s.Equal(s.nowMillis(), cached[1].LastUpdated)
}

func (s *ToiletServiceTestSuite) TestCreateWithoutCachedList() {
	ctx := context.Background()
	s.mockStore.EXPECT().CreateToilet(gomock.Any(), gomock.Any()).Return("new-id", nil)

	_, err := s.service.Create(ctx, schema.Toilet{Name: "New"})
	s.NoError(err)

	_, ok := s.cache.Load(ctx)
	s.False(ok)
}

func (s *ToiletServiceTestSuite) TestCreateFailure() {
	s.mockStore.EXPECT().CreateToilet(gomock.Any(), gomock.Any()).Return("", fmt.Errorf("unavailable"))

	id, err := s.service.Create(context.Background(), schema.Toilet{Name: "New"})
	s.Error(err)
	s.Empty(id)
}

func (s *ToiletServiceTestSuite) TestClearCache() {
	ctx := context.Background()
	s.cache.Save(ctx, []schema.Toilet{chorsu})

	s.service.ClearCache(ctx)

	_, ok := s.service.CacheTimestamp(ctx)
	s.False(ok)
}

func TestToiletServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ToiletServiceTestSuite))
}
