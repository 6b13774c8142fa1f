package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/hojattop/hojattop-api/cache"
	"github.com/hojattop/hojattop-api/geo"
	geomocks "github.com/hojattop/hojattop-api/geo/mocks"
	"github.com/hojattop/hojattop-api/schema"
	"github.com/hojattop/hojattop-api/service"
	"github.com/hojattop/hojattop-api/store"
	storemocks "github.com/hojattop/hojattop-api/store/mocks"
)

var testToilets = []schema.Toilet{
	{
		ID:        "near",
		Name:      "Amir Temur",
		Latitude:  41.3000,
		Longitude: 69.2410,
		Features:  &schema.Features{IsFree: true, IsAccessible: true},
	},
	{
		ID:        "chorsu",
		Name:      "Chorsu",
		Latitude:  41.3260,
		Longitude: 69.2350,
		Features:  &schema.Features{HasAblution: true},
	},
	{
		ID:        "minor",
		Name:      "Minor",
		Latitude:  41.3200,
		Longitude: 69.2544,
		Features:  &schema.Features{HasBabyChanging: true, IsFree: true},
	},
	{
		ID:        "yunusabad",
		Name:      "Yunusabad",
		Latitude:  41.3500,
		Longitude: 69.2900,
		Features:  &schema.Features{IsFree: true},
	},
}

type errorBody struct {
	Error  ErrorResponse            `json:"error"`
	Errors []schema.ValidationError `json:"errors"`
}

type toiletsBody struct {
	Toilets []struct {
		schema.ToiletWithDistance
		DistanceLabel string `json:"distanceLabel"`
	} `json:"toilets"`
	Source    schema.Source   `json:"source"`
	Timestamp int64           `json:"timestamp"`
	Origin    schema.Location `json:"origin"`
}

type ServerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockSearcher *geomocks.MockLocationSearcher
	store        store.Store
	router       *gin.Engine
}

func (s *ServerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *ServerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSearcher = geomocks.NewMockLocationSearcher(s.ctrl)

	s.store = store.NewMemoryStore()
	for _, t := range testToilets {
		if _, err := s.store.CreateToilet(context.Background(), t); err != nil {
			s.T().Fatal(err)
		}
	}

	s.router = s.newRouter(s.store)
}

func (s *ServerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServerTestSuite) newRouter(backend store.Store) *gin.Engine {
	c := cache.New(cache.NewMemoryStore())
	toilets := service.NewToiletService(backend, cache.NewToiletCache(c))
	reviews := service.NewReviewService(backend, cache.NewReviewCache(c), toilets)

	server := NewServer(toilets, reviews, c,
		WithLocationSearcher(s.mockSearcher),
		WithTraceMode(true),
	)
	return server.setupRouter()
}

func (s *ServerTestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var payload bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&payload).Encode(body))
	}

	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *ServerTestSuite) decode(w *httptest.ResponseRecorder, v interface{}) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), v))
}

func (s *ServerTestSuite) TestListToilets() {
	w := s.request(http.MethodGet, "/api/toilets", nil)
	s.Equal(http.StatusOK, w.Code)

	var body service.FetchResult
	s.decode(w, &body)
	s.Equal(schema.SourceNetwork, body.Source)
	s.Len(body.Toilets, 4)

	w = s.request(http.MethodGet, "/api/toilets", nil)
	s.decode(w, &body)
	s.Equal(schema.SourceCache, body.Source)
}

func (s *ServerTestSuite) TestListToiletsUnavailable() {
	mockStore := storemocks.NewMockStore(s.ctrl)
	mockStore.EXPECT().ListToilets(gomock.Any()).Return(nil, fmt.Errorf("unavailable"))
	s.router = s.newRouter(mockStore)

	w := s.request(http.MethodGet, "/api/toilets", nil)
	s.Equal(http.StatusServiceUnavailable, w.Code)

	var body errorBody
	s.decode(w, &body)
	s.Equal(errorDataUnavailable.Code, body.Error.Code)
}

func (s *ServerTestSuite) TestNearbyWithGeoPosition() {
	w := s.request(http.MethodGet, "/api/toilets/nearby?geo=41.3200,69.2544&radius=3&lang=ru", nil)
	s.Equal(http.StatusOK, w.Code)

	var body toiletsBody
	s.decode(w, &body)
	s.Equal(schema.SourceNetwork, body.Source)
	s.Equal(schema.Location{Latitude: 41.3200, Longitude: 69.2544}, body.Origin)
	s.Require().Len(body.Toilets, 3)
	s.Equal("minor", body.Toilets[0].ID)
	s.Equal(0.0, body.Toilets[0].Distance)
	s.Equal("chorsu", body.Toilets[1].ID)
	s.InDelta(1754, body.Toilets[1].Distance, 30)
	s.Equal("1.8км", body.Toilets[1].DistanceLabel)
	s.Equal("near", body.Toilets[2].ID)
	s.InDelta(2490, body.Toilets[2].Distance, 30)
}

func (s *ServerTestSuite) TestNearbyWithFilters() {
	w := s.request(http.MethodGet, "/api/toilets/nearby?geo=41.3200,69.2544&radius=3&free=true&lang=en", nil)
	s.Equal(http.StatusOK, w.Code)

	var body toiletsBody
	s.decode(w, &body)
	s.Equal(41.3200, body.Origin.Latitude)
	s.Require().Len(body.Toilets, 2)
	s.Equal("minor", body.Toilets[0].ID)
	s.Equal("near", body.Toilets[1].ID)
	s.Equal("2.5 km", body.Toilets[1].DistanceLabel)
}

func (s *ServerTestSuite) TestNearbyGeoPositionWithSemicolon() {
	w := s.request(http.MethodGet, "/api/toilets/nearby?geo=41.3200;69.2544", nil)
	s.Equal(http.StatusOK, w.Code)

	var body toiletsBody
	s.decode(w, &body)
	s.Equal(geo.TashkentCenter, body.Origin)
}

func (s *ServerTestSuite) TestNearbyWithAddressQuery() {
	s.mockSearcher.EXPECT().LookupCoordinate(gomock.Any(), "Chorsu").
		Return(schema.Location{Latitude: 41.3260, Longitude: 69.2350}, nil)

	w := s.request(http.MethodGet, "/api/toilets/nearby?q=Chorsu&radius=1", nil)
	s.Equal(http.StatusOK, w.Code)

	var body toiletsBody
	s.decode(w, &body)
	s.Equal(41.3260, body.Origin.Latitude)
	s.Require().Len(body.Toilets, 1)
	s.Equal("chorsu", body.Toilets[0].ID)
	s.Equal(0.0, body.Toilets[0].Distance)
	s.Equal("", body.Toilets[0].DistanceLabel)
}

func (s *ServerTestSuite) TestNearbyUnknownAddress() {
	s.mockSearcher.EXPECT().LookupCoordinate(gomock.Any(), "Atlantis").Return(schema.Location{}, geo.ErrLocationNotFound)

	w := s.request(http.MethodGet, "/api/toilets/nearby?q=Atlantis", nil)
	s.Equal(http.StatusNotFound, w.Code)

	var body errorBody
	s.decode(w, &body)
	s.Equal(errorUnknownLocation.Code, body.Error.Code)
}

func (s *ServerTestSuite) TestNearbyInvalidGeoPosition() {
	w := s.request(http.MethodGet, "/api/toilets/nearby?geo=41.2995", nil)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.request(http.MethodGet, "/api/toilets/nearby?geo=141.2995,69.2401", nil)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.request(http.MethodGet, "/api/geo/region?geo=41.3200,190", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ServerTestSuite) TestNearbyDefaultOrigin() {
	w := s.request(http.MethodGet, "/api/toilets/nearby", nil)
	s.Equal(http.StatusOK, w.Code)

	var body toiletsBody
	s.decode(w, &body)
	s.Equal(geo.TashkentCenter, body.Origin)
	s.Len(body.Toilets, 3)
}

func (s *ServerTestSuite) TestMapToilets() {
	w := s.request(http.MethodGet, "/api/toilets/map?accessible=true", nil)
	s.Equal(http.StatusOK, w.Code)

	var body toiletsBody
	s.decode(w, &body)
	s.Require().Len(body.Toilets, 1)
	s.Equal("near", body.Toilets[0].ID)
	s.Equal(0.0, body.Toilets[0].Distance)
}

func (s *ServerTestSuite) TestGetToilet() {
	w := s.request(http.MethodGet, "/api/toilets/chorsu", nil)
	s.Equal(http.StatusOK, w.Code)

	var toilet schema.Toilet
	s.decode(w, &toilet)
	s.Equal("Chorsu", toilet.Name)

	w = s.request(http.MethodGet, "/api/toilets/unknown", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *ServerTestSuite) TestCreateToilet() {
	w := s.request(http.MethodPost, "/api/toilets", schema.Toilet{
		Name:      "Magic City",
		Latitude:  41.3030,
		Longitude: 69.2460,
		Rating:    5,
		Features:  &schema.Features{IsFree: true},
	})
	s.Equal(http.StatusOK, w.Code)

	var body struct {
		ID string `json:"id"`
	}
	s.decode(w, &body)
	s.NotEmpty(body.ID)

	w = s.request(http.MethodGet, "/api/toilets/"+body.ID, nil)
	s.Equal(http.StatusOK, w.Code)

	var toilet schema.Toilet
	s.decode(w, &toilet)
	s.Equal("Magic City", toilet.Name)
	s.Equal(0.0, toilet.Rating)
	s.NotZero(toilet.LastUpdated)
}

func (s *ServerTestSuite) TestCreateToiletInvalid() {
	w := s.request(http.MethodPost, "/api/toilets", schema.Toilet{Name: "  "})
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.request(http.MethodPost, "/api/toilets", schema.Toilet{Name: "Somewhere", Latitude: 100})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ServerTestSuite) TestAddReview() {
	w := s.request(http.MethodPost, "/api/toilets/chorsu/reviews", schema.ReviewDraft{
		UserID:      "user-1",
		UserName:    "Bekzod",
		Rating:      4,
		Cleanliness: 5,
		FeatureMentions: &schema.FeatureMentions{
			Ablution: true,
		},
	})
	s.Equal(http.StatusOK, w.Code)

	var result service.AddResult
	s.decode(w, &result)
	s.True(result.Success)
	s.NotEmpty(result.ID)

	w = s.request(http.MethodGet, "/api/toilets/chorsu?refresh=true", nil)
	var toilet schema.Toilet
	s.decode(w, &toilet)
	s.Equal(4.0, toilet.Rating)
	s.Equal(1, toilet.ReviewCount)

	w = s.request(http.MethodGet, "/api/toilets/chorsu/reviews", nil)
	s.Equal(http.StatusOK, w.Code)
	var reviews service.ReviewResult
	s.decode(w, &reviews)
	s.Require().Len(reviews.Reviews, 1)
	s.Equal("Bekzod", reviews.Reviews[0].UserName)
	s.Equal("chorsu", reviews.Reviews[0].ToiletID)

	w = s.request(http.MethodGet, "/api/toilets/chorsu/reviews/statistics", nil)
	var stats schema.ReviewStatistics
	s.decode(w, &stats)
	s.Equal(1, stats.TotalReviews)
	s.Equal(5.0, stats.AverageCleanliness)
	s.Equal(1, stats.RatingDistribution[4])

	w = s.request(http.MethodGet, "/api/toilets/chorsu/reviews/features", nil)
	var counts schema.FeatureCounts
	s.decode(w, &counts)
	s.Equal(schema.FeatureCounts{Ablution: 1, Free: 1}, counts)
}

func (s *ServerTestSuite) TestAddReviewInvalid() {
	w := s.request(http.MethodPost, "/api/toilets/chorsu/reviews?lang=en", schema.ReviewDraft{Rating: 0})
	s.Equal(http.StatusBadRequest, w.Code)

	var body errorBody
	s.decode(w, &body)
	s.Equal(errorInvalidReview.Code, body.Error.Code)
	s.Require().Len(body.Errors, 1)
	s.Equal("rating", body.Errors[0].Field)
	s.Equal("Rating must be between 1 and 5", body.Errors[0].Message)
}

func (s *ServerTestSuite) TestListReviewsWithoutData() {
	w := s.request(http.MethodGet, "/api/toilets/near/reviews", nil)
	s.Equal(http.StatusOK, w.Code)

	var reviews service.ReviewResult
	s.decode(w, &reviews)
	s.Equal(schema.SourceNetwork, reviews.Source)
	s.Len(reviews.Reviews, 0)
}

func (s *ServerTestSuite) TestMapRegion() {
	w := s.request(http.MethodGet, "/api/geo/region?geo=41.3200,69.2544&radius=11.1", nil)
	s.Equal(http.StatusOK, w.Code)

	var region schema.Region
	s.decode(w, &region)
	s.Equal(41.3200, region.Latitude)
	s.Equal(69.2544, region.Longitude)
	s.InDelta(0.1, region.LatitudeDelta, 1e-9)
	s.InDelta(0.1331, region.LongitudeDelta, 1e-3)
}

func (s *ServerTestSuite) TestCacheStatusAndClear() {
	var status struct {
		Cached    bool  `json:"cached"`
		Timestamp int64 `json:"timestamp"`
	}

	w := s.request(http.MethodGet, "/api/cache", nil)
	s.decode(w, &status)
	s.False(status.Cached)

	s.request(http.MethodGet, "/api/toilets", nil)

	w = s.request(http.MethodGet, "/api/cache", nil)
	s.decode(w, &status)
	s.True(status.Cached)
	s.NotZero(status.Timestamp)

	w = s.request(http.MethodDelete, "/api/cache", nil)
	s.Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodGet, "/api/cache", nil)
	s.decode(w, &status)
	s.False(status.Cached)
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func TestParseGeoPosition(t *testing.T) {
	loc, err := parseGeoPosition("41.2995, 69.2401")
	if err != nil {
		t.Fatal(err)
	}
	if loc.Latitude != 41.2995 || loc.Longitude != 69.2401 {
		t.Fatalf("unexpected location %+v", loc)
	}

	for _, invalid := range []string{"", "41.2995", "41.2995;69.2401", "a,b", "41,69,1", "91,0", "0,-181"} {
		if _, err := parseGeoPosition(invalid); err == nil {
			t.Errorf("expected error for %q", invalid)
		}
	}
}
