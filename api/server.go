package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hojattop/hojattop-api/cache"
	"github.com/hojattop/hojattop-api/geo"
	"github.com/hojattop/hojattop-api/schema"
	"github.com/hojattop/hojattop-api/service"
)

var log = logrus.StandardLogger()

// Server is the HTTP surface over the toilet and review services.
type Server struct {
	server    *http.Server
	traceMode bool

	toilets *service.ToiletService
	reviews *service.ReviewService
	cache   *cache.Cache

	// searcher turns a free-text address into an origin. It is optional.
	searcher geo.LocationSearcher
	// position is consulted when a nearby request carries no origin.
	position      geo.PositionProvider
	defaultOrigin schema.Location
}

type ServerOption func(*Server)

func WithTraceMode(trace bool) ServerOption {
	return func(s *Server) {
		s.traceMode = trace
	}
}

func WithLocationSearcher(searcher geo.LocationSearcher) ServerOption {
	return func(s *Server) {
		s.searcher = searcher
	}
}

func WithPositionProvider(position geo.PositionProvider) ServerOption {
	return func(s *Server) {
		s.position = position
	}
}

func NewServer(toilets *service.ToiletService, reviews *service.ReviewService, c *cache.Cache, opts ...ServerOption) *Server {
	s := &Server{
		toilets:       toilets,
		reviews:       reviews,
		cache:         c,
		defaultOrigin: geo.TashkentCenter,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run starts to listen on addr and blocks until the server is shut down.
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.DumpRequest)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	apiRoute := r.Group("/api")

	toiletRoute := apiRoute.Group("/toilets")
	{
		toiletRoute.GET("", s.listToilets)
		toiletRoute.POST("", s.createToilet)
		toiletRoute.GET("/map", s.mapToilets)
		toiletRoute.GET("/nearby", s.nearbyToilets)
		toiletRoute.GET("/:toiletID", s.getToilet)
		toiletRoute.GET("/:toiletID/reviews", s.listReviews)
		toiletRoute.POST("/:toiletID/reviews", s.addReview)
		toiletRoute.GET("/:toiletID/reviews/statistics", s.reviewStatistics)
		toiletRoute.GET("/:toiletID/reviews/features", s.reviewFeatures)
	}

	apiRoute.GET("/geo/region", s.mapRegion)

	cacheRoute := apiRoute.Group("/cache")
	{
		cacheRoute.GET("", s.cacheStatus)
		cacheRoute.DELETE("", s.clearCache)
	}

	return r
}
