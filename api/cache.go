package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) cacheStatus(c *gin.Context) {
	ts, ok := s.toilets.CacheTimestamp(c)
	c.JSON(http.StatusOK, gin.H{
		"cached":    ok,
		"timestamp": ts,
	})
}

func (s *Server) clearCache(c *gin.Context) {
	s.cache.ClearAll(c)
	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
