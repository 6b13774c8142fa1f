package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hojattop/hojattop-api/schema"
	"github.com/hojattop/hojattop-api/service"
)

func (s *Server) listReviews(c *gin.Context) {
	var params fetchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	c.JSON(http.StatusOK, s.reviews.FetchForToilet(c, c.Param("toiletID"), params.Refresh))
}

func (s *Server) addReview(c *gin.Context) {
	var params fetchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var draft schema.ReviewDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	draft.ToiletID = c.Param("toiletID")

	if v := service.ValidateReview(draft, languageOrDefault(params.Language)); !v.IsValid {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":  errorInvalidReview,
			"errors": v.Errors,
		})
		return
	}

	result := s.reviews.Add(c, draft)
	if !result.Success {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorReviewNotSaved)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) reviewStatistics(c *gin.Context) {
	c.JSON(http.StatusOK, s.reviews.Statistics(c, c.Param("toiletID")))
}

func (s *Server) reviewFeatures(c *gin.Context) {
	c.JSON(http.StatusOK, s.reviews.FeatureCounts(c, c.Param("toiletID")))
}
