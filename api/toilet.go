package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hojattop/hojattop-api/consts"
	"github.com/hojattop/hojattop-api/geo"
	"github.com/hojattop/hojattop-api/schema"
	"github.com/hojattop/hojattop-api/service"
	"github.com/hojattop/hojattop-api/utils"
)

type fetchParams struct {
	Refresh  bool   `form:"refresh"`
	Language string `form:"lang"`
}

func languageOrDefault(lang string) string {
	if lang == "" {
		return utils.DefaultLanguage
	}
	return lang
}

// toiletEntry is a toilet with its distance and a localized distance label.
// The label is empty when no distance is known.
type toiletEntry struct {
	schema.ToiletWithDistance
	DistanceLabel string `json:"distanceLabel,omitempty"`
}

func toiletEntries(toilets []schema.ToiletWithDistance, lang string) []toiletEntry {
	entries := make([]toiletEntry, 0, len(toilets))
	for _, t := range toilets {
		e := toiletEntry{ToiletWithDistance: t}
		if t.Distance > 0 {
			e.DistanceLabel = geo.FormatDistanceIn(t.Distance/1000, lang)
		}
		entries = append(entries, e)
	}
	return entries
}

func abortWithFetchError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrDataUnavailable) {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorDataUnavailable, err)
		return
	}
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
}

func (s *Server) listToilets(c *gin.Context) {
	var params fetchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	result, err := s.toilets.FetchAll(c, params.Refresh)
	if err != nil {
		abortWithFetchError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) mapToilets(c *gin.Context) {
	var params fetchParams
	var filters schema.ToiletFilters
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if err := c.ShouldBindQuery(&filters); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	result, err := s.toilets.FetchAllForMap(c, params.Refresh)
	if err != nil {
		abortWithFetchError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"toilets":   toiletEntries(service.ApplyFilters(result.Toilets, filters), languageOrDefault(params.Language)),
		"source":    result.Source,
		"timestamp": result.Timestamp,
	})
}

func (s *Server) nearbyToilets(c *gin.Context) {
	var params struct {
		GeoPosition string  `form:"geo"`
		Query       string  `form:"q"`
		Radius      float64 `form:"radius"`
		Refresh     bool    `form:"refresh"`
		Language    string  `form:"lang"`
	}
	var filters schema.ToiletFilters
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if err := c.ShouldBindQuery(&filters); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	origin, err := s.resolveOrigin(c, params.GeoPosition, params.Query)
	if err != nil {
		if errors.Is(err, geo.ErrLocationNotFound) {
			abortWithEncoding(c, http.StatusNotFound, errorUnknownLocation, err)
			return
		}
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	radius := params.Radius
	if radius <= 0 {
		radius = consts.DefaultNearbyRadiusKm
	}

	result, err := s.toilets.FetchNearby(c, origin, radius, params.Refresh)
	if err != nil {
		abortWithFetchError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"origin":    origin,
		"radius":    radius,
		"toilets":   toiletEntries(service.ApplyFilters(result.Toilets, filters), languageOrDefault(params.Language)),
		"source":    result.Source,
		"timestamp": result.Timestamp,
	})
}

func (s *Server) getToilet(c *gin.Context) {
	var params fetchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	toilet, err := s.toilets.FetchByID(c, c.Param("toiletID"), params.Refresh)
	if err != nil {
		if errors.Is(err, service.ErrToiletNotFound) {
			abortWithEncoding(c, http.StatusNotFound, errorUnknownToilet)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, toilet)
}

func (s *Server) createToilet(c *gin.Context) {
	var body schema.Toilet
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("name not provided"))
		return
	}
	if err := checkCoordinate(body.Coordinate()); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	// ratings are derived from reviews only
	body.ID = ""
	body.Rating = 0
	body.ReviewCount = 0

	id, err := s.toilets.Create(c, body)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}
