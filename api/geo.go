package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hojattop/hojattop-api/consts"
	"github.com/hojattop/hojattop-api/geo"
	"github.com/hojattop/hojattop-api/schema"
)

// parseGeoPosition will parse latitude and longitude from the geo-position
// string "lat,lon". A semicolon is not usable as the separator because
// net/url drops query pairs that contain one.
func parseGeoPosition(geoPosition string) (schema.Location, error) {
	positions := strings.Split(geoPosition, ",")

	if len(positions) != 2 {
		return schema.Location{}, fmt.Errorf("invalid geo-position value")
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(positions[0]), 64)
	if err != nil {
		return schema.Location{}, err
	}

	long, err := strconv.ParseFloat(strings.TrimSpace(positions[1]), 64)
	if err != nil {
		return schema.Location{}, err
	}

	loc := schema.Location{Latitude: lat, Longitude: long}
	if err := checkCoordinate(loc); err != nil {
		return schema.Location{}, err
	}

	return loc, nil
}

func checkCoordinate(loc schema.Location) error {
	if loc.Latitude < -90 || loc.Latitude > 90 || loc.Longitude < -180 || loc.Longitude > 180 {
		return fmt.Errorf("geo-position out of range")
	}
	return nil
}

// resolveOrigin picks the origin of a distance query: an explicit position
// first, then an address lookup, then the position provider with the city
// centre as the last resort.
func (s *Server) resolveOrigin(ctx context.Context, geoPosition, query string) (schema.Location, error) {
	if geoPosition != "" {
		return parseGeoPosition(geoPosition)
	}

	if query != "" {
		if s.searcher == nil {
			return schema.Location{}, geo.ErrLocationNotFound
		}
		return s.searcher.LookupCoordinate(ctx, query)
	}

	origin, err := geo.ResolveOrigin(ctx, s.position, s.defaultOrigin)
	if err != nil {
		log.WithField("prefix", "gin").WithError(err).Debug("use default origin")
	}
	return origin, nil
}

func (s *Server) mapRegion(c *gin.Context) {
	var params struct {
		GeoPosition string  `form:"geo"`
		Radius      float64 `form:"radius"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	center, err := s.resolveOrigin(c, params.GeoPosition, "")
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	radius := params.Radius
	if radius <= 0 {
		radius = consts.DefaultNearbyRadiusKm
	}

	log.WithFields(logrus.Fields{
		"prefix": "gin",
		"center": center,
		"radius": radius,
	}).Debug("map region")

	c.JSON(http.StatusOK, geo.MapRegion(center, radius))
}
