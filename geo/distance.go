package geo

import (
	"math"
	"strconv"

	"github.com/hojattop/hojattop-api/consts"
	"github.com/hojattop/hojattop-api/schema"
	"github.com/hojattop/hojattop-api/utils"
)

// EarthRadiusKm is the mean earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

func ToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func ToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// DistanceKm returns the great-circle distance between a and b in kilometers.
func DistanceKm(a, b schema.Location) float64 {
	dLat := ToRadians(b.Latitude - a.Latitude)
	dLon := ToRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(ToRadians(a.Latitude))*math.Cos(ToRadians(b.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// DistanceMeters returns the great-circle distance between a and b in meters.
func DistanceMeters(a, b schema.Location) float64 {
	return DistanceKm(a, b) * 1000
}

// FormatDistance renders a distance with the default language's unit labels:
// whole meters below one kilometer, otherwise kilometers with one decimal.
func FormatDistance(km float64) string {
	return FormatDistanceIn(km, utils.DefaultLanguage)
}

// FormatDistanceIn is FormatDistance with the unit labels of lang.
func FormatDistanceIn(km float64, lang string) string {
	if km < 1 {
		return utils.Translate(lang, "distance.meters", map[string]interface{}{
			"Value": strconv.FormatFloat(math.Round(km*1000), 'f', 0, 64),
		})
	}
	return utils.Translate(lang, "distance.kilometers", map[string]interface{}{
		"Value": strconv.FormatFloat(km, 'f', 1, 64),
	})
}

// MapRegion returns a viewport around center wide enough to show radiusKm in
// every direction. Near the poles the longitude delta grows without bound.
func MapRegion(center schema.Location, radiusKm float64) schema.Region {
	return schema.Region{
		Latitude:       center.Latitude,
		Longitude:      center.Longitude,
		LatitudeDelta:  radiusKm / consts.KmPerDegree,
		LongitudeDelta: radiusKm / (consts.KmPerDegree * math.Cos(ToRadians(center.Latitude))),
	}
}
