package consts

import "time"

const (
	// CacheTTL is how long a cached payload is considered fresh.
	CacheTTL = time.Hour
	// CacheVersion is written into every cache envelope.
	CacheVersion = "1.0"

	ToiletsCacheKey = "@hojattop_toilets"
	ReviewsCacheKey = "@hojattop_reviews"

	MaxCommentLength = 500
	MinRating        = 1
	MaxRating        = 5

	// DefaultNearbyRadiusKm is used by the nearby query when no radius is given.
	DefaultNearbyRadiusKm = 5.0

	// KmPerDegree approximates one degree of latitude.
	KmPerDegree = 111.0

	// TashkentLatitude and TashkentLongitude mark the city centre (Amir Temur square).
	TashkentLatitude  = 41.2995
	TashkentLongitude = 69.2401
)

// ManagedCacheKeys lists every key owned by the cache layer.
var ManagedCacheKeys = []string{
	ToiletsCacheKey,
	ReviewsCacheKey,
}
