package service

import (
	"github.com/hojattop/hojattop-api/schema"
)

// ApplyFilters keeps the records matching every set filter. Records without
// features never match. MaxDistance is in km and only applies to records
// with a positive distance.
func ApplyFilters(records []schema.ToiletWithDistance, filters schema.ToiletFilters) []schema.ToiletWithDistance {
	result := make([]schema.ToiletWithDistance, 0, len(records))
	for _, r := range records {
		if matchFilters(r, filters) {
			result = append(result, r)
		}
	}
	return result
}

func matchFilters(r schema.ToiletWithDistance, filters schema.ToiletFilters) bool {
	f := r.Features
	if f == nil {
		return false
	}

	if filters.IsAccessible && !f.IsAccessible {
		return false
	}
	if filters.HasBabyChanging && !f.HasBabyChanging {
		return false
	}
	if filters.HasAblution && !f.HasAblution {
		return false
	}
	if filters.IsFree && !f.IsFree {
		return false
	}
	if filters.MinRating > 0 && r.Rating < filters.MinRating {
		return false
	}
	if filters.MaxDistance > 0 && r.Distance > 0 && r.Distance > filters.MaxDistance*1000 {
		return false
	}
	return true
}
