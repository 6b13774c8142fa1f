package score

import (
	"math"

	"github.com/hojattop/hojattop-api/consts"
	"github.com/hojattop/hojattop-api/schema"
)

func emptyDistribution() map[int]int {
	d := make(map[int]int, consts.MaxRating-consts.MinRating+1)
	for star := consts.MinRating; star <= consts.MaxRating; star++ {
		d[star] = 0
	}
	return d
}

// Statistics summarises the reviews of a toilet. Each overall rating is
// rounded to the nearest star for the distribution; values that land
// outside 1-5 are left out of it.
func Statistics(reviews []schema.Review) schema.ReviewStatistics {
	stats := schema.ReviewStatistics{
		RatingDistribution: emptyDistribution(),
	}
	if len(reviews) == 0 {
		return stats
	}

	stats.AverageRating, stats.TotalReviews = AverageRating(reviews)
	stats.AverageCleanliness = subRatingAverage(reviews, func(r schema.Review) float64 { return r.Cleanliness })
	stats.AverageAccessibility = subRatingAverage(reviews, func(r schema.Review) float64 { return r.Accessibility })

	for _, r := range reviews {
		star := int(math.Round(r.Rating))
		if star < consts.MinRating || star > consts.MaxRating {
			continue
		}
		stats.RatingDistribution[star]++
	}

	return stats
}

// FeatureCounts tallies feature mentions. Reviews without mentions count
// toward neither paid nor free.
func FeatureCounts(reviews []schema.Review) schema.FeatureCounts {
	var counts schema.FeatureCounts
	for _, r := range reviews {
		m := r.FeatureMentions
		if m == nil {
			continue
		}
		if m.Accessibility {
			counts.Accessibility++
		}
		if m.BabyChanging {
			counts.BabyChanging++
		}
		if m.Ablution {
			counts.Ablution++
		}
		if m.IsPaid {
			counts.Paid++
		} else {
			counts.Free++
		}
	}
	return counts
}
