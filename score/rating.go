package score

import (
	"math"

	"github.com/hojattop/hojattop-api/schema"
)

// RoundToOneDecimal rounds half away from zero at the first decimal place.
func RoundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}

// RatingScore adds one rating to a running sum and returns the new count,
// sum and average.
func RatingScore(count int, sum float64, rating float64) (int, float64, float64) {
	sum = sum + rating
	count = count + 1
	average := sum / float64(count)
	return count, sum, average
}

// AverageRating returns the mean overall rating of the reviews rounded to
// one decimal and the number of reviews it was computed from.
func AverageRating(reviews []schema.Review) (float64, int) {
	count, sum, average := 0, float64(0), float64(0)
	for _, r := range reviews {
		count, sum, average = RatingScore(count, sum, r.Rating)
	}
	return RoundToOneDecimal(average), count
}

// subRatingAverage averages the positive values only. A zero sub-rating
// means the reviewer did not give one.
func subRatingAverage(reviews []schema.Review, pick func(schema.Review) float64) float64 {
	count, sum, average := 0, float64(0), float64(0)
	for _, r := range reviews {
		if v := pick(r); v > 0 {
			count, sum, average = RatingScore(count, sum, v)
		}
	}
	return RoundToOneDecimal(average)
}
