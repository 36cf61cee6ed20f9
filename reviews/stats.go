// Package reviews holds the pure review aggregation, filtering and voting
// logic, independent of storage and transport.
package reviews

import (
	"math"

	"github.com/threadlab/threadlab-backend-go/models"
)

// Stats is the aggregate summary shown above a product's review list.
type Stats struct {
	AverageRating      float64     `json:"averageRating"`
	TotalReviews       int         `json:"totalReviews"`
	RatingDistribution map[int]int `json:"ratingDistribution"`
	PhotosCount        int         `json:"photosCount"`
}

// ComputeStats aggregates a review collection. An empty collection yields
// all-zero stats with every distribution bucket present. Ratings outside
// 1..5 are excluded from both the average and the distribution.
func ComputeStats(reviews []models.Review) Stats {
	stats := Stats{
		RatingDistribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}

	sum, rated := 0, 0
	for _, r := range reviews {
		if r.Rating >= 1 && r.Rating <= 5 {
			sum += r.Rating
			rated++
			stats.RatingDistribution[r.Rating]++
		}
		stats.PhotosCount += len(r.Photos)
	}
	stats.TotalReviews = len(reviews)
	if rated > 0 {
		mean := float64(sum) / float64(rated)
		stats.AverageRating = math.Round(mean*10) / 10
	}
	return stats
}
