package catalog

import "marketplace-catalog/internal/model"

// AverageRating returns the mean review rating and the number of reviews.
// An empty slice averages to zero.
func AverageRating(reviews []model.Review) (float64, int) {
	if len(reviews) == 0 {
		return 0, 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews)), len(reviews)
}

// Stars returns the five-star row for a rating: star i is filled when i < rating.
func Stars(rating float64) [5]bool {
	var stars [5]bool
	for i := range stars {
		stars[i] = float64(i) < rating
	}
	return stars
}
