package calc

import "math"

// WeightedRating folds one new rating into the running average: the prior
// rating weighted by its review count plus the new rating, over the new
// count, rounded to one decimal.
func WeightedRating(priorRating float64, priorCount int, newRating int) float64 {
	total := priorRating*float64(priorCount) + float64(newRating)
	mean := total / float64(priorCount+1)
	return math.Round(mean*10) / 10
}
