package evaluation

import "math"

// HTASOAverage converts the inverted internal totals back to the HTASO
// 1-5 reporting scale (1 best, 5 worst) with its rounded rank. Returns
// ok=false when nothing was rated.
func HTASOAverage(totalScore, totalPossible float64) (avg float64, rank int, ok bool) {
	if totalPossible <= 0 {
		return 0, 0, false
	}
	avg = 6.0 - totalScore/(totalPossible/MaxItemScore)
	// Rank ties round to even, so an exact 2.5 reports rank 2.
	return avg, int(math.RoundToEven(avg)), true
}
