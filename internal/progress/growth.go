package progress

import "math"

// GrowthRate returns the period-over-period change of current vs previous in percent.
// A zero or negative baseline means there is nothing valid to compare against,
// and yields 0 rather than an infinite or sign-flipped rate.
func GrowthRate(current, previous float64) float64 {
	if previous <= 0 || math.IsNaN(previous) || math.IsInf(previous, 0) {
		return 0
	}
	if math.IsNaN(current) || math.IsInf(current, 0) {
		return 0
	}
	return (current - previous) / previous * 100
}
