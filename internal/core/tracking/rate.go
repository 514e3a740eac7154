package tracking

import "math"

// LifetimeRate is the percentage of days since creation (creation day
// inclusive) that have a completion, rounded to one decimal place.
func LifetimeRate(totalCompletions int, created, today Date) float64 {
	daysSinceCreation := today.DayNumber() - created.DayNumber() + 1
	if daysSinceCreation <= 0 {
		return 0
	}
	rate := float64(totalCompletions) / float64(daysSinceCreation) * 100
	return math.Round(rate*10) / 10
}

// WindowRate is the percentage of a trailing window covered by distinct
// completed days. Rounding, if any, is left to the presentation layer.
func WindowRate(distinctCompletedDays, windowDays int) float64 {
	if windowDays <= 0 {
		return 0
	}
	return float64(distinctCompletedDays) / float64(windowDays) * 100
}
