package tracking

// DayRecord is one cell of a day-by-day completion chart.
type DayRecord struct {
	Date      Date `json:"date"`
	Completed bool `json:"completed"`
}

// BuildHistory produces one record per calendar day from start to end
// inclusive, in ascending order, with no gaps.
func BuildHistory(dates []Date, start, end Date) []DayRecord {
	completed := make(map[int]bool, len(dates))
	for _, d := range dates {
		completed[d.DayNumber()] = true
	}

	history := make([]DayRecord, 0, end.DayNumber()-start.DayNumber()+1)
	for d := start; !d.After(end); d = d.AddDays(1) {
		history = append(history, DayRecord{
			Date:      d,
			Completed: completed[d.DayNumber()],
		})
	}
	return history
}

// DistinctDays counts unique calendar days in dates.
func DistinctDays(dates []Date) int {
	return len(uniqueDays(dates))
}
