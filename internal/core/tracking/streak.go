package tracking

import "sort"

// uniqueDates deduplicates and returns day numbers sorted ascending.
func uniqueDays(dates []Date) []int {
	seen := make(map[int]bool, len(dates))
	days := make([]int, 0, len(dates))
	for _, d := range dates {
		n := d.DayNumber()
		if !seen[n] {
			seen[n] = true
			days = append(days, n)
		}
	}
	sort.Ints(days)
	return days
}

// CurrentStreak counts consecutive completed days ending at today. The streak
// survives until a day is fully skipped: when today has no completion yet, a
// chain ending yesterday still counts in full.
func CurrentStreak(dates []Date, today Date) int {
	days := uniqueDays(dates)
	if len(days) == 0 {
		return 0
	}

	streak := 0
	expected := today.DayNumber()

	// walk most-recent first
	for i := len(days) - 1; i >= 0; i-- {
		day := days[i]
		switch {
		case day == expected || day == expected-1:
			streak++
			expected = day - 1
		case streak == 0 && day == today.DayNumber()-1:
			streak++
			expected = day - 1
		default:
			return streak
		}
	}

	return streak
}

// LongestStreak is the maximum run of consecutive completed days anywhere in
// history, independent of today.
func LongestStreak(dates []Date) int {
	days := uniqueDays(dates)
	if len(days) == 0 {
		return 0
	}

	longest := 1
	run := 1
	for i := 1; i < len(days); i++ {
		if days[i]-days[i-1] == 1 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	return longest
}
