package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrentStreak(t *testing.T) {
	today := NewDate(2026, 3, 15)
	daysAgo := func(n int) Date {
		return today.AddDays(-n)
	}

	tests := []struct {
		name  string
		dates []Date
		want  int
	}{
		{
			name:  "no completions",
			dates: nil,
			want:  0,
		},
		{
			name:  "completed today only",
			dates: []Date{today},
			want:  1,
		},
		{
			name:  "completed yesterday only, today still pending",
			dates: []Date{daysAgo(1)},
			want:  1,
		},
		{
			name:  "last completion two days ago",
			dates: []Date{daysAgo(2)},
			want:  0,
		},
		{
			name:  "three consecutive days ending today",
			dates: []Date{today, daysAgo(1), daysAgo(2)},
			want:  3,
		},
		{
			name:  "chain ending yesterday counts in full",
			dates: []Date{daysAgo(1), daysAgo(2), daysAgo(3)},
			want:  3,
		},
		{
			name:  "single skipped day does not break the chain",
			dates: []Date{today, daysAgo(2)},
			want:  2,
		},
		{
			name:  "two skipped days break the chain",
			dates: []Date{today, daysAgo(1), daysAgo(4)},
			want:  2,
		},
		{
			name:  "older run does not extend the current one",
			dates: []Date{today, daysAgo(10), daysAgo(11), daysAgo(12)},
			want:  1,
		},
		{
			name:  "unsorted input",
			dates: []Date{daysAgo(2), today, daysAgo(1)},
			want:  3,
		},
		{
			name:  "duplicate dates count once",
			dates: []Date{today, today, daysAgo(1)},
			want:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CurrentStreak(tt.dates, today))
		})
	}
}

func TestLongestStreak(t *testing.T) {
	today := NewDate(2026, 3, 15)
	daysAgo := func(n int) Date {
		return today.AddDays(-n)
	}

	tests := []struct {
		name  string
		dates []Date
		want  int
	}{
		{
			name:  "no completions",
			dates: nil,
			want:  0,
		},
		{
			name:  "single day",
			dates: []Date{daysAgo(5)},
			want:  1,
		},
		{
			name:  "longest run in the past",
			dates: []Date{today, daysAgo(10), daysAgo(11), daysAgo(12)},
			want:  3,
		},
		{
			name:  "strictly consecutive, no gap tolerance",
			dates: []Date{today, daysAgo(2), daysAgo(4)},
			want:  1,
		},
		{
			name:  "two equal runs",
			dates: []Date{today, daysAgo(1), daysAgo(5), daysAgo(6)},
			want:  2,
		},
		{
			name:  "duplicates within a run",
			dates: []Date{daysAgo(3), daysAgo(3), daysAgo(4), daysAgo(5)},
			want:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LongestStreak(tt.dates))
		})
	}
}

// The longest streak can never undershoot a live current streak whose chain
// has no gaps.
func TestLongestCoversCurrentWhenConsecutive(t *testing.T) {
	today := NewDate(2026, 3, 15)
	dates := []Date{today, today.AddDays(-1), today.AddDays(-2), today.AddDays(-3)}

	current := CurrentStreak(dates, today)
	longest := LongestStreak(dates)
	assert.GreaterOrEqual(t, longest, current)
	assert.Equal(t, 4, current)
	assert.Equal(t, 4, longest)
}
