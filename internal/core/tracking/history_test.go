package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHistory(t *testing.T) {
	today := NewDate(2026, 3, 15)
	start := today.AddDays(-30)

	t.Run("dense window, one record per day", func(t *testing.T) {
		history := BuildHistory(nil, start, today)

		require.Len(t, history, 31)
		assert.Equal(t, start, history[0].Date)
		assert.Equal(t, today, history[len(history)-1].Date)
		for _, rec := range history {
			assert.False(t, rec.Completed)
		}
	})

	t.Run("completed days marked", func(t *testing.T) {
		dates := []Date{today, today.AddDays(-2)}
		history := BuildHistory(dates, start, today)

		require.Len(t, history, 31)
		assert.True(t, history[30].Completed)
		assert.False(t, history[29].Completed)
		assert.True(t, history[28].Completed)
	})

	t.Run("completions outside the window ignored", func(t *testing.T) {
		dates := []Date{start.AddDays(-1), today.AddDays(1)}
		history := BuildHistory(dates, start, today)

		for _, rec := range history {
			assert.False(t, rec.Completed)
		}
	})

	t.Run("single day window", func(t *testing.T) {
		history := BuildHistory([]Date{today}, today, today)

		require.Len(t, history, 1)
		assert.Equal(t, today, history[0].Date)
		assert.True(t, history[0].Completed)
	})
}

func TestDistinctDays(t *testing.T) {
	today := NewDate(2026, 3, 15)

	assert.Equal(t, 0, DistinctDays(nil))
	assert.Equal(t, 1, DistinctDays([]Date{today, today}))
	assert.Equal(t, 3, DistinctDays([]Date{today, today.AddDays(-1), today.AddDays(-2), today}))
}
