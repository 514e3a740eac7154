package domain

import (
	"time"

	"github.com/momentumhq/momentum-api/internal/core/tracking"
)

// HabitSummary is the habit plus everything the dashboard shows about it under
// a resolved "today". Derived on every read, never persisted.
type HabitSummary struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	IsActive         bool       `json:"is_active"`
	SortOrder        int        `json:"sort_order"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	IsCompletedToday bool       `json:"is_completed_today"`
	LastCompletedAt  *time.Time `json:"last_completed_at"`
	CurrentStreak    int        `json:"current_streak"`
	TotalCompletions int        `json:"total_completions"`
	CompletionRate   float64    `json:"completion_rate"`
}

// HabitStats is the chart-oriented view over a trailing window.
type HabitStats struct {
	HabitID                 string               `json:"habit_id"`
	HabitTitle              string               `json:"habit_title"`
	TotalCompletions        int                  `json:"total_completions"`
	CurrentStreak           int                  `json:"current_streak"`
	LongestStreak           int                  `json:"longest_streak"`
	CompletionRateLastMonth float64              `json:"completion_rate_last_month"`
	CompletionHistory       []tracking.DayRecord `json:"completion_history"`
}

// BuildSummary assembles a HabitSummary from a habit and its full completion
// history. Pure: no clock reads, no storage access.
func BuildSummary(h *Habit, completions []*CompletionEvent, today tracking.Date) *HabitSummary {
	dates := CompletionDates(completions)

	isCompletedToday := false
	for _, d := range dates {
		if d == today {
			isCompletedToday = true
			break
		}
	}

	var lastCompletedAt *time.Time
	for _, e := range completions {
		if lastCompletedAt == nil || e.CompletedAt.After(*lastCompletedAt) {
			at := e.CompletedAt
			lastCompletedAt = &at
		}
	}

	return &HabitSummary{
		ID:               h.ID,
		Title:            h.Title,
		IsActive:         h.IsActive,
		SortOrder:        h.SortOrder,
		CreatedAt:        h.CreatedAt,
		UpdatedAt:        h.UpdatedAt,
		IsCompletedToday: isCompletedToday,
		LastCompletedAt:  lastCompletedAt,
		CurrentStreak:    tracking.CurrentStreak(dates, today),
		TotalCompletions: len(completions),
		CompletionRate:   tracking.LifetimeRate(len(completions), tracking.DateOf(h.CreatedAt), today),
	}
}

// BuildStats assembles the windowed statistics view. The history spans
// today-windowDays .. today inclusive (windowDays+1 entries); the window rate
// counts distinct completed days against windowDays.
func BuildStats(h *Habit, completions []*CompletionEvent, windowDays int, today tracking.Date) *HabitStats {
	allDates := CompletionDates(completions)
	start := today.AddDays(-windowDays)

	var windowDates []tracking.Date
	for _, d := range allDates {
		if !d.Before(start) {
			windowDates = append(windowDates, d)
		}
	}

	return &HabitStats{
		HabitID:                 h.ID,
		HabitTitle:              h.Title,
		TotalCompletions:        len(completions),
		CurrentStreak:           tracking.CurrentStreak(allDates, today),
		LongestStreak:           tracking.LongestStreak(allDates),
		CompletionRateLastMonth: tracking.WindowRate(tracking.DistinctDays(windowDates), windowDays),
		CompletionHistory:       tracking.BuildHistory(windowDates, start, today),
	}
}
