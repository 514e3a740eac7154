package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/momentumhq/momentum-api/internal/core/tracking"
)

var ErrInvalidCompletion = errors.New("invalid completion data")

// CompletionEvent records that a habit was performed on a specific calendar
// date. CompletedAt is the audit instant (UTC); CompletedDate is the canonical
// key for all streak/rate math and is unique per habit.
//
// Events are created and deleted, never updated in place.
type CompletionEvent struct {
	ID            string        `json:"id" db:"id"`
	HabitID       string        `json:"habit_id" db:"habit_id"`
	CompletedAt   time.Time     `json:"completed_at" db:"completed_at"`
	CompletedDate tracking.Date `json:"completed_date" db:"completed_date"`
}

func NewCompletionEvent(habitID string, date tracking.Date, at time.Time) *CompletionEvent {
	return &CompletionEvent{
		ID:            uuid.NewString(),
		HabitID:       habitID,
		CompletedAt:   at.UTC(),
		CompletedDate: date,
	}
}

func (e *CompletionEvent) Validate() error {
	if strings.TrimSpace(e.HabitID) == "" {
		return errors.New("habit_id is required")
	}
	if e.CompletedDate.IsZero() {
		return errors.New("completed_date is required")
	}
	if e.CompletedAt.IsZero() {
		return errors.New("completed_at is required")
	}
	return nil
}

// CompletionDates projects events onto their calendar dates, the input shape
// shared by every tracking computation.
func CompletionDates(events []*CompletionEvent) []tracking.Date {
	dates := make([]tracking.Date, 0, len(events))
	for _, e := range events {
		dates = append(dates, e.CompletedDate)
	}
	return dates
}
