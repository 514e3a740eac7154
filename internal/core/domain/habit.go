package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrHabitTitleEmpty    = errors.New("habit title cannot be empty")
	ErrHabitTitleTooLong  = errors.New("habit title is too long (max 200 chars)")
	ErrHabitInvalidUserID = errors.New("invalid user id")
)

const maxHabitTitleLen = 200

// Habit is a user-defined recurring action tracked at most once per calendar
// day. Completion history lives in CompletionEvent records, never on the habit
// itself; streaks and rates are derived on every read.
type Habit struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	SortOrder int       `json:"sort_order" db:"sort_order"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func validateHabitTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", ErrHabitTitleEmpty
	}
	if len(trimmed) > maxHabitTitleLen {
		return "", ErrHabitTitleTooLong
	}
	return trimmed, nil
}

func NewHabit(userID, title string, sortOrder int) (*Habit, error) {
	if userID == "" {
		return nil, ErrHabitInvalidUserID
	}

	cleanTitle, err := validateHabitTitle(title)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Habit{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     cleanTitle,
		IsActive:  true,
		SortOrder: sortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (h *Habit) Update(title string, isActive bool) error {
	cleanTitle, err := validateHabitTitle(title)
	if err != nil {
		return err
	}

	h.Title = cleanTitle
	h.IsActive = isActive
	h.UpdatedAt = time.Now().UTC()
	return nil
}

func (h *Habit) ChangePosition(newOrder int) {
	h.SortOrder = newOrder
	h.UpdatedAt = time.Now().UTC()
}
