package domain

import (
	"context"
	"errors"

	"github.com/momentumhq/momentum-api/internal/core/tracking"
)

var (
	ErrHabitNotFound = errors.New("habit not found")

	// ErrCompletionExists signals the (habit, calendar-date) uniqueness
	// constraint, whether caught by the aggregator's pre-check or raised by
	// the store on a lost race. Both surface identically to callers.
	ErrCompletionExists   = errors.New("habit already completed for this date")
	ErrCompletionNotFound = errors.New("no completion for this date")
)

type HabitRepository interface {
	// Create persists a new habit definition.
	Create(ctx context.Context, habit *Habit) error

	// GetByID retrieves a habit by id regardless of owner; callers enforce
	// ownership and report ErrHabitNotFound either way.
	GetByID(ctx context.Context, id string) (*Habit, error)

	// ListByUserID returns a user's habits ordered by sort order, then newest
	// first.
	ListByUserID(ctx context.Context, userID string) ([]*Habit, error)

	// MaxSortOrder returns the highest sort order among a user's habits, or
	// -1 when the user has none.
	MaxSortOrder(ctx context.Context, userID string) (int, error)

	Update(ctx context.Context, habit *Habit) error

	// Delete removes the habit and cascades to its completion events.
	Delete(ctx context.Context, id string) error
}

type CompletionRepository interface {
	// Insert persists a new completion event. Returns ErrCompletionExists
	// when an event already exists for (habit, completed_date).
	Insert(ctx context.Context, event *CompletionEvent) error

	// Delete removes the event for (habit, date). Returns
	// ErrCompletionNotFound when there is none.
	Delete(ctx context.Context, habitID string, date tracking.Date) error

	// ListByHabitID returns all events for the habit, newest date first.
	ListByHabitID(ctx context.Context, habitID string) ([]*CompletionEvent, error)

	// ListSince returns events dated on or after since, newest date first.
	ListSince(ctx context.Context, habitID string, since tracking.Date) ([]*CompletionEvent, error)
}

type TaskRepository interface {
	Create(ctx context.Context, task *Task) error
	GetByID(ctx context.Context, id string) (*Task, error)

	// ListByUserID returns a user's tasks, newest first, optionally filtered
	// by completion state and priority.
	ListByUserID(ctx context.Context, userID string, filter TaskFilter) ([]*Task, error)

	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, id string) error
}

// TaskFilter narrows task listings; nil fields mean "any".
type TaskFilter struct {
	IsCompleted *bool
	Priority    *TaskPriority
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

type AccountabilityRepository interface {
	// GetSettings returns the user's settings with penalties and rewards
	// populated, or ErrSettingsNotFound.
	GetSettings(ctx context.Context, userID string) (*AccountabilitySettings, error)
	CreateSettings(ctx context.Context, settings *AccountabilitySettings) error
	UpdateGoal(ctx context.Context, settingsID string, goalPercentage int) error

	AddPenalty(ctx context.Context, penalty *Penalty) error
	RemovePenalty(ctx context.Context, settingsID, penaltyID string) error
	AddReward(ctx context.Context, reward *Reward) error
	RemoveReward(ctx context.Context, settingsID, rewardID string) error

	// GetLog returns the log for (user, date) or ErrLogNotFound.
	GetLog(ctx context.Context, userID string, date tracking.Date) (*AccountabilityLog, error)
	SaveLog(ctx context.Context, log *AccountabilityLog) error

	// ListLogs returns logs dated on or after since, newest first.
	ListLogs(ctx context.Context, userID string, since tracking.Date) ([]*AccountabilityLog, error)
}
