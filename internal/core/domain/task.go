package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrTaskTitleEmpty      = errors.New("task title cannot be empty")
	ErrInvalidTaskPriority = errors.New("invalid task priority")
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a one-off to-do with a priority and an optional due date. Plain
// persistence glue; no derived state.
type Task struct {
	ID          string       `json:"id" db:"id"`
	UserID      string       `json:"user_id" db:"user_id"`
	Title       string       `json:"title" db:"title"`
	IsCompleted bool         `json:"is_completed" db:"is_completed"`
	Priority    TaskPriority `json:"priority" db:"priority"`
	DueDate     *time.Time   `json:"due_date,omitempty" db:"due_date"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" db:"updated_at"`
}

func NewTask(userID, title string, priority TaskPriority, dueDate *time.Time) (*Task, error) {
	if userID == "" {
		return nil, ErrHabitInvalidUserID
	}

	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return nil, ErrTaskTitleEmpty
	}

	if priority == "" {
		priority = PriorityMedium
	}
	if !priority.Valid() {
		return nil, ErrInvalidTaskPriority
	}

	now := time.Now().UTC()
	return &Task{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     trimmed,
		Priority:  priority,
		DueDate:   dueDate,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (t *Task) Update(title string, isCompleted bool, priority TaskPriority, dueDate *time.Time) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return ErrTaskTitleEmpty
	}
	if !priority.Valid() {
		return ErrInvalidTaskPriority
	}

	t.Title = trimmed
	t.IsCompleted = isCompleted
	t.Priority = priority
	t.DueDate = dueDate
	t.UpdatedAt = time.Now().UTC()
	return nil
}

func (t *Task) Toggle() {
	t.IsCompleted = !t.IsCompleted
	t.UpdatedAt = time.Now().UTC()
}
