package services

import (
	"context"
	"errors"
	"time"

	"github.com/momentumhq/momentum-api/internal/core/domain"
	"github.com/momentumhq/momentum-api/internal/core/tracking"
)

const DefaultStatsWindowDays = 30

// TrackerService is the habit completion engine: it mediates complete and
// uncomplete writes under the one-per-day invariant and assembles the derived
// summary and stats views.
type TrackerService struct {
	habits      domain.HabitRepository
	completions domain.CompletionRepository
	now         func() time.Time
}

func NewTrackerService(habits domain.HabitRepository, completions domain.CompletionRepository) *TrackerService {
	return &TrackerService{
		habits:      habits,
		completions: completions,
		now:         time.Now,
	}
}

// ownedHabit loads a habit and enforces ownership. A habit belonging to
// another user reports not-found rather than forbidden, so existence is never
// leaked.
func (s *TrackerService) ownedHabit(ctx context.Context, habitID, userID string) (*domain.Habit, error) {
	habit, err := s.habits.GetByID(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if habit.UserID != userID {
		return nil, domain.ErrHabitNotFound
	}
	return habit, nil
}

// Complete marks the habit done for the resolved today. A duplicate attempt
// for the same date is rejected with ErrCompletionExists; a race lost against
// a concurrent insert surfaces identically via the store's unique constraint.
func (s *TrackerService) Complete(ctx context.Context, habitID, userID, clientDate string) (*domain.HabitSummary, error) {
	habit, err := s.ownedHabit(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}

	today := tracking.ResolveToday(clientDate, s.now())

	existing, err := s.completions.ListByHabitID(ctx, habitID)
	if err != nil {
		return nil, err
	}
	for _, e := range existing {
		if e.CompletedDate == today {
			return nil, domain.ErrCompletionExists
		}
	}

	event := domain.NewCompletionEvent(habitID, today, s.now())
	if err := event.Validate(); err != nil {
		return nil, err
	}
	if err := s.completions.Insert(ctx, event); err != nil {
		return nil, err
	}

	return s.refresh(ctx, habit, today)
}

// Uncomplete removes the completion for the resolved today, rejecting with
// ErrCompletionNotFound when there is none.
func (s *TrackerService) Uncomplete(ctx context.Context, habitID, userID, clientDate string) (*domain.HabitSummary, error) {
	habit, err := s.ownedHabit(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}

	today := tracking.ResolveToday(clientDate, s.now())

	if err := s.completions.Delete(ctx, habitID, today); err != nil {
		return nil, err
	}

	return s.refresh(ctx, habit, today)
}

// Summary returns the derived view of one habit.
func (s *TrackerService) Summary(ctx context.Context, habitID, userID, clientDate string) (*domain.HabitSummary, error) {
	habit, err := s.ownedHabit(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	return s.refresh(ctx, habit, tracking.ResolveToday(clientDate, s.now()))
}

// Completions returns the raw events for the trailing days window, newest
// first.
func (s *TrackerService) Completions(ctx context.Context, habitID, userID string, days int, clientDate string) ([]*domain.CompletionEvent, error) {
	if _, err := s.ownedHabit(ctx, habitID, userID); err != nil {
		return nil, err
	}

	today := tracking.ResolveToday(clientDate, s.now())
	return s.completions.ListSince(ctx, habitID, today.AddDays(-days))
}

// Stats returns streaks, window completion rate and the dense day-by-day
// history for the trailing window.
func (s *TrackerService) Stats(ctx context.Context, habitID, userID string, windowDays int, clientDate string) (*domain.HabitStats, error) {
	habit, err := s.ownedHabit(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}

	if windowDays <= 0 {
		windowDays = DefaultStatsWindowDays
	}

	completions, err := s.completions.ListByHabitID(ctx, habitID)
	if err != nil {
		return nil, err
	}

	today := tracking.ResolveToday(clientDate, s.now())
	return domain.BuildStats(habit, completions, windowDays, today), nil
}

// IsRejection reports whether err is one of the recoverable completion-state
// outcomes rather than a hard failure.
func IsRejection(err error) bool {
	return errors.Is(err, domain.ErrCompletionExists) || errors.Is(err, domain.ErrCompletionNotFound)
}

func (s *TrackerService) refresh(ctx context.Context, habit *domain.Habit, today tracking.Date) (*domain.HabitSummary, error) {
	completions, err := s.completions.ListByHabitID(ctx, habit.ID)
	if err != nil {
		return nil, err
	}
	return domain.BuildSummary(habit, completions, today), nil
}
