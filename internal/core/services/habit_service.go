package services

import (
	"context"
	"time"

	"github.com/momentumhq/momentum-api/internal/core/domain"
	"github.com/momentumhq/momentum-api/internal/core/tracking"
)

// HabitService owns habit definitions: create, edit, manual ordering, delete.
// Reads come back as summaries so the dashboard gets streaks and rates in the
// same response.
type HabitService struct {
	habits      domain.HabitRepository
	completions domain.CompletionRepository
	now         func() time.Time
}

func NewHabitService(habits domain.HabitRepository, completions domain.CompletionRepository) *HabitService {
	return &HabitService{
		habits:      habits,
		completions: completions,
		now:         time.Now,
	}
}

type UpdateHabitInput struct {
	Title    string
	IsActive bool
}

func (s *HabitService) Create(ctx context.Context, userID, title string) (*domain.HabitSummary, error) {
	maxOrder, err := s.habits.MaxSortOrder(ctx, userID)
	if err != nil {
		return nil, err
	}

	habit, err := domain.NewHabit(userID, title, maxOrder+1)
	if err != nil {
		return nil, err
	}

	if err := s.habits.Create(ctx, habit); err != nil {
		return nil, err
	}

	// fresh habit has no completions yet
	return domain.BuildSummary(habit, nil, tracking.DateOf(s.now())), nil
}

func (s *HabitService) Get(ctx context.Context, id, userID, clientDate string) (*domain.HabitSummary, error) {
	habit, err := s.ownedHabit(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, habit, tracking.ResolveToday(clientDate, s.now()))
}

// List returns the user's habits as summaries, ordered by sort order. When
// activeOnly is non-nil the active flag filters the result.
func (s *HabitService) List(ctx context.Context, userID string, activeOnly *bool, clientDate string) ([]*domain.HabitSummary, error) {
	habits, err := s.habits.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := tracking.ResolveToday(clientDate, s.now())

	summaries := make([]*domain.HabitSummary, 0, len(habits))
	for _, h := range habits {
		if activeOnly != nil && h.IsActive != *activeOnly {
			continue
		}
		summary, err := s.summarize(ctx, h, today)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *HabitService) Update(ctx context.Context, id, userID string, input UpdateHabitInput, clientDate string) (*domain.HabitSummary, error) {
	habit, err := s.ownedHabit(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if err := habit.Update(input.Title, input.IsActive); err != nil {
		return nil, err
	}
	if err := s.habits.Update(ctx, habit); err != nil {
		return nil, err
	}

	return s.summarize(ctx, habit, tracking.ResolveToday(clientDate, s.now()))
}

// Delete removes the habit; the store cascades to its completion events.
func (s *HabitService) Delete(ctx context.Context, id, userID string) error {
	if _, err := s.ownedHabit(ctx, id, userID); err != nil {
		return err
	}
	return s.habits.Delete(ctx, id)
}

// Reorder assigns SortOrder by position in habitIDs. Every id must belong to
// the user; a partial or foreign set is rejected untouched.
func (s *HabitService) Reorder(ctx context.Context, userID string, habitIDs []string, clientDate string) ([]*domain.HabitSummary, error) {
	habits, err := s.habits.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Habit, len(habits))
	for _, h := range habits {
		byID[h.ID] = h
	}

	for _, id := range habitIDs {
		if _, ok := byID[id]; !ok {
			return nil, domain.ErrHabitNotFound
		}
	}

	for i, id := range habitIDs {
		habit := byID[id]
		habit.ChangePosition(i)
		if err := s.habits.Update(ctx, habit); err != nil {
			return nil, err
		}
	}

	return s.List(ctx, userID, nil, clientDate)
}

func (s *HabitService) ownedHabit(ctx context.Context, habitID, userID string) (*domain.Habit, error) {
	habit, err := s.habits.GetByID(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if habit.UserID != userID {
		return nil, domain.ErrHabitNotFound
	}
	return habit, nil
}

func (s *HabitService) summarize(ctx context.Context, habit *domain.Habit, today tracking.Date) (*domain.HabitSummary, error) {
	completions, err := s.completions.ListByHabitID(ctx, habit.ID)
	if err != nil {
		return nil, err
	}
	return domain.BuildSummary(habit, completions, today), nil
}
