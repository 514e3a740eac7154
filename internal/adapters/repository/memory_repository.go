package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/momentumhq/momentum-api/internal/core/domain"
	"github.com/momentumhq/momentum-api/internal/core/tracking"
)

// MemoryStore backs the in-memory repositories. Habits and completions share
// one store so habit deletion can cascade the same way the SQL schemas do.
type MemoryStore struct {
	mu          sync.RWMutex
	habits      map[string]*domain.Habit
	completions map[string][]*domain.CompletionEvent // keyed by habit id
	tasks       map[string]*domain.Task
	users       map[string]*domain.User
	settings    map[string]*domain.AccountabilitySettings // keyed by user id
	logs        map[string]*domain.AccountabilityLog      // keyed by user id + date
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		habits:      make(map[string]*domain.Habit),
		completions: make(map[string][]*domain.CompletionEvent),
		tasks:       make(map[string]*domain.Task),
		users:       make(map[string]*domain.User),
		settings:    make(map[string]*domain.AccountabilitySettings),
		logs:        make(map[string]*domain.AccountabilityLog),
	}
}

func (s *MemoryStore) Habits() *InMemoryHabitRepository {
	return &InMemoryHabitRepository{store: s}
}

func (s *MemoryStore) Completions() *InMemoryCompletionRepository {
	return &InMemoryCompletionRepository{store: s}
}

func (s *MemoryStore) Tasks() *InMemoryTaskRepository {
	return &InMemoryTaskRepository{store: s}
}

func (s *MemoryStore) Users() *InMemoryUserRepository {
	return &InMemoryUserRepository{store: s}
}

func (s *MemoryStore) Accountability() *InMemoryAccountabilityRepository {
	return &InMemoryAccountabilityRepository{store: s}
}

type InMemoryHabitRepository struct {
	store *MemoryStore
}

func (r *InMemoryHabitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	copied := *habit
	r.store.habits[habit.ID] = &copied
	return nil
}

func (r *InMemoryHabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	habit, ok := r.store.habits[id]
	if !ok {
		return nil, domain.ErrHabitNotFound
	}
	copied := *habit
	return &copied, nil
}

func (r *InMemoryHabitRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Habit, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var habits []*domain.Habit
	for _, h := range r.store.habits {
		if h.UserID == userID {
			copied := *h
			habits = append(habits, &copied)
		}
	}

	sort.Slice(habits, func(i, j int) bool {
		if habits[i].SortOrder != habits[j].SortOrder {
			return habits[i].SortOrder < habits[j].SortOrder
		}
		return habits[i].CreatedAt.After(habits[j].CreatedAt)
	})

	return habits, nil
}

func (r *InMemoryHabitRepository) MaxSortOrder(ctx context.Context, userID string) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	max := -1
	for _, h := range r.store.habits {
		if h.UserID == userID && h.SortOrder > max {
			max = h.SortOrder
		}
	}
	return max, nil
}

func (r *InMemoryHabitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.habits[habit.ID]; !ok {
		return domain.ErrHabitNotFound
	}
	copied := *habit
	r.store.habits[habit.ID] = &copied
	return nil
}

func (r *InMemoryHabitRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.habits[id]; !ok {
		return domain.ErrHabitNotFound
	}

	delete(r.store.habits, id)
	delete(r.store.completions, id)
	return nil
}

type InMemoryCompletionRepository struct {
	store *MemoryStore
}

func (r *InMemoryCompletionRepository) Insert(ctx context.Context, event *domain.CompletionEvent) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, e := range r.store.completions[event.HabitID] {
		if e.CompletedDate == event.CompletedDate {
			return domain.ErrCompletionExists
		}
	}

	copied := *event
	r.store.completions[event.HabitID] = append(r.store.completions[event.HabitID], &copied)
	return nil
}

func (r *InMemoryCompletionRepository) Delete(ctx context.Context, habitID string, date tracking.Date) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	events := r.store.completions[habitID]
	for i, e := range events {
		if e.CompletedDate == date {
			r.store.completions[habitID] = append(events[:i], events[i+1:]...)
			return nil
		}
	}
	return domain.ErrCompletionNotFound
}

func (r *InMemoryCompletionRepository) ListByHabitID(ctx context.Context, habitID string) ([]*domain.CompletionEvent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	events := make([]*domain.CompletionEvent, 0, len(r.store.completions[habitID]))
	for _, e := range r.store.completions[habitID] {
		copied := *e
		events = append(events, &copied)
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].CompletedDate.After(events[j].CompletedDate)
	})

	return events, nil
}

func (r *InMemoryCompletionRepository) ListSince(ctx context.Context, habitID string, since tracking.Date) ([]*domain.CompletionEvent, error) {
	all, err := r.ListByHabitID(ctx, habitID)
	if err != nil {
		return nil, err
	}

	events := make([]*domain.CompletionEvent, 0, len(all))
	for _, e := range all {
		if !e.CompletedDate.Before(since) {
			events = append(events, e)
		}
	}
	return events, nil
}

type InMemoryTaskRepository struct {
	store *MemoryStore
}

func (r *InMemoryTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	copied := *task
	r.store.tasks[task.ID] = &copied
	return nil
}

func (r *InMemoryTaskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	task, ok := r.store.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	copied := *task
	return &copied, nil
}

func (r *InMemoryTaskRepository) ListByUserID(ctx context.Context, userID string, filter domain.TaskFilter) ([]*domain.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var tasks []*domain.Task
	for _, t := range r.store.tasks {
		if t.UserID != userID {
			continue
		}
		if filter.IsCompleted != nil && t.IsCompleted != *filter.IsCompleted {
			continue
		}
		if filter.Priority != nil && t.Priority != *filter.Priority {
			continue
		}
		copied := *t
		tasks = append(tasks, &copied)
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})

	return tasks, nil
}

func (r *InMemoryTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.tasks[task.ID]; !ok {
		return domain.ErrTaskNotFound
	}
	copied := *task
	r.store.tasks[task.ID] = &copied
	return nil
}

func (r *InMemoryTaskRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.store.tasks, id)
	return nil
}

type InMemoryUserRepository struct {
	store *MemoryStore
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}

	copied := *user
	r.store.users[user.ID] = &copied
	return nil
}

func (r *InMemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *InMemoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

type InMemoryAccountabilityRepository struct {
	store *MemoryStore
}

func logKey(userID string, date tracking.Date) string {
	return userID + "|" + date.String()
}

func (r *InMemoryAccountabilityRepository) GetSettings(ctx context.Context, userID string) (*domain.AccountabilitySettings, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	settings, ok := r.store.settings[userID]
	if !ok {
		return nil, domain.ErrSettingsNotFound
	}

	copied := *settings
	copied.Penalties = append([]*domain.Penalty{}, settings.Penalties...)
	copied.Rewards = append([]*domain.Reward{}, settings.Rewards...)
	return &copied, nil
}

func (r *InMemoryAccountabilityRepository) CreateSettings(ctx context.Context, settings *domain.AccountabilitySettings) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	copied := *settings
	copied.Penalties = append([]*domain.Penalty{}, settings.Penalties...)
	copied.Rewards = append([]*domain.Reward{}, settings.Rewards...)
	r.store.settings[settings.UserID] = &copied
	return nil
}

func (r *InMemoryAccountabilityRepository) UpdateGoal(ctx context.Context, settingsID string, goalPercentage int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, s := range r.store.settings {
		if s.ID == settingsID {
			s.GoalPercentage = goalPercentage
			return nil
		}
	}
	return domain.ErrSettingsNotFound
}

func (r *InMemoryAccountabilityRepository) AddPenalty(ctx context.Context, penalty *domain.Penalty) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, s := range r.store.settings {
		if s.ID == penalty.SettingsID {
			copied := *penalty
			s.Penalties = append(s.Penalties, &copied)
			return nil
		}
	}
	return domain.ErrSettingsNotFound
}

func (r *InMemoryAccountabilityRepository) RemovePenalty(ctx context.Context, settingsID, penaltyID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, s := range r.store.settings {
		if s.ID != settingsID {
			continue
		}
		for i, p := range s.Penalties {
			if p.ID == penaltyID {
				s.Penalties = append(s.Penalties[:i], s.Penalties[i+1:]...)
				return nil
			}
		}
	}
	return domain.ErrPenaltyNotFound
}

func (r *InMemoryAccountabilityRepository) AddReward(ctx context.Context, reward *domain.Reward) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, s := range r.store.settings {
		if s.ID == reward.SettingsID {
			copied := *reward
			s.Rewards = append(s.Rewards, &copied)
			return nil
		}
	}
	return domain.ErrSettingsNotFound
}

func (r *InMemoryAccountabilityRepository) RemoveReward(ctx context.Context, settingsID, rewardID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, s := range r.store.settings {
		if s.ID != settingsID {
			continue
		}
		for i, rw := range s.Rewards {
			if rw.ID == rewardID {
				s.Rewards = append(s.Rewards[:i], s.Rewards[i+1:]...)
				return nil
			}
		}
	}
	return domain.ErrRewardNotFound
}

func (r *InMemoryAccountabilityRepository) GetLog(ctx context.Context, userID string, date tracking.Date) (*domain.AccountabilityLog, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	log, ok := r.store.logs[logKey(userID, date)]
	if !ok {
		return nil, domain.ErrLogNotFound
	}
	copied := *log
	return &copied, nil
}

func (r *InMemoryAccountabilityRepository) SaveLog(ctx context.Context, log *domain.AccountabilityLog) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	copied := *log
	r.store.logs[logKey(log.UserID, log.Date)] = &copied
	return nil
}

func (r *InMemoryAccountabilityRepository) ListLogs(ctx context.Context, userID string, since tracking.Date) ([]*domain.AccountabilityLog, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var logs []*domain.AccountabilityLog
	for _, l := range r.store.logs {
		if l.UserID != userID || l.Date.Before(since) {
			continue
		}
		copied := *l
		logs = append(logs, &copied)
	}
	sort.Slice(logs, func(i, j int) bool {
		return logs[j].Date.Before(logs[i].Date)
	})
	return logs, nil
}
