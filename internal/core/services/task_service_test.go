package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentumhq/momentum-api/internal/adapters/repository"
	"github.com/momentumhq/momentum-api/internal/core/domain"
)

func newTaskFixture(t *testing.T) *TaskService {
	t.Helper()
	store := repository.NewMemoryStore()
	return NewTaskService(store.Tasks())
}

func TestTaskCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("priority defaults to medium", func(t *testing.T) {
		svc := newTaskFixture(t)

		task, err := svc.Create(ctx, CreateTaskInput{UserID: "user-1", Title: "Buy milk"})
		require.NoError(t, err)

		assert.Equal(t, domain.PriorityMedium, task.Priority)
		assert.False(t, task.IsCompleted)
	})

	t.Run("unknown priority rejected", func(t *testing.T) {
		svc := newTaskFixture(t)

		_, err := svc.Create(ctx, CreateTaskInput{UserID: "user-1", Title: "X", Priority: "urgent"})
		assert.ErrorIs(t, err, domain.ErrInvalidTaskPriority)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		svc := newTaskFixture(t)

		_, err := svc.Create(ctx, CreateTaskInput{UserID: "user-1", Title: " "})
		assert.ErrorIs(t, err, domain.ErrTaskTitleEmpty)
	})
}

func TestTaskListFilters(t *testing.T) {
	ctx := context.Background()
	svc := newTaskFixture(t)

	done, err := svc.Create(ctx, CreateTaskInput{UserID: "user-1", Title: "Done", Priority: domain.PriorityHigh})
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, done.ID, "user-1")
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateTaskInput{UserID: "user-1", Title: "Pending", Priority: domain.PriorityLow})
	require.NoError(t, err)

	t.Run("by completion", func(t *testing.T) {
		completed := true
		tasks, err := svc.List(ctx, "user-1", domain.TaskFilter{IsCompleted: &completed})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "Done", tasks[0].Title)
	})

	t.Run("by priority", func(t *testing.T) {
		low := domain.PriorityLow
		tasks, err := svc.List(ctx, "user-1", domain.TaskFilter{Priority: &low})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "Pending", tasks[0].Title)
	})

	t.Run("no filter returns all", func(t *testing.T) {
		tasks, err := svc.List(ctx, "user-1", domain.TaskFilter{})
		require.NoError(t, err)
		assert.Len(t, tasks, 2)
	})
}

func TestTaskToggle(t *testing.T) {
	ctx := context.Background()
	svc := newTaskFixture(t)

	task, err := svc.Create(ctx, CreateTaskInput{UserID: "user-1", Title: "Flip me"})
	require.NoError(t, err)

	toggled, err := svc.Toggle(ctx, task.ID, "user-1")
	require.NoError(t, err)
	assert.True(t, toggled.IsCompleted)

	back, err := svc.Toggle(ctx, task.ID, "user-1")
	require.NoError(t, err)
	assert.False(t, back.IsCompleted)
}

func TestTaskOwnership(t *testing.T) {
	ctx := context.Background()
	svc := newTaskFixture(t)

	task, err := svc.Create(ctx, CreateTaskInput{UserID: "user-1", Title: "Mine"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, task.ID, "user-2")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	_, err = svc.Toggle(ctx, task.ID, "user-2")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	err = svc.Delete(ctx, task.ID, "user-2")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTaskUpdate(t *testing.T) {
	ctx := context.Background()
	svc := newTaskFixture(t)

	task, err := svc.Create(ctx, CreateTaskInput{UserID: "user-1", Title: "Old"})
	require.NoError(t, err)

	due := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Update(ctx, task.ID, "user-1", UpdateTaskInput{
		Title:       "New",
		IsCompleted: true,
		Priority:    domain.PriorityHigh,
		DueDate:     &due,
	})
	require.NoError(t, err)

	assert.Equal(t, "New", updated.Title)
	assert.True(t, updated.IsCompleted)
	assert.Equal(t, domain.PriorityHigh, updated.Priority)
	require.NotNil(t, updated.DueDate)
	assert.Equal(t, due, *updated.DueDate)
}
