package services

import (
	"context"
	"time"

	"github.com/momentumhq/momentum-api/internal/core/domain"
)

type TaskService struct {
	repo domain.TaskRepository
}

func NewTaskService(repo domain.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

type CreateTaskInput struct {
	UserID   string
	Title    string
	Priority domain.TaskPriority
	DueDate  *time.Time
}

type UpdateTaskInput struct {
	Title       string
	IsCompleted bool
	Priority    domain.TaskPriority
	DueDate     *time.Time
}

func (s *TaskService) Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	task, err := domain.NewTask(input.UserID, input.Title, input.Priority, input.DueDate)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Get(ctx context.Context, id, userID string) (*domain.Task, error) {
	return s.ownedTask(ctx, id, userID)
}

func (s *TaskService) List(ctx context.Context, userID string, filter domain.TaskFilter) ([]*domain.Task, error) {
	return s.repo.ListByUserID(ctx, userID, filter)
}

func (s *TaskService) Update(ctx context.Context, id, userID string, input UpdateTaskInput) (*domain.Task, error) {
	task, err := s.ownedTask(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if err := task.Update(input.Title, input.IsCompleted, input.Priority, input.DueDate); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Toggle(ctx context.Context, id, userID string) (*domain.Task, error) {
	task, err := s.ownedTask(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	task.Toggle()
	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id, userID string) error {
	if _, err := s.ownedTask(ctx, id, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *TaskService) ownedTask(ctx context.Context, id, userID string) (*domain.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.UserID != userID {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}
