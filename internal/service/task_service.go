package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"task_manager/internal/model"
	"task_manager/internal/repository"
)

var ErrTaskNotFound = errors.New("task not found")

const (
	defaultPage  = 1
	defaultLimit = 10
)

// TaskService defines operations for tasks
type TaskService interface {
	CreateTask(ctx context.Context, userID int, req model.CreateTaskRequest) (*model.Task, error)
	ListTasks(ctx context.Context, page, limit int) (*model.TaskPage, error)
	GetTaskByID(ctx context.Context, taskID int64) (*model.Task, error)
	UpdateTask(ctx context.Context, taskID int64, req model.UpdateTaskRequest) (*model.Task, error)
	DeleteTask(ctx context.Context, taskID int64) error
}

type taskService struct {
	repo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(repo repository.TaskRepository) TaskService {
	return &taskService{repo: repo}
}

func (s *taskService) CreateTask(ctx context.Context, userID int, req model.CreateTaskRequest) (*model.Task, error) {
	status := model.StatusPending
	if req.Status != nil && *req.Status != "" {
		status = *req.Status
	}
	description := ""
	if req.Description != nil {
		description = *req.Description
	}

	task := &model.Task{
		Title:       strings.TrimSpace(req.Title),
		Description: description,
		Status:      status,
		CreatedBy:   &userID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task in repo: %w", err)
	}
	return task, nil
}

// ListTasks returns one page of tasks, newest first, with the page math
// the API contract promises: skip = (page-1)*limit, totalPages = ceil(total/limit).
func (s *taskService) ListTasks(ctx context.Context, page, limit int) (*model.TaskPage, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	total, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	offset := (page - 1) * limit
	tasks, err := s.repo.FindPage(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks page: %w", err)
	}
	if tasks == nil {
		tasks = []model.Task{}
	}

	return &model.TaskPage{
		Tasks:      tasks,
		Total:      total,
		TotalPages: (total + int64(limit) - 1) / int64(limit),
		Page:       page,
	}, nil
}

func (s *taskService) GetTaskByID(ctx context.Context, taskID int64) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to find task by ID: %w", err)
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// UpdateTask applies a partial update. Only title, description and status are
// mutable; creator and timestamps cannot be overwritten through this path.
func (s *taskService) UpdateTask(ctx context.Context, taskID int64, req model.UpdateTaskRequest) (*model.Task, error) {
	existing, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to find task for update: %w", err)
	}
	if existing == nil {
		return nil, ErrTaskNotFound
	}

	if req.Title != nil {
		existing.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.Status != nil {
		existing.Status = *req.Status
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update task in repo: %w", err)
	}
	return existing, nil
}

// DeleteTask removes a task. Deleting an id that does not exist is a no-op.
func (s *taskService) DeleteTask(ctx context.Context, taskID int64) error {
	if _, err := s.repo.Delete(ctx, taskID); err != nil {
		return fmt.Errorf("failed to delete task in repo: %w", err)
	}
	return nil
}
