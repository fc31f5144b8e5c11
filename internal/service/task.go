// Package service provides business-logic services for authentication and
// task management, delegating persistence to repository interfaces.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atinyakov/TaskManager/internal/models"
)

// TaskRepository defines the persistence operations needed by the TaskService.
type TaskRepository interface {
	// CreateTask persists a new task and returns it with store-assigned
	// identifier and timestamps.
	CreateTask(ctx context.Context, title, description string, status models.TaskStatus) (*models.Task, error)
	// GetTasks retrieves all live tasks, newest-created first.
	GetTasks(ctx context.Context) ([]models.Task, error)
	// GetTaskByID fetches a single live task, or sql.ErrNoRows if none.
	GetTaskByID(ctx context.Context, id string) (*models.Task, error)
	// UpdateTask writes the task's fields and returns the updated record,
	// or sql.ErrNoRows if the task is gone.
	UpdateTask(ctx context.Context, task models.Task) (*models.Task, error)
	// SoftDeleteTask removes the task from view, reporting whether a live
	// task was actually deleted.
	SoftDeleteTask(ctx context.Context, id string) (bool, error)
}

// TaskService implements task CRUD business logic: field validation,
// defaulting, and not-found semantics over the task store.
type TaskService struct {
	// repo is the underlying persistence repository.
	repo TaskRepository
}

// NewTaskService constructs a TaskService with the provided TaskRepository.
func NewTaskService(repo TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// List returns every live task, newest-created first.
func (s *TaskService) List(ctx context.Context) ([]models.Task, error) {
	return s.repo.GetTasks(ctx)
}

// Create validates and persists a new task. Title must be non-empty;
// status defaults to "To Do" and must be one of the enumerated values.
func (s *TaskService) Create(ctx context.Context, title, description, status string) (*models.Task, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}

	st := models.StatusToDo
	if status != "" {
		st = models.TaskStatus(status)
		if !st.Valid() {
			return nil, ErrInvalidStatus
		}
	}

	return s.repo.CreateTask(ctx, title, description, st)
}

// Update applies the non-nil fields of patch to the task with the given id
// and returns the post-update record. Returns ErrTaskNotFound if no live
// task matches id, ErrInvalidStatus if the patched status is outside the enum.
func (s *TaskService) Update(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error) {
	task, err := s.repo.GetTaskByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		st := models.TaskStatus(*patch.Status)
		if !st.Valid() {
			return nil, ErrInvalidStatus
		}
		task.Status = st
	}

	updated, err := s.repo.UpdateTask(ctx, *task)
	if err != nil {
		// the task can disappear between the read and the write
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return updated, nil
}

// Delete removes the task with the given id from view.
// Returns ErrTaskNotFound if no live task matches id.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.SoftDeleteTask(ctx, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if !deleted {
		return ErrTaskNotFound
	}
	return nil
}
