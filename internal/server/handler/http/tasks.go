// Package http provides HTTP handlers for user authentication and task
// management.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atinyakov/TaskManager/internal/models"
	"github.com/atinyakov/TaskManager/internal/service"
)

// TaskService defines the interface for task operations
// required by the TaskHandler.
type TaskService interface {
	// List returns all tasks, newest-created first.
	List(ctx context.Context) ([]models.Task, error)
	// Create validates and persists a new task.
	Create(ctx context.Context, title, description, status string) (*models.Task, error)
	// Update applies a partial update and returns the post-update record.
	Update(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error)
	// Delete removes the task with the given id.
	Delete(ctx context.Context, id string) error
}

// TaskHandler handles HTTP requests for task CRUD.
type TaskHandler struct {
	// TaskService performs the underlying task operations.
	TaskService TaskService
}

// CreateTaskRequest represents the JSON payload for task creation.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// List handles GET /api/tasks requests.
// It responds with the full set of tasks, newest first.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.TaskService.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Error fetching tasks")
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	writeJSON(w, http.StatusOK, tasks)
}

// Create handles POST /api/tasks requests.
// A missing title or an out-of-enum status is rejected with 400.
// On success it responds 201 with the persisted task.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}

	task, err := h.TaskService.Create(r.Context(), req.Title, req.Description, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTitleRequired):
			writeMessage(w, http.StatusBadRequest, "Title is required")
		case errors.Is(err, service.ErrInvalidStatus):
			writeMessage(w, http.StatusBadRequest, "Invalid status")
		default:
			writeMessage(w, http.StatusInternalServerError, "Error creating task")
		}
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

// Update handles PUT /api/tasks/{id} requests.
// Only the fields present in the body are applied. An unknown id is
// reported as 404; on success the post-update record is returned.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch models.TaskPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}

	task, err := h.TaskService.Update(r.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTaskNotFound):
			writeMessage(w, http.StatusNotFound, "Task not found")
		case errors.Is(err, service.ErrInvalidStatus):
			writeMessage(w, http.StatusBadRequest, "Invalid status")
		default:
			writeMessage(w, http.StatusInternalServerError, "Error updating task")
		}
		return
	}

	writeJSON(w, http.StatusOK, task)
}

// Delete handles DELETE /api/tasks/{id} requests.
// An unknown id is reported as 404; on success it responds 200 with a
// deletion acknowledgment.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.TaskService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			writeMessage(w, http.StatusNotFound, "Task not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Error deleting task")
		return
	}

	writeMessage(w, http.StatusOK, "Task deleted")
}
