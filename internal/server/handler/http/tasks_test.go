package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/atinyakov/TaskManager/internal/models"
	handler "github.com/atinyakov/TaskManager/internal/server/handler/http"
	"github.com/atinyakov/TaskManager/internal/service"
)

// fakeTaskService records calls and returns preconfigured results.
type fakeTaskService struct {
	tasks []models.Task
	task  *models.Task
	err   error

	receivedID    string
	receivedPatch models.TaskPatch
}

func (f *fakeTaskService) List(ctx context.Context) ([]models.Task, error) {
	return f.tasks, f.err
}

func (f *fakeTaskService) Create(ctx context.Context, title, description, status string) (*models.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Task{
		ID:          "t-new",
		Title:       title,
		Description: description,
		Status:      models.TaskStatus(status),
	}, nil
}

func (f *fakeTaskService) Update(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error) {
	f.receivedID = id
	f.receivedPatch = patch
	return f.task, f.err
}

func (f *fakeTaskService) Delete(ctx context.Context, id string) error {
	f.receivedID = id
	return f.err
}

// newTaskRouter mounts the handler on a chi router so URL params resolve.
func newTaskRouter(svc handler.TaskService) http.Handler {
	h := &handler.TaskHandler{TaskService: svc}
	r := chi.NewRouter()
	r.Get("/api/tasks", h.List)
	r.Post("/api/tasks", h.Create)
	r.Put("/api/tasks/{id}", h.Update)
	r.Delete("/api/tasks/{id}", h.Delete)
	return r
}

func TestTaskHandler_List(t *testing.T) {
	fake := &fakeTaskService{tasks: []models.Task{
		{ID: "t2", Title: "Task 2", Status: models.StatusDone},
		{ID: "t1", Title: "Task 1", Status: models.StatusToDo},
	}}
	router := newTaskRouter(fake)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tasks", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want %d", w.Code, http.StatusOK)
	}
	var got []models.Task
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(got) != 2 || got[0].ID != "t2" || got[1].ID != "t1" {
		t.Errorf("unexpected tasks: %+v", got)
	}
}

func TestTaskHandler_List_EmptyIsArray(t *testing.T) {
	router := newTaskRouter(&fakeTaskService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tasks", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want %d", w.Code, http.StatusOK)
	}
	if body := w.Body.String(); body != "[]\n" {
		t.Errorf("body = %q; want empty JSON array", body)
	}
}

func TestTaskHandler_List_StoreError(t *testing.T) {
	router := newTaskRouter(&fakeTaskService{err: errors.New("db down")})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tasks", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want %d", w.Code, http.StatusInternalServerError)
	}
}

func TestTaskHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		serviceErr     error
		expectedCode   int
		expectedSubstr string
	}{
		{
			name:           "invalid JSON",
			body:           `not-a-json`,
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "invalid request",
		},
		{
			name:           "missing title",
			body:           `{"description":"No title"}`,
			serviceErr:     service.ErrTitleRequired,
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "Title is required",
		},
		{
			name:           "invalid status",
			body:           `{"title":"x","status":"Blocked"}`,
			serviceErr:     service.ErrInvalidStatus,
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "Invalid status",
		},
		{
			name:           "store error",
			body:           `{"title":"x"}`,
			serviceErr:     errors.New("db down"),
			expectedCode:   http.StatusInternalServerError,
			expectedSubstr: "Error creating task",
		},
		{
			name:           "success echoes title",
			body:           `{"title":"New Task","description":"Testing","status":"To Do"}`,
			expectedCode:   http.StatusCreated,
			expectedSubstr: `"title":"New Task"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTaskRouter(&fakeTaskService{err: tt.serviceErr})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewBufferString(tt.body))
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedCode {
				t.Fatalf("status = %d; want %d", w.Code, tt.expectedCode)
			}
			if !bytes.Contains(w.Body.Bytes(), []byte(tt.expectedSubstr)) {
				t.Errorf("expected body to contain %q, got %q", tt.expectedSubstr, w.Body.String())
			}
		})
	}
}

func TestTaskHandler_Update_Success(t *testing.T) {
	fake := &fakeTaskService{task: &models.Task{
		ID:          "t1",
		Title:       "X",
		Description: "keep",
		Status:      models.StatusToDo,
	}}
	router := newTaskRouter(fake)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/tasks/t1", bytes.NewBufferString(`{"title":"X"}`))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want %d", w.Code, http.StatusOK)
	}
	if fake.receivedID != "t1" {
		t.Errorf("service received id = %q; want %q", fake.receivedID, "t1")
	}
	if fake.receivedPatch.Title == nil || *fake.receivedPatch.Title != "X" {
		t.Errorf("service received patch = %+v; want title X", fake.receivedPatch)
	}
	if fake.receivedPatch.Description != nil || fake.receivedPatch.Status != nil {
		t.Errorf("absent fields must stay nil in the patch: %+v", fake.receivedPatch)
	}

	var got models.Task
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if got.Title != "X" || got.Description != "keep" {
		t.Errorf("unexpected task: %+v", got)
	}
}

func TestTaskHandler_Update_NotFound(t *testing.T) {
	router := newTaskRouter(&fakeTaskService{err: service.ErrTaskNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/tasks/missing", bytes.NewBufferString(`{"title":"New"}`))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want %d", w.Code, http.StatusNotFound)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("Task not found")) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestTaskHandler_Update_BadJSON(t *testing.T) {
	router := newTaskRouter(&fakeTaskService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/tasks/t1", bytes.NewBufferString(`{`))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want %d", w.Code, http.StatusBadRequest)
	}
}

func TestTaskHandler_Delete_Success(t *testing.T) {
	fake := &fakeTaskService{}
	router := newTaskRouter(fake)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/tasks/t1", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want %d", w.Code, http.StatusOK)
	}
	if fake.receivedID != "t1" {
		t.Errorf("service received id = %q; want %q", fake.receivedID, "t1")
	}
	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp["message"] != "Task deleted" {
		t.Errorf("message = %q; want %q", resp["message"], "Task deleted")
	}
}

func TestTaskHandler_Delete_NotFound(t *testing.T) {
	router := newTaskRouter(&fakeTaskService{err: service.ErrTaskNotFound})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/tasks/missing", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want %d", w.Code, http.StatusNotFound)
	}
}

func TestTaskHandler_Delete_StoreError(t *testing.T) {
	router := newTaskRouter(&fakeTaskService{err: errors.New("db down")})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/tasks/t1", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want %d", w.Code, http.StatusInternalServerError)
	}
}
