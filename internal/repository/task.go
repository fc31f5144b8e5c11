// Package repository provides persistence implementations for the
// authentication and task services using a PostgreSQL database.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/atinyakov/TaskManager/internal/models"
)

// PostgresTaskRepository implements task storage operations against a PostgreSQL database.
// Deletion is soft: rows are flagged and later purged by the background cleaner,
// so every read filters on deleted = false.
type PostgresTaskRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresTaskRepository creates a new PostgresTaskRepository using the provided *sql.DB.
// db must be a valid connection to a PostgreSQL instance.
func NewPostgresTaskRepository(db *sql.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{DB: db}
}

// CreateTask inserts a new task under a store-assigned identifier and
// returns the persisted record with its timestamps.
func (s *PostgresTaskRepository) CreateTask(ctx context.Context, title, description string, status models.TaskStatus) (*models.Task, error) {
	task := &models.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Status:      status,
	}
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO tasks (id, title, description, status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`, task.ID, title, description, status).Scan(&task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("CreateTask: %w", err)
	}
	return task, nil
}

// GetTasks fetches all live tasks, newest-created first.
func (s *PostgresTaskRepository) GetTasks(ctx context.Context) ([]models.Task, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, title, description, status, created_at, updated_at FROM tasks
		WHERE deleted = false ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("GetTasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return tasks, nil
}

// GetTaskByID retrieves a single live task by ID.
// Returns sql.ErrNoRows if no such task exists.
func (s *PostgresTaskRepository) GetTaskByID(ctx context.Context, id string) (*models.Task, error) {
	var t models.Task
	err := s.DB.QueryRowContext(ctx, `
		SELECT id, title, description, status, created_at, updated_at FROM tasks
		WHERE id = $1 AND deleted = false
	`, id).Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTask writes the task's mutable fields and refreshes updated_at.
// Returns the post-update record, or sql.ErrNoRows if the task is gone.
func (s *PostgresTaskRepository) UpdateTask(ctx context.Context, task models.Task) (*models.Task, error) {
	err := s.DB.QueryRowContext(ctx, `
		UPDATE tasks SET title = $1, description = $2, status = $3, updated_at = now()
		WHERE id = $4 AND deleted = false
		RETURNING created_at, updated_at
	`, task.Title, task.Description, task.Status, task.ID).Scan(&task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// SoftDeleteTask flags the task as deleted so reads no longer see it.
// The row itself is removed later by the cleaner. Returns false if the
// task did not exist (or was already deleted).
func (s *PostgresTaskRepository) SoftDeleteTask(ctx context.Context, id string) (bool, error) {
	res, err := s.DB.ExecContext(ctx, `
		UPDATE tasks SET deleted = true, updated_at = now()
		WHERE id = $1 AND deleted = false
	`, id)
	if err != nil {
		return false, fmt.Errorf("SoftDeleteTask: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return rows > 0, nil
}
