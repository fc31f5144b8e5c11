// Package models defines the core data structures for users and tasks.
package models

import "time"

// User represents an application user with credentials.
type User struct {
	// ID is the unique identifier for the user.
	ID string `json:"id"`
	// Username is the login name chosen by the user.
	Username string `json:"username"`
	// PasswordHash is the hashed password of the user. It is never serialized.
	PasswordHash string `json:"-"`
}

// TaskStatus defines the set of valid task statuses.
type TaskStatus string

const (
	// StatusToDo marks a task that has not been started.
	StatusToDo TaskStatus = "To Do"
	// StatusInProgress marks a task being worked on.
	StatusInProgress TaskStatus = "In Progress"
	// StatusDone marks a completed task.
	StatusDone TaskStatus = "Done"
)

// Valid reports whether s is one of the enumerated task statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task represents a single work item.
type Task struct {
	// ID is the unique identifier for the task.
	ID string `json:"id"`
	// Title is a short required summary of the task.
	Title string `json:"title"`
	// Description holds optional free-form details.
	Description string `json:"description"`
	// Status is the current lifecycle state of the task.
	Status TaskStatus `json:"status"`
	// CreatedAt is the store-assigned creation timestamp.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is refreshed by the store on every update.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TaskPatch carries a partial task update. Nil fields are left unchanged.
type TaskPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}
