package service

import "errors"

// Sentinel errors that handlers map onto HTTP status codes. Anything else
// coming out of a service is treated as an internal failure.
var (
	// ErrUserExists is returned by Register for a duplicate username.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned by Login when the username is
	// unknown or the password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrTaskNotFound is returned when no live task matches the given id.
	ErrTaskNotFound = errors.New("task not found")
	// ErrTitleRequired is returned when a task is created without a title.
	ErrTitleRequired = errors.New("title is required")
	// ErrInvalidStatus is returned when a task status is outside the enum.
	ErrInvalidStatus = errors.New("invalid task status")
)
