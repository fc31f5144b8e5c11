// Package http provides HTTP handlers for user authentication and task
// management.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atinyakov/TaskManager/internal/models"
	"github.com/atinyakov/TaskManager/internal/service"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// Register creates a new user and returns it with a session token.
	Register(ctx context.Context, username, password string) (*models.User, string, error)
	// Login verifies credentials and returns the user with a session token.
	Login(ctx context.Context, username, password string) (*models.User, string, error)
}

// AuthHandler handles HTTP requests for user registration and login.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
}

// CredentialsRequest represents the JSON payload for registration and login.
type CredentialsRequest struct {
	// Username is the login name of the user.
	Username string `json:"username"`
	// Password is the plaintext password; it is hashed before storage.
	Password string `json:"password"`
}

// AuthResponse is the success body of registration and login.
type AuthResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Register handles user registration requests.
// It expects a JSON body with non-empty "username" and "password" fields.
// On success it responds 201 with the new user's id, username, and a
// session token. A duplicate username is reported as 400.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}

	user, token, err := h.AuthService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			writeMessage(w, http.StatusBadRequest, "User already exists")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Error registering user")
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{
		ID:       user.ID,
		Username: user.Username,
		Token:    token,
	})
}

// Login handles login requests.
// It expects a JSON body with "username" and "password".
// On success it responds 200 with the user's id, username, and a session
// token. Unknown usernames and wrong passwords are both reported as 401.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}

	user, token, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Login failed")
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		ID:       user.ID,
		Username: user.Username,
		Token:    token,
	})
}
