// Package service provides business-logic services for authentication and
// task management, delegating persistence to repository interfaces.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atinyakov/TaskManager/internal/auth"
	"github.com/atinyakov/TaskManager/internal/models"
)

// AuthRepository defines the persistence operations
// required by the authentication service.
type AuthRepository interface {
	// UserExists returns true if a user with the given username exists.
	UserExists(ctx context.Context, username string) (bool, error)
	// CreateUser persists a new user with a hashed password and returns
	// the created record.
	CreateUser(ctx context.Context, username, password string) (*models.User, error)
	// FindByUsername returns the user with the given username, including
	// the password hash, or sql.ErrNoRows if none exists.
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	// VerifyPassword reports whether password matches the user's stored hash.
	VerifyPassword(user *models.User, password string) (bool, error)
}

// AuthService implements registration and login, issuing a signed session
// token on success.
type AuthService struct {
	// repo performs the data-layer operations.
	repo AuthRepository
	// secret signs issued session tokens.
	secret []byte
}

// NewAuthService constructs a new AuthService using the provided repository
// and token-signing secret.
func NewAuthService(repo AuthRepository, secret []byte) *AuthService {
	return &AuthService{repo: repo, secret: secret}
}

// Register creates a new user and returns the record together with a fresh
// session token. Returns ErrUserExists if the username is taken.
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, string, error) {
	exists, err := s.repo.UserExists(ctx, username)
	if err != nil {
		return nil, "", fmt.Errorf("check user: %w", err)
	}
	if exists {
		return nil, "", ErrUserExists
	}

	user, err := s.repo.CreateUser(ctx, username, password)
	if err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, s.secret)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

// Login verifies the credentials and returns the user with a fresh session
// token. Returns ErrInvalidCredentials for an unknown username or a
// mismatched password.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	ok, err := s.repo.VerifyPassword(user, password)
	if err != nil {
		return nil, "", fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.secret)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}
