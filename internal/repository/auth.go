// Package repository provides persistence implementations for the
// authentication and task services using a PostgreSQL database.
package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/atinyakov/TaskManager/internal/cryptox"
	"github.com/atinyakov/TaskManager/internal/models"
)

// PostgresAuthRepository implements credential storage using a PostgreSQL database.
// It owns password hashing: plaintext passwords never reach the database.
type PostgresAuthRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresAuthRepository creates a new PostgresAuthRepository with the given database connection.
// db must be a valid *sql.DB connected to a PostgreSQL instance.
func NewPostgresAuthRepository(db *sql.DB) *PostgresAuthRepository {
	return &PostgresAuthRepository{DB: db}
}

// UserExists checks whether a user with the specified username exists in the database.
// It returns true if the user exists, false otherwise.
// If an error occurs during the query, it is returned.
func (s *PostgresAuthRepository) UserExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`,
		username,
	).Scan(&exists)
	return exists, err
}

// CreateUser persists a new user under a store-assigned identifier,
// hashing the password before it is written. Returns the created record.
func (s *PostgresAuthRepository) CreateUser(ctx context.Context, username, password string) (*models.User, error) {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:       uuid.NewString(),
		Username: username,
	}
	_, err = s.DB.ExecContext(
		ctx,
		`INSERT INTO users (id, username, password_hash) VALUES ($1, $2, $3)`,
		user.ID, username, hash,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// FindByUsername retrieves a user by username, including the password hash,
// for credential verification. Returns sql.ErrNoRows if no such user exists.
func (s *PostgresAuthRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.DB.QueryRowContext(
		ctx,
		`SELECT id, username, password_hash FROM users WHERE username = $1`,
		username,
	).Scan(&user.ID, &user.Username, &user.PasswordHash)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID retrieves a user by identifier with the password hash excluded.
// Returns sql.ErrNoRows if no such user exists.
func (s *PostgresAuthRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.DB.QueryRowContext(
		ctx,
		`SELECT id, username FROM users WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.Username)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// VerifyPassword reports whether password matches the stored hash of user.
func (s *PostgresAuthRepository) VerifyPassword(user *models.User, password string) (bool, error) {
	return cryptox.VerifyPassword(password, user.PasswordHash)
}
