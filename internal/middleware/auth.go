// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/atinyakov/TaskManager/internal/auth"
	"github.com/atinyakov/TaskManager/internal/models"
)

type ctxKey string

const (
	userIDKey ctxKey = "userID"
	userKey   ctxKey = "user"
)

// UserProvider looks up the user a verified token refers to.
type UserProvider interface {
	// FindByID returns the user without the password hash,
	// or sql.ErrNoRows if no such user exists.
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// BearerAuth is a middleware that enforces bearer-token authentication.
//
// It extracts the token from the Authorization header, verifies its
// signature and expiry against secret, resolves the subject to a user via
// users, and stores both on the request context for downstream handlers.
//
// A request without a bearer token is rejected immediately. A verified
// token whose subject no longer matches a user row is let through with a
// nil user attached; downstream handlers decide what an absent identity
// means.
func BearerAuth(secret []byte, users UserProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				writeMessage(w, http.StatusUnauthorized, "Unauthorized: No token provided")
				return
			}

			userID, err := auth.GetUserIDFromToken(tokenString, secret)
			if err != nil {
				writeMessage(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			user, err := users.FindByID(r.Context(), userID)
			if err != nil && !errors.Is(err, sql.ErrNoRows) {
				writeMessage(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext extracts the authenticated user ID (the token
// subject) from the request context. Returns an empty string if not found.
func GetUserIDFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(userIDKey).(string); ok {
		return s
	}
	return ""
}

// GetUserFromContext extracts the resolved user record from the request
// context. Returns nil if the gate did not attach one.
func GetUserFromContext(ctx context.Context) *models.User {
	if u, ok := ctx.Value(userKey).(*models.User); ok {
		return u
	}
	return nil
}

func writeMessage(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
