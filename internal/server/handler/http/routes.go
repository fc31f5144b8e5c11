// Package http provides HTTP routing and middleware configuration
// for the task manager service.
package http

import (
	"net/http"

	"github.com/atinyakov/TaskManager/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves
// the task manager API. It applies JSON content-type enforcement and
// request logging globally, and bearer-token authentication to the
// task routes.
//
// Routes:
//
//	POST   /api/auth/register → authHandler.Register
//	POST   /api/auth/login    → authHandler.Login
//	GET    /api/tasks         → taskHandler.List   (protected)
//	POST   /api/tasks         → taskHandler.Create (protected)
//	PUT    /api/tasks/{id}    → taskHandler.Update (protected)
//	DELETE /api/tasks/{id}    → taskHandler.Delete (protected)
//
// Middleware chain (applied in order):
//  1. AllowContentType("application/json") — rejects non-JSON request bodies
//  2. WithRequestLogging(logger)           — logs incoming requests
//  3. BearerAuth(secret, users)            — task routes only
func NewRouter(
	authHandler *AuthHandler,
	taskHandler *TaskHandler,
	secret []byte,
	users middleware.UserProvider,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	// Mount API routes
	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected group: requires a valid bearer token
		r.Group(func(r chi.Router) {
			r.Use(middleware.BearerAuth(secret, users))

			r.Get("/tasks", taskHandler.List)
			r.Post("/tasks", taskHandler.Create)
			r.Put("/tasks/{id}", taskHandler.Update)
			r.Delete("/tasks/{id}", taskHandler.Delete)
		})
	})

	return r
}
