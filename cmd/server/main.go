// Package main initializes and starts the task manager HTTP server,
// setting up configuration, logging, database connections, repositories,
// services, handlers, and routing.
package main

import (
	"context"
	"fmt"
	"time"

	nethttp "net/http"

	"github.com/atinyakov/TaskManager/internal/config"
	"github.com/atinyakov/TaskManager/internal/db"
	"github.com/atinyakov/TaskManager/internal/logger"
	"github.com/atinyakov/TaskManager/internal/repository"
	"github.com/atinyakov/TaskManager/internal/server/handler/http"
	"github.com/atinyakov/TaskManager/internal/service"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()
	addr := options.Port
	dbName := options.DatabaseDSN

	// Print build metadata (or "N/A" if unset).
	buildVersion, buildDateOut := version, buildDate
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDateOut == "" {
		buildDateOut = "N/A"
	}
	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDateOut)

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// The token-signing secret must come from the environment.
	if options.JWTSecret == "" {
		zapLogger.Fatal("JWT_SECRET is not set")
	}
	secret := []byte(options.JWTSecret)

	// Initialize PostgreSQL connection.
	postgressDB, err := db.InitPostgres(dbName)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Purge soft-deleted tasks in the background.
	db.StartSoftDeleteCleaner(context.Background(), postgressDB,
		time.Hour,      // interval
		7*24*time.Hour, // retention: 7 days
		zapLogger,
	)

	// Initialize repositories for credentials and tasks.
	authRepo := repository.NewPostgresAuthRepository(postgressDB)
	taskRepo := repository.NewPostgresTaskRepository(postgressDB)

	// Initialize business-logic services.
	authService := service.NewAuthService(authRepo, secret)
	taskService := service.NewTaskService(taskRepo)

	// Create HTTP handlers for auth and task endpoints.
	authHandler := &http.AuthHandler{AuthService: authService}
	taskHandler := &http.TaskHandler{TaskService: taskService}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, taskHandler, secret, authRepo, zapLogger)

	// Create and start the HTTP server.
	server := &nethttp.Server{
		Addr:    addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
