package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/taskhive/taskhive-api/internal/config"
	"github.com/taskhive/taskhive-api/internal/platform/postgres"
	"github.com/taskhive/taskhive-api/internal/service"
	"github.com/taskhive/taskhive-api/internal/service/auth"
	"github.com/taskhive/taskhive-api/internal/store"
)

// application holds the shared application dependencies so wiring and
// shutdown live in one place.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore
	taskStore store.TaskStore

	jwtService  auth.JWTService
	authService *service.AuthService
	taskService *service.TaskService
}

// newApplication wires every dependency from configuration: database
// connection, stores, token service, and the domain services.
func newApplication(cfg *config.Config, log *slog.Logger) (*application, error) {
	db, err := setupAppDatabase(cfg, log)
	if err != nil {
		return nil, err
	}

	userStore := postgres.NewPostgresUserStore(db, log)
	taskStore := postgres.NewPostgresTaskStore(db, log)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	verifier := auth.NewBcryptVerifier()

	authService, err := service.NewAuthService(userStore, jwtService, hasher, verifier, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	taskService, err := service.NewTaskService(taskStore, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	return &application{
		config:      cfg,
		logger:      log,
		db:          db,
		userStore:   userStore,
		taskStore:   taskStore,
		jwtService:  jwtService,
		authService: authService,
		taskService: taskService,
	}, nil
}

// cleanup releases held resources; called after the HTTP server drains.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
