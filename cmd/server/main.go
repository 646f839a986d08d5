// Package main implements the entry point for the TaskHive API server,
// a task-management backend with token-authenticated per-user task CRUD.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/taskhive/taskhive-api/internal/config"
	"github.com/taskhive/taskhive-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a migration command (up, down, status, version, create) and exit")
	migrationName := flag.String("migration-name", "",
		"name for a new migration (used with -migrate=create)")
	migrationsDir := flag.String("migrations-dir", "migrations",
		"directory holding goose migration files")
	flag.Parse()

	if err := run(*migrateCmd, *migrationName, *migrationsDir); err != nil {
		fmt.Fprintf(os.Stderr, "taskhive-api: %v\n", err)
		os.Exit(1)
	}
}

func run(migrateCmd, migrationName, migrationsDir string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	if migrateCmd != "" {
		return runMigrations(cfg, migrateCmd, migrationName, migrationsDir)
	}

	app, err := newApplication(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(context.Background(), app.setupRouter())
}
