package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/taskhive/taskhive-api/internal/config"
	"github.com/taskhive/taskhive-api/internal/redact"
)

// slogGooseLogger adapts goose's logger interface to slog. Fatalf does not
// exit; the error propagates back to main, which owns process exit.
type slogGooseLogger struct{}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	slog.Info(fmt.Sprintf(format, v...))
}

func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Error(fmt.Sprintf(format, v...))
}

// runMigrations executes a goose command against the configured database
// and returns once the command completes.
func runMigrations(cfg *config.Config, command, migrationName, migrationsDir string) error {
	log := slog.Default().With(
		"correlation_id", uuid.New().String(),
		"component", "migrations",
		"command", command,
	)

	if cfg.Database.URL == "" {
		return fmt.Errorf("database URL is empty: check your configuration")
	}

	goose.SetLogger(&slogGooseLogger{})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database connection",
				"error", redact.Error(err))
		}
	}()

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	start := time.Now()
	log.Info("starting migration operation", "dir", migrationsDir)

	switch command {
	case "up":
		err = goose.Up(db, migrationsDir)
	case "down":
		err = goose.Down(db, migrationsDir)
	case "status":
		err = goose.Status(db, migrationsDir)
	case "version":
		err = goose.Version(db, migrationsDir)
	case "create":
		if migrationName == "" {
			return fmt.Errorf("migration name is required for create (use -migration-name)")
		}
		err = goose.Create(db, migrationsDir, migrationName, "sql")
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}

	if err != nil {
		log.Error("migration operation failed",
			"error", redact.Error(err),
			"duration_ms", time.Since(start).Milliseconds())
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	log.Info("migration operation completed",
		"duration_ms", time.Since(start).Milliseconds())
	return nil
}
