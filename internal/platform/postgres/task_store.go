package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/taskhive/taskhive-api/internal/domain"
	"github.com/taskhive/taskhive-api/internal/platform/logger"
	"github.com/taskhive/taskhive-api/internal/redact"
	"github.com/taskhive/taskhive-api/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller. If logger is nil, the
// default logger is used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// Create implements store.TaskStore.Create
// Returns store.ErrInvalidEntity if the owning user does not exist
// (foreign key violation).
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO tasks (id, user_id, title, description, completed, due_date, priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		task.ID,
		task.UserID,
		task.Title,
		task.Description,
		task.Completed,
		task.DueDate,
		task.Priority,
		task.CreatedAt,
		task.UpdatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during task creation",
				slog.String("task_id", task.ID.String()),
				slog.String("user_id", task.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, task.UserID)
		}

		log.Error("failed to create task",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", task.ID.String()),
			slog.String("user_id", task.UserID.String()))
		return MapError(err)
	}

	log.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("user_id", task.UserID.String()))
	return nil
}

// GetByID implements store.TaskStore.GetByID
// Ownership and existence are checked together: a task owned by another
// user is indistinguishable from a missing one.
func (s *PostgresTaskStore) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, title, description, completed, due_date, priority, created_at, updated_at
		FROM tasks
		WHERE id = $1 AND user_id = $2
	`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found",
				slog.String("task_id", id.String()),
				slog.String("user_id", userID.String()))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task by ID",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", id.String()))
		return nil, MapError(err)
	}

	return task, nil
}

// List implements store.TaskStore.List
// Results are ordered by creation time descending (newest first).
func (s *PostgresTaskStore) List(
	ctx context.Context,
	userID uuid.UUID,
	filter store.TaskFilter,
) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var sb strings.Builder
	sb.WriteString(`
		SELECT id, user_id, title, description, completed, due_date, priority, created_at, updated_at
		FROM tasks
		WHERE user_id = $1`)

	args := []any{userID}
	if filter.Completed != nil {
		args = append(args, *filter.Completed)
		fmt.Fprintf(&sb, " AND completed = $%d", len(args))
	}
	if filter.Priority != "" {
		args = append(args, filter.Priority)
		fmt.Fprintf(&sb, " AND priority = $%d", len(args))
	}
	sb.WriteString(" ORDER BY created_at DESC")

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		log.Error("failed to list tasks",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	tasks := []*domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Error("failed to scan task row",
				slog.String("error", redact.Error(err)))
			return nil, MapError(err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", redact.Error(err)))
		return nil, MapError(err)
	}

	log.Debug("listed tasks",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(tasks)))
	return tasks, nil
}

// Update implements store.TaskStore.Update
// Only the fields present in the update are written; updated_at is always
// bumped. A row-miss under the owner maps to store.ErrTaskNotFound, whether
// the task is missing or owned by someone else.
func (s *PostgresTaskStore) Update(
	ctx context.Context,
	userID, id uuid.UUID,
	update store.TaskUpdate,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	setClauses := []string{}
	args := []any{}

	addSet := func(column string, value any) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Title != nil {
		addSet("title", *update.Title)
	}
	if update.Description != nil {
		addSet("description", *update.Description)
	}
	if update.Completed != nil {
		addSet("completed", *update.Completed)
	}
	if update.DueDate != nil {
		addSet("due_date", *update.DueDate)
	}
	if update.PrioritySet {
		addSet("priority", update.Priority)
	}
	addSet("updated_at", time.Now().UTC())

	args = append(args, id)
	idPos := len(args)
	args = append(args, userID)
	userPos := len(args)

	query := fmt.Sprintf(`
		UPDATE tasks
		SET %s
		WHERE id = $%d AND user_id = $%d
		RETURNING id, user_id, title, description, completed, due_date, priority, created_at, updated_at
	`, strings.Join(setClauses, ", "), idPos, userPos)

	task, err := scanTask(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found for update",
				slog.String("task_id", id.String()),
				slog.String("user_id", userID.String()))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to update task",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", id.String()))
		return nil, MapError(err)
	}

	log.Info("task updated",
		slog.String("task_id", id.String()),
		slog.String("user_id", userID.String()))
	return task, nil
}

// Delete implements store.TaskStore.Delete
// A zero-row delete maps to store.ErrTaskNotFound.
func (s *PostgresTaskStore) Delete(ctx context.Context, userID, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM tasks
		WHERE id = $1 AND user_id = $2
	`

	result, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", id.String()))
		return MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return MapError(err)
	}

	if rowsAffected == 0 {
		log.Debug("task not found for delete",
			slog.String("task_id", id.String()),
			slog.String("user_id", userID.String()))
		return store.ErrTaskNotFound
	}

	log.Info("task deleted",
		slog.String("task_id", id.String()),
		slog.String("user_id", userID.String()))
	return nil
}

// WithTx implements store.TaskStore.WithTx
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &PostgresTaskStore{
		db:     tx,
		logger: s.logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var task domain.Task
	err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&task.Completed,
		&task.DueDate,
		&task.Priority,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &task, nil
}
