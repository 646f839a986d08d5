package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/taskhive/taskhive-api/internal/domain"
	"github.com/taskhive/taskhive-api/internal/platform/logger"
	"github.com/taskhive/taskhive-api/internal/redact"
	"github.com/taskhive/taskhive-api/internal/store"
)

// TaskCreate carries the caller-supplied fields for creating a task.
type TaskCreate struct {
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    *string
}

// TaskPatch carries the optional fields of a partial update. A nil field
// means "leave unchanged". PrioritySet distinguishes an explicit priority
// value (possibly coerced away) from an absent one.
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
	DueDate     *time.Time
	Priority    *string
	PrioritySet bool
}

// ListFilter carries the raw query filters for listing tasks. Completed is
// the literal query value: only "true" and "false" select a filter, any
// other value (including empty) is ignored. Priority filters on the exact
// stored value.
type ListFilter struct {
	Completed string
	Priority  string
}

// TaskService implements per-user task CRUD. Every operation is scoped to
// the owning user; a task belonging to someone else is indistinguishable
// from one that does not exist.
type TaskService struct {
	taskStore store.TaskStore
	logger    *slog.Logger
	now       func() time.Time
}

// NewTaskService creates a TaskService backed by the given store.
func NewTaskService(taskStore store.TaskStore, log *slog.Logger) (*TaskService, error) {
	if taskStore == nil {
		return nil, fmt.Errorf("taskStore cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &TaskService{
		taskStore: taskStore,
		logger:    log.With(slog.String("component", "task_service")),
		now:       time.Now,
	}, nil
}

// WithTimeFunc overrides the clock used for due-date validation. Tests use
// this to pin "today".
func (s *TaskService) WithTimeFunc(now func() time.Time) *TaskService {
	s.now = now
	return s
}

// Create validates and persists a new task for the user. An unrecognized
// priority is silently dropped, never rejected.
func (s *TaskService) Create(ctx context.Context, userID uuid.UUID, in TaskCreate) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if in.DueDate != nil {
		if err := domain.ValidateDueDate(*in.DueDate, s.now()); err != nil {
			return nil, err
		}
	}

	task, err := domain.NewTask(userID, in.Title, in.Description, in.DueDate, in.Priority)
	if err != nil {
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		log.Error("failed to create task",
			slog.String("user_id", userID.String()),
			slog.String("error", redact.Error(err)))
		return nil, err
	}

	log.Debug("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("user_id", userID.String()))
	return task, nil
}

// List returns the user's tasks, newest first, narrowed by the filter. A
// user with no matching tasks gets an empty slice.
func (s *TaskService) List(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	sf := store.TaskFilter{Priority: filter.Priority}
	switch filter.Completed {
	case "true":
		v := true
		sf.Completed = &v
	case "false":
		v := false
		sf.Completed = &v
	}

	tasks, err := s.taskStore.List(ctx, userID, sf)
	if err != nil {
		log.Error("failed to list tasks",
			slog.String("user_id", userID.String()),
			slog.String("error", redact.Error(err)))
		return nil, err
	}
	return tasks, nil
}

// GetByID returns the user's task with the given ID, or
// store.ErrTaskNotFound if it does not exist or belongs to another user.
func (s *TaskService) GetByID(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	return s.taskStore.GetByID(ctx, userID, taskID)
}

// Update applies a partial update to the user's task and returns the
// updated row. Supplied fields are validated with the same rules as
// creation; absent fields are left untouched.
func (s *TaskService) Update(ctx context.Context, userID, taskID uuid.UUID, patch TaskPatch) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if patch.Title != nil {
		if err := domain.ValidateTitle(*patch.Title); err != nil {
			return nil, err
		}
	}
	if patch.DueDate != nil {
		if err := domain.ValidateDueDate(*patch.DueDate, s.now()); err != nil {
			return nil, err
		}
	}

	update := store.TaskUpdate{
		Title:       patch.Title,
		Description: patch.Description,
		Completed:   patch.Completed,
		DueDate:     patch.DueDate,
	}
	if patch.PrioritySet {
		update.Priority = domain.NormalizePriority(patch.Priority)
		update.PrioritySet = true
	}

	task, err := s.taskStore.Update(ctx, userID, taskID, update)
	if err != nil {
		if !errors.Is(err, store.ErrTaskNotFound) {
			log.Error("failed to update task",
				slog.String("task_id", taskID.String()),
				slog.String("user_id", userID.String()),
				slog.String("error", redact.Error(err)))
		}
		return nil, err
	}

	log.Debug("task updated", slog.String("task_id", task.ID.String()))
	return task, nil
}

// Delete removes the user's task, or returns store.ErrTaskNotFound if it
// does not exist or belongs to another user.
func (s *TaskService) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.taskStore.Delete(ctx, userID, taskID); err != nil {
		if !errors.Is(err, store.ErrTaskNotFound) {
			log.Error("failed to delete task",
				slog.String("task_id", taskID.String()),
				slog.String("user_id", userID.String()),
				slog.String("error", redact.Error(err)))
		}
		return err
	}

	log.Debug("task deleted", slog.String("task_id", taskID.String()))
	return nil
}
