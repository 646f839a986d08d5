package mocks

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/taskhive/taskhive-api/internal/domain"
	"github.com/taskhive/taskhive-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, task *domain.Task) error
	GetByIDFn func(ctx context.Context, userID, id uuid.UUID) (*domain.Task, error)
	ListFn    func(ctx context.Context, userID uuid.UUID, filter store.TaskFilter) ([]*domain.Task, error)
	UpdateFn  func(ctx context.Context, userID, id uuid.UUID, update store.TaskUpdate) (*domain.Task, error)
	DeleteFn  func(ctx context.Context, userID, id uuid.UUID) error

	// Data for default implementation, keyed by task ID
	Tasks map[uuid.UUID]*domain.Task

	// CreateError is returned by the default Create when set
	CreateError error
}

// NewMockTaskStore creates a new mock store with initialized defaults
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks: make(map[uuid.UUID]*domain.Task),
	}
}

// Create implements the TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.Tasks[task.ID] = task
	return nil
}

// GetByID implements the TaskStore interface
func (m *MockTaskStore) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, userID, id)
	}

	task, exists := m.Tasks[id]
	if !exists || task.UserID != userID {
		return nil, store.ErrTaskNotFound
	}
	return task, nil
}

// List implements the TaskStore interface. The default implementation
// applies the filter to the in-memory map and sorts newest first.
func (m *MockTaskStore) List(
	ctx context.Context,
	userID uuid.UUID,
	filter store.TaskFilter,
) ([]*domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, userID, filter)
	}

	tasks := make([]*domain.Task, 0)
	for _, task := range m.Tasks {
		if task.UserID != userID {
			continue
		}
		if filter.Completed != nil && task.Completed != *filter.Completed {
			continue
		}
		if filter.Priority != "" {
			if task.Priority == nil || *task.Priority != filter.Priority {
				continue
			}
		}
		tasks = append(tasks, task)
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return tasks, nil
}

// Update implements the TaskStore interface
func (m *MockTaskStore) Update(
	ctx context.Context,
	userID, id uuid.UUID,
	update store.TaskUpdate,
) (*domain.Task, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, userID, id, update)
	}

	task, exists := m.Tasks[id]
	if !exists || task.UserID != userID {
		return nil, store.ErrTaskNotFound
	}

	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = update.Description
	}
	if update.Completed != nil {
		task.Completed = *update.Completed
	}
	if update.DueDate != nil {
		task.DueDate = update.DueDate
	}
	if update.PrioritySet {
		task.Priority = update.Priority
	}
	task.UpdatedAt = time.Now().UTC()

	return task, nil
}

// Delete implements the TaskStore interface
func (m *MockTaskStore) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, id)
	}

	task, exists := m.Tasks[id]
	if !exists || task.UserID != userID {
		return store.ErrTaskNotFound
	}
	delete(m.Tasks, id)
	return nil
}

// WithTx implements the TaskStore interface; the mock has no transaction
// state, so it returns itself.
func (m *MockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return m
}
