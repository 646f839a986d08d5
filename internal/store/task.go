package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/taskhive/taskhive-api/internal/domain"
)

// TaskFilter narrows the result of a List call. Nil/empty fields match
// everything.
type TaskFilter struct {
	// Completed, when non-nil, matches tasks with exactly this completion
	// state.
	Completed *bool

	// Priority, when non-empty, matches tasks with exactly this priority.
	Priority string
}

// TaskUpdate describes a partial update. Nil fields are left unchanged.
type TaskUpdate struct {
	Title       *string
	Description *string
	Completed   *bool
	DueDate     *time.Time
	Priority    *string

	// PrioritySet distinguishes "no priority change" from "clear the
	// priority", since a normalized unknown priority arrives here as nil.
	PrioritySet bool
}

// TaskStore defines the interface for task data persistence. Every
// operation that touches an existing row is scoped to the owning user's
// ID; a row that exists under another owner behaves exactly like a row
// that does not exist.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves the task with the given ID owned by userID.
	// Returns ErrTaskNotFound if no such row exists under that owner.
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Task, error)

	// List returns the tasks owned by userID matching the filter, ordered
	// by creation time descending (newest first). Returns an empty slice,
	// not nil, when nothing matches.
	List(ctx context.Context, userID uuid.UUID, filter TaskFilter) ([]*domain.Task, error)

	// Update applies the partial update to the task with the given ID
	// owned by userID and returns the updated row.
	// Returns ErrTaskNotFound if no such row exists under that owner.
	Update(ctx context.Context, userID, id uuid.UUID, update TaskUpdate) (*domain.Task, error)

	// Delete removes the task with the given ID owned by userID.
	// Returns ErrTaskNotFound if no such row exists under that owner.
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// WithTx returns a TaskStore bound to the provided transaction. The
	// transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) TaskStore
}
