package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/taskhive/taskhive-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The caller must have hashed
	// the password already; only HashedPassword is persisted.
	// Returns ErrEmailExists if the email is already taken, including when
	// a concurrent registration wins the race on the unique constraint.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// WithTx returns a UserStore bound to the provided transaction. The
	// transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) UserStore
}
