package domain

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Common user validation errors
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters long")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// MinPasswordLength is the minimum accepted plaintext password length.
const MinPasswordLength = 6

// emailPattern accepts local-part@domain where the domain contains a dot.
// It deliberately stays loose: the address of record is whatever the user
// can receive mail at, not what RFC 5322 permits.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User represents a registered account.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Password       string    `json:"-"` // Plaintext, only populated during registration
	HashedPassword string    `json:"-"` // Never expose the hash in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a User with a fresh ID and timestamps from the given
// registration input. The plaintext password is kept on the struct until
// the service hashes it; it is never persisted or serialized as-is.
func NewUser(email, password, name string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Email:     email,
		Name:      name,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the user's fields. Email format and password length are
// checked before any store access so invalid input never reaches the
// database.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !emailPattern.MatchString(u.Email) {
		return ErrInvalidEmail
	}

	if u.Password != "" {
		if len(u.Password) < MinPasswordLength {
			return ErrPasswordTooShort
		}
	} else if u.HashedPassword == "" {
		// Users loaded from the store carry only the hash.
		return ErrEmptyPassword
	}

	return nil
}

// Profile is the projection of a User that leaves the process: id, email
// and name, with the creation timestamp included only where the caller
// asked for it. The password hash never appears here.
type Profile struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// Profile returns the outward-facing projection of the user without the
// creation timestamp.
func (u *User) Profile() Profile {
	return Profile{ID: u.ID, Email: u.Email, Name: u.Name}
}

// ProfileWithCreatedAt returns the projection including the creation
// timestamp, used by the by-ID lookup.
func (u *User) ProfileWithCreatedAt() Profile {
	createdAt := u.CreatedAt
	return Profile{ID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: &createdAt}
}
