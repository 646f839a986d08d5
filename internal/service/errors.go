package service

import "errors"

// Service-level errors surfaced to the HTTP layer.
var (
	// ErrInvalidCredentials is returned on login when the email is unknown
	// or the password does not match. The two cases are intentionally
	// indistinguishable so callers cannot probe which emails exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned on registration when a user with the same
	// email already exists, including when a concurrent registration wins
	// the race on the store's unique constraint.
	ErrEmailTaken = errors.New("email already registered")
)
