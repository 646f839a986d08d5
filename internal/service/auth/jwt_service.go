package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing session tokens.
type JWTService interface {
	// GenerateToken creates a signed session token bound to the given user
	// ID, expiring after the configured lifetime.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns ErrExpiredToken for expired tokens and
	// ErrInvalidToken for malformed or tampered ones.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// RefreshToken verifies the signature of an existing, possibly expired
	// token and issues a fresh one bound to the same user ID. Expiry is
	// deliberately ignored; a tampered or malformed token yields
	// ErrInvalidToken. The user's continued existence is not re-checked.
	RefreshToken(ctx context.Context, tokenString string) (string, error)

	// TokenLifetime reports the configured token lifetime, used by
	// handlers to populate expiry fields in responses.
	TokenLifetime() time.Duration
}

// Claims represents the verified content of a session token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
