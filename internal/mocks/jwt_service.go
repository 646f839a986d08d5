package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/taskhive/taskhive-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing
type MockJWTService struct {
	// GenerateTokenFn allows test cases to mock the GenerateToken behavior
	GenerateTokenFn func(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateTokenFn allows test cases to mock the ValidateToken behavior
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// RefreshTokenFn allows test cases to mock the RefreshToken behavior
	RefreshTokenFn func(ctx context.Context, tokenString string) (string, error)

	// Default values used when functions aren't explicitly defined
	Token       string
	Err         error
	ValidateErr error
	Claims      *auth.Claims
	Lifetime    time.Duration
}

// GenerateToken implements the auth.JWTService interface
func (m *MockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID)
	}
	return m.Token, m.Err
}

// ValidateToken implements the auth.JWTService interface
func (m *MockJWTService) ValidateToken(
	ctx context.Context,
	tokenString string,
) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}

// RefreshToken implements the auth.JWTService interface
func (m *MockJWTService) RefreshToken(ctx context.Context, tokenString string) (string, error) {
	if m.RefreshTokenFn != nil {
		return m.RefreshTokenFn(ctx, tokenString)
	}
	return m.Token, m.Err
}

// TokenLifetime implements the auth.JWTService interface
func (m *MockJWTService) TokenLifetime() time.Duration {
	if m.Lifetime != 0 {
		return m.Lifetime
	}
	return time.Hour
}
