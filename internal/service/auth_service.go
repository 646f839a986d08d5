package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/taskhive/taskhive-api/internal/domain"
	"github.com/taskhive/taskhive-api/internal/platform/logger"
	"github.com/taskhive/taskhive-api/internal/redact"
	"github.com/taskhive/taskhive-api/internal/service/auth"
	"github.com/taskhive/taskhive-api/internal/store"
)

// AuthResult is what a successful registration or login returns: a session
// token and the user projection. The password hash never appears here.
type AuthResult struct {
	Token string
	User  domain.Profile
}

// AuthService implements registration, login, profile lookup and token
// refresh.
type AuthService struct {
	userStore store.UserStore
	jwt       auth.JWTService
	hasher    auth.PasswordHasher
	verifier  auth.PasswordVerifier
	logger    *slog.Logger
}

// NewAuthService creates an AuthService with the given dependencies.
func NewAuthService(
	userStore store.UserStore,
	jwt auth.JWTService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	log *slog.Logger,
) (*AuthService, error) {
	if userStore == nil {
		return nil, fmt.Errorf("userStore cannot be nil")
	}
	if jwt == nil {
		return nil, fmt.Errorf("jwt service cannot be nil")
	}
	if hasher == nil {
		return nil, fmt.Errorf("password hasher cannot be nil")
	}
	if verifier == nil {
		return nil, fmt.Errorf("password verifier cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &AuthService{
		userStore: userStore,
		jwt:       jwt,
		hasher:    hasher,
		verifier:  verifier,
		logger:    log.With(slog.String("component", "auth_service")),
	}, nil
}

// Register validates the registration input, persists a new user with a
// hashed password, and issues a session token. Input validation runs before
// any store access. A duplicate email, whether found by lookup or by losing
// a concurrent-registration race on the unique constraint, yields
// ErrEmailTaken.
func (s *AuthService) Register(
	ctx context.Context,
	email, password, name string,
) (*AuthResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(email, password, name)
	if err != nil {
		log.Debug("registration input rejected",
			slog.String("error", err.Error()))
		return nil, err
	}

	// The pre-check gives the common case a clean error; the unique
	// constraint catches the race.
	if _, err := s.userStore.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, store.ErrUserNotFound) {
		log.Error("failed to check existing email",
			slog.String("error", redact.Error(err)))
		return nil, err
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		log.Error("failed to hash password",
			slog.String("error", err.Error()))
		return nil, err
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			return nil, ErrEmailTaken
		}
		log.Error("failed to create user",
			slog.String("error", redact.Error(err)))
		return nil, err
	}

	token, err := s.jwt.GenerateToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	log.Info("user registered", slog.String("user_id", user.ID.String()))
	return &AuthResult{Token: token, User: user.Profile()}, nil
}

// Login verifies the credentials and issues a session token. An unknown
// email and a wrong password both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to get user by email",
			slog.String("error", redact.Error(err)))
		return nil, err
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	log.Info("user logged in", slog.String("user_id", user.ID.String()))
	return &AuthResult{Token: token, User: user.Profile()}, nil
}

// GetUserByID returns the user projection including the creation
// timestamp. Returns store.ErrUserNotFound if the user does not exist.
func (s *AuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	profile := user.ProfileWithCreatedAt()
	return &profile, nil
}

// GetUserFromToken returns the projection for the user ID carried in a
// verified token payload, without the creation timestamp.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *AuthService) GetUserFromToken(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	profile := user.Profile()
	return &profile, nil
}

// RefreshToken exchanges an existing, possibly expired token for a fresh
// one bound to the same user. The signature must be genuine; expiry is
// ignored, and the user's continued existence is not re-checked.
func (s *AuthService) RefreshToken(ctx context.Context, oldToken string) (string, error) {
	return s.jwt.RefreshToken(ctx, oldToken)
}
