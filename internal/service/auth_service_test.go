package service_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskhive/taskhive-api/internal/domain"
	"github.com/taskhive/taskhive-api/internal/mocks"
	"github.com/taskhive/taskhive-api/internal/service"
	"github.com/taskhive/taskhive-api/internal/store"
)

func newTestAuthService(
	t *testing.T,
	userStore *mocks.MockUserStore,
	jwt *mocks.MockJWTService,
	verifier *mocks.MockPasswordVerifier,
) *service.AuthService {
	t.Helper()

	svc, err := service.NewAuthService(
		userStore,
		jwt,
		&mocks.MockPasswordHasher{},
		verifier,
		slog.Default(),
	)
	require.NoError(t, err)
	return svc
}

func TestAuthService_Register(t *testing.T) {
	t.Parallel()

	t.Run("successful registration returns token and profile", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		jwt := &mocks.MockJWTService{Token: "signed-token"}
		svc := newTestAuthService(t, userStore, jwt, &mocks.MockPasswordVerifier{})

		result, err := svc.Register(context.Background(), "new@example.com", "password123", "New User")
		require.NoError(t, err)

		assert.Equal(t, "signed-token", result.Token)
		assert.Equal(t, "new@example.com", result.User.Email)
		assert.Equal(t, "New User", result.User.Name)
		assert.NotEqual(t, uuid.Nil, result.User.ID)
		assert.Nil(t, result.User.CreatedAt, "registration response should omit created_at")

		stored, ok := userStore.Users["new@example.com"]
		require.True(t, ok, "user should be persisted")
		assert.Empty(t, stored.Password, "plaintext must be cleared before persistence")
		assert.Equal(t, "hashed:password123", stored.HashedPassword)
	})

	t.Run("invalid email fails before any store access", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		storeTouched := false
		userStore.GetByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
			storeTouched = true
			return nil, store.ErrUserNotFound
		}
		svc := newTestAuthService(t, userStore, &mocks.MockJWTService{}, &mocks.MockPasswordVerifier{})

		_, err := svc.Register(context.Background(), "not-an-email", "password123", "X")
		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
		assert.False(t, storeTouched, "validation must run before the store is consulted")
	})

	t.Run("short password is rejected", func(t *testing.T) {
		t.Parallel()

		svc := newTestAuthService(t, mocks.NewMockUserStore(), &mocks.MockJWTService{}, &mocks.MockPasswordVerifier{})

		_, err := svc.Register(context.Background(), "a@b.co", "12345", "X")
		assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
	})

	t.Run("duplicate email found by lookup", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		existing, err := domain.NewUser("taken@example.com", "password123", "First")
		require.NoError(t, err)
		userStore.Users[existing.Email] = existing

		svc := newTestAuthService(t, userStore, &mocks.MockJWTService{}, &mocks.MockPasswordVerifier{})

		_, err = svc.Register(context.Background(), "taken@example.com", "password123", "Second")
		assert.ErrorIs(t, err, service.ErrEmailTaken)
	})

	t.Run("duplicate email losing the constraint race", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		userStore.CreateFn = func(ctx context.Context, user *domain.User) error {
			return store.ErrEmailExists
		}

		svc := newTestAuthService(t, userStore, &mocks.MockJWTService{}, &mocks.MockPasswordVerifier{})

		_, err := svc.Register(context.Background(), "race@example.com", "password123", "X")
		assert.ErrorIs(t, err, service.ErrEmailTaken)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		userStore.CreateError = errors.New("connection reset")

		svc := newTestAuthService(t, userStore, &mocks.MockJWTService{}, &mocks.MockPasswordVerifier{})

		_, err := svc.Register(context.Background(), "x@example.com", "password123", "X")
		require.Error(t, err)
		assert.NotErrorIs(t, err, service.ErrEmailTaken)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	seedUser := func(t *testing.T, userStore *mocks.MockUserStore) *domain.User {
		t.Helper()
		user, err := domain.NewUser("login@example.com", "password123", "Login User")
		require.NoError(t, err)
		user.HashedPassword = "hashed:password123"
		user.Password = ""
		userStore.Users[user.Email] = user
		return user
	}

	t.Run("valid credentials return token and profile", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		user := seedUser(t, userStore)
		jwt := &mocks.MockJWTService{Token: "login-token"}
		verifier := &mocks.MockPasswordVerifier{ShouldSucceed: true}
		svc := newTestAuthService(t, userStore, jwt, verifier)

		result, err := svc.Login(context.Background(), "login@example.com", "password123")
		require.NoError(t, err)

		assert.Equal(t, "login-token", result.Token)
		assert.Equal(t, user.ID, result.User.ID)
		assert.Equal(t, 1, verifier.CompareCallCount)
		assert.Equal(t, "hashed:password123", verifier.CompareCalledWith.HashedPassword)
	})

	t.Run("unknown email yields invalid credentials", func(t *testing.T) {
		t.Parallel()

		svc := newTestAuthService(t,
			mocks.NewMockUserStore(),
			&mocks.MockJWTService{},
			&mocks.MockPasswordVerifier{ShouldSucceed: true})

		_, err := svc.Login(context.Background(), "nobody@example.com", "password123")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("wrong password yields the same invalid credentials", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		seedUser(t, userStore)
		svc := newTestAuthService(t, userStore,
			&mocks.MockJWTService{},
			&mocks.MockPasswordVerifier{ShouldSucceed: false})

		_, err := svc.Login(context.Background(), "login@example.com", "wrong-password")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_GetUserByID(t *testing.T) {
	t.Parallel()

	t.Run("existing user includes created_at", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		user, err := domain.NewUser("me@example.com", "password123", "Me")
		require.NoError(t, err)
		userStore.Users[user.Email] = user

		svc := newTestAuthService(t, userStore, &mocks.MockJWTService{}, &mocks.MockPasswordVerifier{})

		profile, err := svc.GetUserByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, profile.Email)
		require.NotNil(t, profile.CreatedAt)
		assert.Equal(t, user.CreatedAt, *profile.CreatedAt)
	})

	t.Run("missing user returns not found", func(t *testing.T) {
		t.Parallel()

		svc := newTestAuthService(t, mocks.NewMockUserStore(), &mocks.MockJWTService{}, &mocks.MockPasswordVerifier{})

		_, err := svc.GetUserByID(context.Background(), uuid.New())
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestAuthService_GetUserFromToken(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	user, err := domain.NewUser("payload@example.com", "password123", "Payload")
	require.NoError(t, err)
	userStore.Users[user.Email] = user

	svc := newTestAuthService(t, userStore, &mocks.MockJWTService{}, &mocks.MockPasswordVerifier{})

	profile, err := svc.GetUserFromToken(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, profile.Email)
	assert.Nil(t, profile.CreatedAt, "token-derived profile omits created_at")

	_, err = svc.GetUserFromToken(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Parallel()

	t.Run("delegates to the token service without consulting the store", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		storeTouched := false
		userStore.GetByIDFn = func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			storeTouched = true
			return nil, store.ErrUserNotFound
		}

		jwt := &mocks.MockJWTService{
			RefreshTokenFn: func(ctx context.Context, tokenString string) (string, error) {
				return "fresh-" + tokenString, nil
			},
		}
		svc := newTestAuthService(t, userStore, jwt, &mocks.MockPasswordVerifier{})

		token, err := svc.RefreshToken(context.Background(), "old-token")
		require.NoError(t, err)
		assert.Equal(t, "fresh-old-token", token)
		assert.False(t, storeTouched, "refresh must not re-check user existence")
	})

	t.Run("invalid token error propagates", func(t *testing.T) {
		t.Parallel()

		jwt := &mocks.MockJWTService{
			RefreshTokenFn: func(ctx context.Context, tokenString string) (string, error) {
				return "", errors.New("token is malformed")
			},
		}
		svc := newTestAuthService(t, mocks.NewMockUserStore(), jwt, &mocks.MockPasswordVerifier{})

		_, err := svc.RefreshToken(context.Background(), "garbage")
		assert.Error(t, err)
	})
}
