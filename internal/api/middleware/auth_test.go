package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskhive/taskhive-api/internal/api/middleware"
	"github.com/taskhive/taskhive-api/internal/api/shared"
	"github.com/taskhive/taskhive-api/internal/mocks"
	"github.com/taskhive/taskhive-api/internal/service/auth"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	okJWT := func() *mocks.MockJWTService {
		return &mocks.MockJWTService{
			Claims: &auth.Claims{UserID: userID},
		}
	}

	nextHandler := func(captured *uuid.UUID, called *bool) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*called = true
			if id, ok := middleware.GetUserID(r); ok {
				*captured = id
			}
			w.WriteHeader(http.StatusOK)
		})
	}

	t.Run("valid bearer token passes with user ID in context", func(t *testing.T) {
		t.Parallel()

		var captured uuid.UUID
		var called bool
		mw := middleware.NewAuthMiddleware(okJWT())
		handler := mw.Authenticate(nextHandler(&captured, &called))

		r := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		r.Header.Set("Authorization", "Bearer some-valid-token")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, called)
		assert.Equal(t, userID, captured)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		t.Parallel()

		var captured uuid.UUID
		var called bool
		mw := middleware.NewAuthMiddleware(okJWT())
		handler := mw.Authenticate(nextHandler(&captured, &called))

		r := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, called, "next handler must not run")
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		t.Parallel()

		for _, header := range []string{"some-token", "Basic abc", "Bearer"} {
			var captured uuid.UUID
			var called bool
			mw := middleware.NewAuthMiddleware(okJWT())
			handler := mw.Authenticate(nextHandler(&captured, &called))

			r := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
			r.Header.Set("Authorization", header)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)

			assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
			assert.False(t, called)
		}
	})

	t.Run("expired token gets a distinct message", func(t *testing.T) {
		t.Parallel()

		jwt := &mocks.MockJWTService{
			ValidateTokenFn: func(ctx context.Context, tokenString string) (*auth.Claims, error) {
				return nil, auth.ErrExpiredToken
			},
		}
		mw := middleware.NewAuthMiddleware(jwt)
		handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler must not run")
		}))

		r := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		r.Header.Set("Authorization", "Bearer expired-token")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var resp shared.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Token expired", resp.Error)
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		t.Parallel()

		jwt := &mocks.MockJWTService{ValidateErr: auth.ErrInvalidToken}
		mw := middleware.NewAuthMiddleware(jwt)
		handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler must not run")
		}))

		r := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		r.Header.Set("Authorization", "Bearer tampered-token")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetUserID(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := middleware.GetUserID(r)
	assert.False(t, ok, "no user ID without middleware")

	userID := uuid.New()
	ctx := context.WithValue(r.Context(), shared.UserIDContextKey, userID)
	got, ok := middleware.GetUserID(r.WithContext(ctx))
	assert.True(t, ok)
	assert.Equal(t, userID, got)
}
