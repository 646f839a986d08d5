package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/taskhive/taskhive-api/internal/api/shared"
	"github.com/taskhive/taskhive-api/internal/domain"
	"github.com/taskhive/taskhive-api/internal/platform/logger"
	"github.com/taskhive/taskhive-api/internal/service"
	"github.com/taskhive/taskhive-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	authService *service.AuthService
	logger      *slog.Logger
}

// NewAuthHandler creates an AuthHandler backed by the given service.
func NewAuthHandler(authService *service.AuthService, log *slog.Logger) *AuthHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AuthHandler{
		authService: authService,
		logger:      log.With(slog.String("handler", "auth")),
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	result, err := h.authService.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			shared.RespondWithErrorAndLog(w, r, http.StatusConflict, "Email already in use", err)
		case isRegistrationInputError(err):
			shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		default:
			HandleAPIError(w, r, err, "Failed to register user")
		}
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		Token: result.Token,
		User:  result.User,
	})
}

// Login handles POST /api/auth/login. Unknown email and wrong password
// produce the same response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	result, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		HandleAPIError(w, r, err, "Failed to authenticate user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		Token: result.Token,
		User:  result.User,
	})
}

// RefreshToken handles POST /api/auth/refresh. The presented token may be
// expired; only its signature has to verify.
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req RefreshTokenRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	token, err := h.authService.RefreshToken(r.Context(), req.Token)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RefreshTokenResponse{Token: token})
}

// Me handles GET /api/auth/me, resolving the authenticated token payload
// to the current user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	profile, err := h.authService.GetUserFromToken(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}

// GetUser handles GET /api/users/{id}, returning the profile with its
// creation timestamp.
func (h *AuthHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	_, id, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	profile, err := h.authService.GetUserByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}

// isRegistrationInputError reports whether the error describes the
// caller's registration input rather than an internal failure.
func isRegistrationInputError(err error) bool {
	return errors.Is(err, domain.ErrInvalidEmail) ||
		errors.Is(err, domain.ErrEmptyEmail) ||
		errors.Is(err, domain.ErrEmptyPassword) ||
		errors.Is(err, domain.ErrPasswordTooShort) ||
		errors.Is(err, store.ErrInvalidEntity)
}
