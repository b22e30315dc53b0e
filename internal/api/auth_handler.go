package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/hollis-dev/storefront-api/internal/api/shared"
	"github.com/hollis-dev/storefront-api/internal/service/auth"
	"github.com/hollis-dev/storefront-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	validator        *validator.Validate
	logger           *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		validator:        newValidator(),
		logger:           logger.With(slog.String("component", "auth_handler")),
	}
}

// Login handles POST /api/login.
// A wrong email and a wrong password are indistinguishable to the caller:
// both produce the same field-validation failure on email.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, &HTTPError{Status: http.StatusBadRequest, Message: "Invalid request format."})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		HandleAPIError(w, r, translateValidationErrors(err))
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			HandleAPIError(w, r, invalidCredentials())
			return
		}
		HandleAPIError(w, r, err)
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		HandleAPIError(w, r, invalidCredentials())
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("failed to generate token", "error", err, "user_id", user.ID)
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondSuccess(w, r, http.StatusOK, "Login successfully.", LoginResponse{
		Token: token,
		User: LoginUser{
			Email: user.Email,
			Name:  user.Name,
			Role:  string(user.Role),
		},
	})
}

// invalidCredentials is the uniform failure for a bad email/password pair.
func invalidCredentials() *ValidationError {
	return NewFieldError("email", "The provided credentials are incorrect.")
}
