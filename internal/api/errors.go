// Package api contains the HTTP handlers, the request/response DTOs, and
// the mapping from internal failures to the uniform response envelope.
package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/hollis-dev/storefront-api/internal/api/shared"
	"github.com/hollis-dev/storefront-api/internal/service/auth"
	"github.com/hollis-dev/storefront-api/internal/store"
)

// Boundary messages, matching the envelope contract exactly.
const (
	msgUnauthenticated    = "Unauthenticated. Bearer token invalid or expired."
	msgNotFound           = "Resource not found."
	msgValidationFallback = "Validation failed. Check the fields that are wrong."
	msgGenericError       = "An error occurred."
)

// ErrUnauthenticated marks a request whose bearer credential is missing,
// invalid, or expired.
var ErrUnauthenticated = errors.New("unauthenticated")

// ValidationError carries a field→messages map to the 422 response.
// An empty Message falls back to a fixed friendly string at the boundary.
type ValidationError struct {
	Message string
	Fields  map[string][]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "validation failed"
}

// NewFieldError builds a ValidationError for a single field.
func NewFieldError(field, message string) *ValidationError {
	return &ValidationError{
		Fields: map[string][]string{field: {message}},
	}
}

// HTTPError is a generic HTTP-level failure with an explicit status code.
type HTTPError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error %d: %s", e.Status, e.Message)
}

// HandleAPIError maps a failure caught at the request boundary onto the
// envelope + status contract:
//
//	unauthenticated          → 401, fixed message
//	validation failure       → 422, field→messages map, fallback message
//	not found                → 404, fixed message
//	generic HTTP failure     → its status, its message
//	anything else            → 500, generic message (details stay in the log)
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *ValidationError
	var httpErr *HTTPError

	switch {
	case errors.Is(err, ErrUnauthenticated),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		shared.RespondError(w, r, http.StatusUnauthorized, msgUnauthenticated, nil)

	case errors.As(err, &validationErr):
		message := validationErr.Message
		if message == "" {
			message = msgValidationFallback
		}
		shared.RespondValidationError(w, r, message, validationErr.Fields)

	case store.IsNotFoundError(err):
		shared.RespondError(w, r, http.StatusNotFound, msgNotFound, nil)

	case errors.As(err, &httpErr):
		message := httpErr.Message
		if message == "" {
			message = msgGenericError
		}
		shared.RespondError(w, r, httpErr.Status, message, nil)

	default:
		slog.ErrorContext(r.Context(), "unhandled API error",
			"error", err,
			"error_type", fmt.Sprintf("%T", err),
			"path", r.URL.Path,
			"method", r.Method)
		shared.RespondError(w, r, http.StatusInternalServerError, msgGenericError, nil)
	}
}
