package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollis-dev/storefront-api/internal/service/auth"
	"github.com/hollis-dev/storefront-api/internal/store"
)

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
		wantErrors  map[string][]string
	}{
		{
			name:        "unauthenticated",
			err:         ErrUnauthenticated,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Unauthenticated. Bearer token invalid or expired.",
		},
		{
			name:        "invalid token",
			err:         auth.ErrInvalidToken,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Unauthenticated. Bearer token invalid or expired.",
		},
		{
			name:        "expired token",
			err:         fmt.Errorf("validating: %w", auth.ErrExpiredToken),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Unauthenticated. Bearer token invalid or expired.",
		},
		{
			name:        "field validation",
			err:         NewFieldError("email", "Email is required."),
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: "Validation failed. Check the fields that are wrong.",
			wantErrors:  map[string][]string{"email": {"Email is required."}},
		},
		{
			name:        "validation without fields falls back",
			err:         &ValidationError{},
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: "Validation failed. Check the fields that are wrong.",
		},
		{
			name: "validation with custom message",
			err: &ValidationError{
				Message: "Nope.",
				Fields:  map[string][]string{"name": {"Name is required."}},
			},
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: "Nope.",
			wantErrors:  map[string][]string{"name": {"Name is required."}},
		},
		{
			name:        "user not found",
			err:         store.ErrUserNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "Resource not found.",
		},
		{
			name:        "wrapped not found",
			err:         fmt.Errorf("loading: %w", store.ErrProductNotFound),
			wantStatus:  http.StatusNotFound,
			wantMessage: "Resource not found.",
		},
		{
			name:        "explicit http error",
			err:         &HTTPError{Status: http.StatusBadRequest, Message: "Invalid request format."},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request format.",
		},
		{
			name:        "unknown error stays generic",
			err:         errors.New("pq: connection reset by peer"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "An error occurred.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
			rec := httptest.NewRecorder()

			HandleAPIError(rec, req, tc.err)

			require.Equal(t, tc.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, tc.wantMessage, env.Message)
			assert.Equal(t, tc.wantErrors, env.Errors)

			keys := envelopeKeys(t, rec)
			assert.NotContains(t, keys, "data", "failures never carry data")
			if tc.wantErrors == nil {
				assert.NotContains(t, keys, "errors", "empty errors map is omitted")
			}
		})
	}
}

func TestInternalErrorDetailsNeverLeak(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()

	HandleAPIError(rec, req, errors.New("dial tcp 10.0.0.5:5432: connect: connection refused"))

	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestValidationErrorMessage(t *testing.T) {
	assert.Equal(t, "validation failed", (&ValidationError{}).Error())
	assert.Equal(t, "Nope.", (&ValidationError{Message: "Nope."}).Error())
	assert.Equal(t, "http error 400: Bad.", (&HTTPError{Status: 400, Message: "Bad."}).Error())
}
