package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollis-dev/storefront-api/internal/api/shared"
	"github.com/hollis-dev/storefront-api/internal/mocks"
)

func TestAuthenticateAllowsValidToken(t *testing.T) {
	jwtService := mocks.NewMockJWTService()
	jwtService.UserID = uuid.New()
	authMiddleware := NewAuthMiddleware(jwtService)

	var seenUserID uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID, _ = r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer test-token")
	rec := httptest.NewRecorder()

	authMiddleware.Authenticate(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, jwtService.UserID, seenUserID)
}

func TestAuthenticateRejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic dXNlcjpwYXNz"},
		{name: "missing token", header: "Bearer"},
		{name: "invalid token", header: "Bearer bogus"},
		{name: "too many parts", header: "Bearer one two"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			authMiddleware := NewAuthMiddleware(mocks.NewMockJWTService())

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			authMiddleware.Authenticate(next).ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, nextCalled, "handler must not run without a principal")

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "Unauthenticated. Bearer token invalid or expired.", body["message"])
			assert.NotContains(t, body, "data")
			assert.NotContains(t, body, "errors")
		})
	}
}
