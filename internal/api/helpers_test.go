package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/hollis-dev/storefront-api/internal/api/shared"
	"github.com/hollis-dev/storefront-api/internal/domain"
)

// envelope mirrors the wire shape for assertions. RawData keeps the data
// key untyped so individual tests can reshape it.
type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

// decodeEnvelope parses the recorded response body.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

// envelopeKeys returns the top-level JSON keys, for omission assertions.
func envelopeKeys(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var keys map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &keys))
	return keys
}

// newJSONRequest builds a request with a JSON body.
func newJSONRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// asPrincipal stamps the request context the way the auth middleware does.
func asPrincipal(req *http.Request, userID uuid.UUID) *http.Request {
	ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
	return req.WithContext(ctx)
}

// activeUser builds a stored user with a mock-hashed password.
func activeUser(email, name, password string, role domain.Role) *domain.User {
	return &domain.User{
		ID:             uuid.New(),
		Email:          email,
		Name:           name,
		HashedPassword: "hashed:" + password,
		Role:           role,
		Active:         true,
		CreatedAt:      time.Now().UTC(),
	}
}
