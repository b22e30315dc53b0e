// Package middleware provides the HTTP middleware applied by the router.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hollis-dev/storefront-api/internal/api/shared"
	"github.com/hollis-dev/storefront-api/internal/service/auth"
)

// Message for every authentication failure, matching the envelope contract.
const unauthenticatedMessage = "Unauthenticated. Bearer token invalid or expired."

// AuthMiddleware provides bearer token authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates bearer tokens from the Authorization header and
// adds the principal's user ID to the request context for authorized
// requests. Missing, malformed, invalid, and expired credentials all
// produce the same 401 envelope.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondError(w, r, http.StatusUnauthorized, unauthenticatedMessage, nil)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondError(w, r, http.StatusUnauthorized, unauthenticatedMessage, nil)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			slog.DebugContext(r.Context(), "bearer token rejected", "error", err)
			shared.RespondError(w, r, http.StatusUnauthorized, unauthenticatedMessage, nil)
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
