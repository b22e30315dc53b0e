package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/hollis-dev/storefront-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing.
type MockJWTService struct {
	GenerateTokenFn func(ctx context.Context, userID uuid.UUID) (string, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Token and UserID drive the default implementations: GenerateToken
	// returns Token, ValidateToken accepts only Token and yields UserID.
	Token  string
	UserID uuid.UUID
}

// NewMockJWTService creates a mock that round-trips a single fixed token.
func NewMockJWTService() *MockJWTService {
	return &MockJWTService{Token: "test-token"}
}

// GenerateToken implements the JWTService interface.
func (m *MockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID)
	}
	m.UserID = userID
	return m.Token, nil
}

// ValidateToken implements the JWTService interface.
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	if tokenString != m.Token {
		return nil, auth.ErrInvalidToken
	}
	return &auth.Claims{UserID: m.UserID}, nil
}
