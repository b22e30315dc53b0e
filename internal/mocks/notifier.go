package mocks

import (
	"context"

	"github.com/hollis-dev/storefront-api/internal/domain"
)

// MockNotifier implements api.UserNotifier for testing, recording every
// fan-out call.
type MockNotifier struct {
	UserCreatedFn func(ctx context.Context, newUser *domain.User, admins []*domain.User)

	Calls []NotifierCall
}

// NotifierCall captures the arguments of one UserCreated invocation.
type NotifierCall struct {
	NewUser *domain.User
	Admins  []*domain.User
}

// UserCreated implements the UserNotifier interface.
func (m *MockNotifier) UserCreated(ctx context.Context, newUser *domain.User, admins []*domain.User) {
	if m.UserCreatedFn != nil {
		m.UserCreatedFn(ctx, newUser, admins)
		return
	}
	m.Calls = append(m.Calls, NotifierCall{NewUser: newUser, Admins: admins})
}
