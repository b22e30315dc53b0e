// Package mocks provides hand-written test doubles for the store and
// service interfaces. Each mock offers function fields for per-test
// behavior and a map-backed default implementation.
package mocks

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/hollis-dev/storefront-api/internal/domain"
	"github.com/hollis-dev/storefront-api/internal/store"
)

// MockUserStore implements store.UserStore for testing.
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn                   func(ctx context.Context, user *domain.User) error
	GetByIDFn                  func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn               func(ctx context.Context, email string) (*domain.User, error)
	ListActiveFn               func(ctx context.Context, params store.ListUsersParams) ([]store.UserWithOrderCount, error)
	ListActiveAdministratorsFn func(ctx context.Context) ([]*domain.User, error)

	// Data for the default implementation, keyed by email
	Users       map[string]*domain.User
	OrderCounts map[uuid.UUID]int

	CreateError error
	ListError   error
}

// NewMockUserStore creates a new mock store with initialized defaults.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users:       make(map[string]*domain.User),
		OrderCounts: make(map[uuid.UUID]int),
	}
}

// WithUser seeds the store with a user and returns the store for chaining.
func (m *MockUserStore) WithUser(user *domain.User) *MockUserStore {
	m.Users[user.Email] = user
	return m
}

// Create implements the UserStore interface.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if _, exists := m.Users[user.Email]; exists {
		return store.ErrEmailExists
	}

	m.Users[user.Email] = user
	return nil
}

// GetByID implements the UserStore interface.
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for _, user := range m.Users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByEmail implements the UserStore interface.
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	user, exists := m.Users[email]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// ListActive implements the UserStore interface. The default implementation
// mirrors the real query: active users only, search over name and email,
// ascending sort, fixed page size.
func (m *MockUserStore) ListActive(ctx context.Context, params store.ListUsersParams) ([]store.UserWithOrderCount, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx, params)
	}

	if m.ListError != nil {
		return nil, m.ListError
	}

	term := strings.ToLower(params.Search)

	rows := make([]store.UserWithOrderCount, 0)
	for _, user := range m.Users {
		if !user.Active {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(user.Name), term) &&
			!strings.Contains(strings.ToLower(user.Email), term) {
			continue
		}
		rows = append(rows, store.UserWithOrderCount{
			User:       *user,
			OrderCount: m.OrderCounts[user.ID],
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		switch params.SortBy {
		case store.UserSortByName:
			return rows[i].Name < rows[j].Name
		case store.UserSortByEmail:
			return rows[i].Email < rows[j].Email
		default:
			return rows[i].CreatedAt.Before(rows[j].CreatedAt)
		}
	})

	page := params.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * store.UsersPerPage
	if offset >= len(rows) {
		return []store.UserWithOrderCount{}, nil
	}
	end := offset + store.UsersPerPage
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end], nil
}

// ListActiveAdministrators implements the UserStore interface.
func (m *MockUserStore) ListActiveAdministrators(ctx context.Context) ([]*domain.User, error) {
	if m.ListActiveAdministratorsFn != nil {
		return m.ListActiveAdministratorsFn(ctx)
	}

	admins := make([]*domain.User, 0)
	for _, user := range m.Users {
		if user.Active && user.Role == domain.RoleAdministrator {
			admins = append(admins, user)
		}
	}
	return admins, nil
}
