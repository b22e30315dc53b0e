package mocks

import (
	"context"

	"github.com/hollis-dev/storefront-api/internal/domain"
	"github.com/hollis-dev/storefront-api/internal/store"
)

// MockOrderStore implements store.OrderStore for testing.
type MockOrderStore struct {
	CreateFn func(ctx context.Context, order *domain.Order) error

	Orders []*domain.Order

	// KnownProducts, when non-nil, simulates the foreign key check: orders
	// referencing a product outside the set fail with ErrProductNotFound.
	KnownProducts map[string]bool

	CreateError error
}

// NewMockOrderStore creates a new mock store with initialized defaults.
func NewMockOrderStore() *MockOrderStore {
	return &MockOrderStore{
		Orders: make([]*domain.Order, 0),
	}
}

// Create implements the OrderStore interface.
func (m *MockOrderStore) Create(ctx context.Context, order *domain.Order) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, order)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if order.ProductID != nil && m.KnownProducts != nil && !m.KnownProducts[order.ProductID.String()] {
		return store.ErrProductNotFound
	}

	m.Orders = append(m.Orders, order)
	return nil
}
