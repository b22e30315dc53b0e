package mocks

import (
	"context"
	"sort"

	"github.com/hollis-dev/storefront-api/internal/domain"
)

// MockProductStore implements store.ProductStore for testing.
type MockProductStore struct {
	CreateFn func(ctx context.Context, product *domain.Product) error
	ListFn   func(ctx context.Context) ([]*domain.Product, error)

	Products []*domain.Product

	CreateError error
	ListError   error
}

// NewMockProductStore creates a new mock store with initialized defaults.
func NewMockProductStore() *MockProductStore {
	return &MockProductStore{
		Products: make([]*domain.Product, 0),
	}
}

// Create implements the ProductStore interface.
func (m *MockProductStore) Create(ctx context.Context, product *domain.Product) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, product)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.Products = append(m.Products, product)
	return nil
}

// List implements the ProductStore interface. Matches the real query's
// newest-first ordering.
func (m *MockProductStore) List(ctx context.Context) ([]*domain.Product, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	if m.ListError != nil {
		return nil, m.ListError
	}

	products := make([]*domain.Product, len(m.Products))
	copy(products, m.Products)
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}
