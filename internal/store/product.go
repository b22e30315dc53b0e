package store

import (
	"context"

	"github.com/hollis-dev/storefront-api/internal/domain"
)

// ProductStore defines the interface for product data persistence.
type ProductStore interface {
	// Create saves a new product to the store.
	Create(ctx context.Context, product *domain.Product) error

	// List returns all products ordered by creation time descending.
	// Returns an empty slice when there are no products.
	List(ctx context.Context) ([]*domain.Product, error)
}
