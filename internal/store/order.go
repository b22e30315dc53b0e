package store

import (
	"context"

	"github.com/hollis-dev/storefront-api/internal/domain"
)

// OrderStore defines the interface for order data persistence.
type OrderStore interface {
	// Create saves a new order to the store. The referential checks are
	// delegated to the storage engine: a dangling product reference
	// returns ErrProductNotFound, a dangling user reference returns
	// ErrInvalidEntity.
	Create(ctx context.Context, order *domain.Order) error
}
