package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyOrderID     = errors.New("order ID cannot be empty")
	ErrEmptyOrderUserID = errors.New("order user ID cannot be empty")
)

// Order belongs to exactly one user and optionally references one product.
// A nil ProductID is a valid order with no product attached.
type Order struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	ProductID *uuid.UUID `json:"product_id"`
	CreatedAt time.Time  `json:"created_at"`
}

// NewOrder creates a new Order owned by the given user, optionally
// referencing a product. Returns an error if validation fails.
func NewOrder(userID uuid.UUID, productID *uuid.UUID) (*Order, error) {
	order := &Order{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now().UTC(),
	}

	if err := order.Validate(); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate checks if the Order has valid data.
func (o *Order) Validate() error {
	if o.ID == uuid.Nil {
		return ErrEmptyOrderID
	}

	if o.UserID == uuid.Nil {
		return ErrEmptyOrderUserID
	}

	if o.ProductID != nil && *o.ProductID == uuid.Nil {
		return ErrInvalidID
	}

	return nil
}
