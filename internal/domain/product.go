package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyProductID   = errors.New("product ID cannot be empty")
	ErrEmptyProductName = errors.New("product name cannot be empty")
	ErrNegativePrice    = errors.New("price cannot be negative")
)

// Product is an item that orders may reference.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewProduct creates a new Product with a generated ID and creation
// timestamp. Returns an error if validation fails.
func NewProduct(name, description string, price float64) (*Product, error) {
	product := &Product{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Price:       price,
		CreatedAt:   time.Now().UTC(),
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate checks if the Product has valid data.
func (p *Product) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyProductID
	}

	if p.Name == "" {
		return ErrEmptyProductName
	}

	if p.Price < 0 {
		return ErrNegativePrice
	}

	return nil
}
