package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		productName string
		description string
		price       float64
		wantErr     error
	}{
		{name: "valid product", productName: "Widget", description: "A widget", price: 19.99},
		{name: "free product is allowed", productName: "Sample", price: 0},
		{name: "empty description is allowed", productName: "Widget", price: 5},
		{name: "empty name", productName: "", price: 5, wantErr: ErrEmptyProductName},
		{name: "negative price", productName: "Widget", price: -5, wantErr: ErrNegativePrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := NewProduct(tt.productName, tt.description, tt.price)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, product)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.productName, product.Name)
			assert.Equal(t, tt.description, product.Description)
			assert.Equal(t, tt.price, product.Price)
			assert.False(t, product.CreatedAt.IsZero())
		})
	}
}
