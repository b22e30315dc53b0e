package api

import (
	"time"

	"github.com/google/uuid"
)

// Request payloads

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// CreateUserRequest defines the payload for the user creation endpoint.
type CreateUserRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name"     validate:"required,min=3,max=50"`
	Role     string `json:"role"     validate:"omitempty,oneof=administrator manager user"`
}

// CreateProductRequest defines the payload for the product creation endpoint.
type CreateProductRequest struct {
	Name        string   `json:"name"        validate:"required,min=1"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
}

// CreateOrderRequest defines the payload for the order creation endpoint.
// ProductID is optional; when present it must reference an existing product.
type CreateOrderRequest struct {
	ProductID *uuid.UUID `json:"product_id"`
}

// Response payloads (the data half of the envelope)

// LoginUser is the user summary nested in the login response.
type LoginUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// LoginResponse is the data payload for a successful login.
type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

// UserCreatedResponse is the data payload for a created user.
type UserCreatedResponse struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// UserListItem is one row of the user listing, annotated with the order
// count and the visibility decision for the requesting principal.
type UserListItem struct {
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	OrdersCount int       `json:"orders_count"`
	CanEdit     bool      `json:"can_edit"`
}

// UserListResponse is the data payload for the user listing.
type UserListResponse struct {
	Page  int            `json:"page"`
	Users []UserListItem `json:"users"`
}

// ProductResponse is the serialized form of a product.
type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductListResponse is the data payload for the product listing.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

// OrderResponse is the serialized form of an order.
type OrderResponse struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	ProductID *uuid.UUID `json:"product_id"`
	CreatedAt time.Time  `json:"created_at"`
}
