package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/hollis-dev/storefront-api/internal/domain"
)

// UsersPerPage is the fixed page size for user listings.
const UsersPerPage = 15

// UserSortColumn is the whitelist of columns the user listing may be
// sorted by. Anything else must be rejected before reaching the store.
type UserSortColumn string

const (
	UserSortByName      UserSortColumn = "name"
	UserSortByEmail     UserSortColumn = "email"
	UserSortByCreatedAt UserSortColumn = "created_at"
)

// ListUsersParams narrows and pages a user listing.
type ListUsersParams struct {
	// Search, when non-empty, filters to users whose name or email
	// contains the term (case-insensitive).
	Search string

	// SortBy selects the ordering column. Zero value sorts by created_at.
	SortBy UserSortColumn

	// Page is 1-based. Values below 1 are treated as 1.
	Page int
}

// UserWithOrderCount is a user row annotated with the number of orders
// the user owns, as produced by the listing query.
type UserWithOrderCount struct {
	domain.User
	OrderCount int
}

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must carry a
	// HashedPassword; plaintext passwords never reach the store layer.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListActive returns one page of active users matching params, each
	// annotated with its order count, ordered by the requested column
	// ascending. Returns an empty slice when the page is past the end.
	ListActive(ctx context.Context, params ListUsersParams) ([]UserWithOrderCount, error)

	// ListActiveAdministrators returns every active user with the
	// administrator role, for notification fan-out.
	ListActiveAdministrators(ctx context.Context) ([]*domain.User, error)
}
