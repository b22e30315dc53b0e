package api

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hollis-dev/storefront-api/internal/api/shared"
	"github.com/hollis-dev/storefront-api/internal/domain"
	"github.com/hollis-dev/storefront-api/internal/store"
)

// resolvePrincipal loads the authenticated user placed in the context by the
// authentication middleware. Handlers behind the middleware still go through
// this so the principal travels as an explicit *domain.User value rather
// than ambient context reads scattered through the code.
// Returns ErrUnauthenticated if no valid principal is present.
func resolvePrincipal(ctx context.Context, users store.UserStore) (*domain.User, error) {
	userID, ok := ctx.Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	user, err := users.GetByID(ctx, userID)
	if err != nil {
		if store.IsNotFoundError(err) {
			// Token valid but the account is gone; treat as unauthenticated.
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to resolve principal: %w", err)
	}

	return user, nil
}
