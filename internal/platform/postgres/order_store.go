package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hollis-dev/storefront-api/internal/domain"
	"github.com/hollis-dev/storefront-api/internal/platform/logger"
	"github.com/hollis-dev/storefront-api/internal/store"
)

// Foreign key constraint names from the orders migration. Used to tell a
// dangling product reference apart from a dangling user reference.
const (
	ordersProductFKConstraint = "orders_product_id_fkey"
	ordersUserFKConstraint    = "orders_user_id_fkey"
)

// PostgresOrderStore implements the store.OrderStore interface
// using a PostgreSQL database as the storage backend.
type PostgresOrderStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresOrderStore creates a new PostgreSQL implementation of the
// OrderStore interface. If logger is nil, a default logger will be used.
func NewPostgresOrderStore(db store.DBTX, logger *slog.Logger) *PostgresOrderStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresOrderStore{
		db:     db,
		logger: logger.With(slog.String("component", "order_store")),
	}
}

// Ensure PostgresOrderStore implements store.OrderStore interface
var _ store.OrderStore = (*PostgresOrderStore)(nil)

// Create implements store.OrderStore.Create
// The foreign key constraints are the arbiter for referential integrity:
// a missing product returns store.ErrProductNotFound, a missing user
// returns store.ErrInvalidEntity.
func (s *PostgresOrderStore) Create(ctx context.Context, order *domain.Order) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := order.Validate(); err != nil {
		log.Warn("order validation failed during create",
			slog.String("error", err.Error()),
			slog.String("order_id", order.ID.String()))
		return err
	}

	query := `
		INSERT INTO orders (id, user_id, product_id, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		order.ID,
		order.UserID,
		order.ProductID,
		order.CreatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err, ordersProductFKConstraint) {
			log.Debug("order references missing product",
				slog.String("order_id", order.ID.String()))
			return store.ErrProductNotFound
		}
		if isForeignKeyViolation(err, ordersUserFKConstraint) {
			log.Warn("order references missing user",
				slog.String("order_id", order.ID.String()),
				slog.String("user_id", order.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, order.UserID)
		}

		log.Error("failed to create order",
			slog.String("error", err.Error()),
			slog.String("order_id", order.ID.String()))
		return err
	}

	log.Info("order created successfully",
		slog.String("order_id", order.ID.String()),
		slog.String("user_id", order.UserID.String()))
	return nil
}
