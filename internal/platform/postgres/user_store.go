package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hollis-dev/storefront-api/internal/domain"
	"github.com/hollis-dev/storefront-api/internal/platform/logger"
	"github.com/hollis-dev/storefront-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// Create implements store.UserStore.Create
// Returns store.ErrEmailExists when the unique email constraint fires;
// the constraint is the arbiter for concurrent creates with the same email.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	query := `
		INSERT INTO users (id, email, name, hashed_password, role, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.Email,
		user.Name,
		user.HashedPassword,
		user.Role,
		user.Active,
		user.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			log.Debug("duplicate email during user creation",
				slog.String("user_id", user.ID.String()))
			return store.ErrEmailExists
		}

		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	log.Info("user created successfully",
		slog.String("user_id", user.ID.String()),
		slog.String("role", string(user.Role)))
	return nil
}

// GetByID implements store.UserStore.GetByID
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, email, name, hashed_password, role, active, created_at
		FROM users
		WHERE id = $1
	`

	user, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("user_id", id.String()))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by ID",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return nil, err
	}

	return user, nil
}

// GetByEmail implements store.UserStore.GetByEmail
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, email, name, hashed_password, role, active, created_at
		FROM users
		WHERE email = $1
	`

	user, err := scanUser(s.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found by email")
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by email", slog.String("error", err.Error()))
		return nil, err
	}

	return user, nil
}

// ListActive implements store.UserStore.ListActive
// The sort column is mapped through a whitelist; the search term matches
// name or email case-insensitively.
func (s *PostgresUserStore) ListActive(
	ctx context.Context,
	params store.ListUsersParams,
) ([]store.UserWithOrderCount, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	orderBy, err := sortColumn(params.SortBy)
	if err != nil {
		log.Warn("rejected sort column", slog.String("sort_by", string(params.SortBy)))
		return nil, err
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * store.UsersPerPage

	query := fmt.Sprintf(`
		SELECT u.id, u.email, u.name, u.hashed_password, u.role, u.active, u.created_at,
		       (SELECT COUNT(*) FROM orders o WHERE o.user_id = u.id) AS orders_count
		FROM users u
		WHERE u.active
		  AND ($1 = '' OR u.name ILIKE '%%' || $1 || '%%' OR u.email ILIKE '%%' || $1 || '%%')
		ORDER BY u.%s
		LIMIT $2 OFFSET $3
	`, orderBy)

	rows, err := s.db.QueryContext(ctx, query, params.Search, store.UsersPerPage, offset)
	if err != nil {
		log.Error("failed to list users", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	users := []store.UserWithOrderCount{}
	for rows.Next() {
		var row store.UserWithOrderCount
		var role string

		err := rows.Scan(
			&row.ID,
			&row.Email,
			&row.Name,
			&row.HashedPassword,
			&role,
			&row.Active,
			&row.CreatedAt,
			&row.OrderCount,
		)
		if err != nil {
			log.Error("failed to scan user row", slog.String("error", err.Error()))
			return nil, err
		}

		row.Role = domain.Role(role)
		users = append(users, row)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("listed active users",
		slog.Int("count", len(users)),
		slog.Int("page", page))
	return users, nil
}

// ListActiveAdministrators implements store.UserStore.ListActiveAdministrators
func (s *PostgresUserStore) ListActiveAdministrators(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, email, name, hashed_password, role, active, created_at
		FROM users
		WHERE role = $1 AND active
	`

	rows, err := s.db.QueryContext(ctx, query, domain.RoleAdministrator)
	if err != nil {
		log.Error("failed to list administrators", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	admins := []*domain.User{}
	for rows.Next() {
		var user domain.User
		var role string

		err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.Name,
			&user.HashedPassword,
			&role,
			&user.Active,
			&user.CreatedAt,
		)
		if err != nil {
			log.Error("failed to scan administrator row", slog.String("error", err.Error()))
			return nil, err
		}

		user.Role = domain.Role(role)
		admins = append(admins, &user)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return admins, nil
}

// scanUser reads a single user row.
func scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	var role string

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.HashedPassword,
		&role,
		&user.Active,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.Role = domain.Role(role)
	return &user, nil
}

// sortColumn maps the whitelisted sort options onto column names. The
// result is interpolated into SQL, so membership here is a hard requirement.
func sortColumn(sortBy store.UserSortColumn) (string, error) {
	switch sortBy {
	case store.UserSortByName:
		return "name", nil
	case store.UserSortByEmail:
		return "email", nil
	case store.UserSortByCreatedAt, "":
		return "created_at", nil
	default:
		return "", fmt.Errorf("%w: unsupported sort column %q", store.ErrInvalidEntity, sortBy)
	}
}
