package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/hollis-dev/storefront-api/internal/api/shared"
	"github.com/hollis-dev/storefront-api/internal/domain"
	"github.com/hollis-dev/storefront-api/internal/service/auth"
	"github.com/hollis-dev/storefront-api/internal/store"
)

// UserNotifier receives the post-persistence fan-out for a newly created
// user: a welcome mail for the user and an alert for every active
// administrator. Implementations must never fail the request; delivery
// problems are their own to log.
type UserNotifier interface {
	UserCreated(ctx context.Context, newUser *domain.User, admins []*domain.User)
}

// UserHandler handles user-related API requests.
type UserHandler struct {
	userStore      store.UserStore
	passwordHasher auth.PasswordHasher
	notifier       UserNotifier
	validator      *validator.Validate
	logger         *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(
	userStore store.UserStore,
	passwordHasher auth.PasswordHasher,
	notifier UserNotifier,
	logger *slog.Logger,
) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		userStore:      userStore,
		passwordHasher: passwordHasher,
		notifier:       notifier,
		validator:      newValidator(),
		logger:         logger.With(slog.String("component", "user_handler")),
	}
}

// Create handles POST /api/users. No authentication required.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, &HTTPError{Status: http.StatusBadRequest, Message: "Invalid request format."})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		HandleAPIError(w, r, translateValidationErrors(err))
		return
	}

	user, err := domain.NewUser(req.Email, req.Name, req.Password, domain.Role(req.Role))
	if err != nil {
		// Request validation should have caught everything the domain
		// checks; whatever slipped through still reads as a 422.
		h.logger.Warn("rejected user payload", "error", err)
		HandleAPIError(w, r, &ValidationError{})
		return
	}

	hashed, err := h.passwordHasher.Hash(user.Password)
	if err != nil {
		h.logger.Error("failed to hash password", "error", err)
		HandleAPIError(w, r, err)
		return
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			HandleAPIError(w, r, NewFieldError("email", "Email is already registered."))
			return
		}
		h.logger.Error("failed to create user", "error", err, "user_id", user.ID)
		HandleAPIError(w, r, err)
		return
	}

	h.notifyUserCreated(r.Context(), user)

	shared.RespondSuccess(w, r, http.StatusCreated, "User created successfully.", UserCreatedResponse{
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	})
}

// notifyUserCreated hands the new user off to the notifier. Nothing in here
// may affect the response: the user row is already committed.
func (h *UserHandler) notifyUserCreated(ctx context.Context, user *domain.User) {
	admins, err := h.userStore.ListActiveAdministrators(ctx)
	if err != nil {
		h.logger.Error("failed to list administrators for notification",
			"error", err,
			"user_id", user.ID)
		admins = nil
	}

	h.notifier.UserCreated(ctx, user, admins)
}

// List handles GET /api/users. Requires an authenticated principal; every
// returned row carries a can_edit flag evaluated against that principal.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, err := resolvePrincipal(r.Context(), h.userStore)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	params, err := parseListUsersQuery(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	rows, err := h.userStore.ListActive(r.Context(), params)
	if err != nil {
		h.logger.Error("failed to list users", "error", err)
		HandleAPIError(w, r, err)
		return
	}

	page := params.Page
	if page < 1 {
		page = 1
	}

	users := make([]UserListItem, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		users = append(users, UserListItem{
			Email:       row.Email,
			Name:        row.Name,
			Role:        string(row.Role),
			CreatedAt:   row.CreatedAt,
			OrdersCount: row.OrderCount,
			CanEdit:     domain.CanEdit(principal, &row.User),
		})
	}

	shared.RespondSuccess(w, r, http.StatusOK, "Users fetched successfully.", UserListResponse{
		Page:  page,
		Users: users,
	})
}

// parseListUsersQuery validates the search/sortBy/page query parameters.
func parseListUsersQuery(r *http.Request) (store.ListUsersParams, error) {
	query := r.URL.Query()

	params := store.ListUsersParams{
		Search: query.Get("search"),
		SortBy: store.UserSortByCreatedAt,
		Page:   1,
	}

	if sortBy := query.Get("sortBy"); sortBy != "" {
		switch store.UserSortColumn(sortBy) {
		case store.UserSortByName, store.UserSortByEmail, store.UserSortByCreatedAt:
			params.SortBy = store.UserSortColumn(sortBy)
		default:
			return params, NewFieldError("sortBy", "Sort by must be name, email, or created_at.")
		}
	}

	if pageStr := query.Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return params, NewFieldError("page", "Page must be an integer greater than or equal to 1.")
		}
		params.Page = page
	}

	return params, nil
}
