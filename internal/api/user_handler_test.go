package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollis-dev/storefront-api/internal/domain"
	"github.com/hollis-dev/storefront-api/internal/mocks"
	"github.com/hollis-dev/storefront-api/internal/store"
)

func newUserHandler(userStore *mocks.MockUserStore) (*UserHandler, *mocks.MockNotifier) {
	notifier := &mocks.MockNotifier{}
	handler := NewUserHandler(userStore, &mocks.MockPasswordHasher{}, notifier, nil)
	return handler, notifier
}

func TestCreateUserSuccess(t *testing.T) {
	userStore := mocks.NewMockUserStore()
	handler, _ := newUserHandler(userStore)

	req := newJSONRequest(t, http.MethodPost, "/api/users", CreateUserRequest{
		Email:    "rosa@example.com",
		Password: "s3cret-pass",
		Name:     "Rosa Marchetti",
	})
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "User created successfully.", env.Message)

	var data UserCreatedResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "rosa@example.com", data.Email)
	assert.Equal(t, "Rosa Marchetti", data.Name)
	assert.False(t, data.CreatedAt.IsZero())

	stored, exists := userStore.Users["rosa@example.com"]
	require.True(t, exists)
	assert.Equal(t, domain.RoleUser, stored.Role, "omitted role defaults to user")
	assert.True(t, stored.Active)
	assert.Empty(t, stored.Password, "plaintext must not survive creation")
	assert.Equal(t, "hashed:s3cret-pass", stored.HashedPassword)
}

func TestCreateUserWithExplicitRole(t *testing.T) {
	userStore := mocks.NewMockUserStore()
	handler, _ := newUserHandler(userStore)

	req := newJSONRequest(t, http.MethodPost, "/api/users", CreateUserRequest{
		Email:    "boss@example.com",
		Password: "s3cret-pass",
		Name:     "Big Boss",
		Role:     "administrator",
	})
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, domain.RoleAdministrator, userStore.Users["boss@example.com"].Role)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	existing := activeUser("rosa@example.com", "Rosa Marchetti", "s3cret-pass", domain.RoleUser)
	userStore := mocks.NewMockUserStore().WithUser(existing)
	handler, notifier := newUserHandler(userStore)

	req := newJSONRequest(t, http.MethodPost, "/api/users", CreateUserRequest{
		Email:    "rosa@example.com",
		Password: "another-pass",
		Name:     "Rosa Impostor",
	})
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, []string{"Email is already registered."}, env.Errors["email"])

	assert.Equal(t, "Rosa Marchetti", userStore.Users["rosa@example.com"].Name, "existing row untouched")
	assert.Empty(t, notifier.Calls, "no notification for a failed create")
}

func TestCreateUserValidation(t *testing.T) {
	tests := []struct {
		name       string
		payload    CreateUserRequest
		wantFields map[string][]string
	}{
		{
			name:    "empty payload",
			payload: CreateUserRequest{},
			wantFields: map[string][]string{
				"email":    {"Email is required."},
				"password": {"Password is required."},
				"name":     {"Name is required."},
			},
		},
		{
			name: "short password",
			payload: CreateUserRequest{
				Email:    "rosa@example.com",
				Password: "short",
				Name:     "Rosa Marchetti",
			},
			wantFields: map[string][]string{
				"password": {"Password must be at least 8 characters."},
			},
		},
		{
			name: "short name",
			payload: CreateUserRequest{
				Email:    "rosa@example.com",
				Password: "s3cret-pass",
				Name:     "ab",
			},
			wantFields: map[string][]string{
				"name": {"Name must be at least 3 characters."},
			},
		},
		{
			name: "unknown role",
			payload: CreateUserRequest{
				Email:    "rosa@example.com",
				Password: "s3cret-pass",
				Name:     "Rosa Marchetti",
				Role:     "superuser",
			},
			wantFields: map[string][]string{
				"role": {"Role must be administrator, manager, or user."},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			userStore := mocks.NewMockUserStore()
			handler, notifier := newUserHandler(userStore)

			req := newJSONRequest(t, http.MethodPost, "/api/users", tc.payload)
			rec := httptest.NewRecorder()
			handler.Create(rec, req)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, "Validation failed. Check the fields that are wrong.", env.Message)
			for field, messages := range tc.wantFields {
				assert.Equal(t, messages, env.Errors[field])
			}

			assert.Empty(t, userStore.Users, "nothing persisted on validation failure")
			assert.Empty(t, notifier.Calls)
		})
	}
}

func TestCreateUserNotifiesAdmins(t *testing.T) {
	admin1 := activeUser("admin1@example.com", "Admin One", "s3cret-pass", domain.RoleAdministrator)
	admin2 := activeUser("admin2@example.com", "Admin Two", "s3cret-pass", domain.RoleAdministrator)
	inactiveAdmin := activeUser("admin3@example.com", "Admin Three", "s3cret-pass", domain.RoleAdministrator)
	inactiveAdmin.Active = false
	manager := activeUser("mgr@example.com", "Mandy Manager", "s3cret-pass", domain.RoleManager)

	userStore := mocks.NewMockUserStore().
		WithUser(admin1).
		WithUser(admin2).
		WithUser(inactiveAdmin).
		WithUser(manager)
	handler, notifier := newUserHandler(userStore)

	req := newJSONRequest(t, http.MethodPost, "/api/users", CreateUserRequest{
		Email:    "rosa@example.com",
		Password: "s3cret-pass",
		Name:     "Rosa Marchetti",
	})
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, notifier.Calls, 1)

	call := notifier.Calls[0]
	assert.Equal(t, "rosa@example.com", call.NewUser.Email)

	adminEmails := make([]string, 0, len(call.Admins))
	for _, admin := range call.Admins {
		adminEmails = append(adminEmails, admin.Email)
	}
	assert.ElementsMatch(t, []string{"admin1@example.com", "admin2@example.com"}, adminEmails,
		"only active administrators receive the alert")
}

func TestCreateUserAdminLookupFailureStillSucceeds(t *testing.T) {
	userStore := mocks.NewMockUserStore()
	userStore.ListActiveAdministratorsFn = func(ctx context.Context) ([]*domain.User, error) {
		return nil, errors.New("connection reset")
	}
	handler, notifier := newUserHandler(userStore)

	req := newJSONRequest(t, http.MethodPost, "/api/users", CreateUserRequest{
		Email:    "rosa@example.com",
		Password: "s3cret-pass",
		Name:     "Rosa Marchetti",
	})
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, notifier.Calls, 1)
	assert.Empty(t, notifier.Calls[0].Admins)
}

func TestListUsers(t *testing.T) {
	admin := activeUser("admin@example.com", "Ada Admin", "s3cret-pass", domain.RoleAdministrator)
	manager := activeUser("mgr@example.com", "Mandy Manager", "s3cret-pass", domain.RoleManager)
	plain := activeUser("user@example.com", "Ursula User", "s3cret-pass", domain.RoleUser)

	userStore := mocks.NewMockUserStore().WithUser(admin).WithUser(manager).WithUser(plain)
	userStore.OrderCounts[plain.ID] = 4
	handler, _ := newUserHandler(userStore)

	canEditByEmail := func(t *testing.T, rec *httptest.ResponseRecorder) map[string]bool {
		t.Helper()
		env := decodeEnvelope(t, rec)
		var data UserListResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		out := make(map[string]bool, len(data.Users))
		for _, u := range data.Users {
			out[u.Email] = u.CanEdit
		}
		return out
	}

	t.Run("as administrator", func(t *testing.T) {
		req := asPrincipal(httptest.NewRequest(http.MethodGet, "/api/users", nil), admin.ID)
		rec := httptest.NewRecorder()
		handler.List(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "Users fetched successfully.", env.Message)

		assert.Equal(t, map[string]bool{
			"admin@example.com": true,
			"mgr@example.com":   true,
			"user@example.com":  true,
		}, canEditByEmail(t, rec))
	})

	t.Run("as manager", func(t *testing.T) {
		req := asPrincipal(httptest.NewRequest(http.MethodGet, "/api/users", nil), manager.ID)
		rec := httptest.NewRecorder()
		handler.List(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, map[string]bool{
			"admin@example.com": false,
			"mgr@example.com":   false,
			"user@example.com":  true,
		}, canEditByEmail(t, rec))
	})

	t.Run("as plain user", func(t *testing.T) {
		req := asPrincipal(httptest.NewRequest(http.MethodGet, "/api/users", nil), plain.ID)
		rec := httptest.NewRecorder()
		handler.List(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, map[string]bool{
			"admin@example.com": false,
			"mgr@example.com":   false,
			"user@example.com":  true,
		}, canEditByEmail(t, rec))
	})

	t.Run("orders count included", func(t *testing.T) {
		req := asPrincipal(httptest.NewRequest(http.MethodGet, "/api/users", nil), admin.ID)
		rec := httptest.NewRecorder()
		handler.List(rec, req)

		env := decodeEnvelope(t, rec)
		var data UserListResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		counts := make(map[string]int)
		for _, u := range data.Users {
			counts[u.Email] = u.OrdersCount
		}
		assert.Equal(t, 4, counts["user@example.com"])
		assert.Equal(t, 0, counts["admin@example.com"])
	})
}

func TestListUsersQueryValidation(t *testing.T) {
	admin := activeUser("admin@example.com", "Ada Admin", "s3cret-pass", domain.RoleAdministrator)
	handler, _ := newUserHandler(mocks.NewMockUserStore().WithUser(admin))

	tests := []struct {
		name        string
		target      string
		wantField   string
		wantMessage string
	}{
		{
			name:        "bad sort column",
			target:      "/api/users?sortBy=password",
			wantField:   "sortBy",
			wantMessage: "Sort by must be name, email, or created_at.",
		},
		{
			name:        "non-numeric page",
			target:      "/api/users?page=abc",
			wantField:   "page",
			wantMessage: "Page must be an integer greater than or equal to 1.",
		},
		{
			name:        "zero page",
			target:      "/api/users?page=0",
			wantField:   "page",
			wantMessage: "Page must be an integer greater than or equal to 1.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := asPrincipal(httptest.NewRequest(http.MethodGet, tc.target, nil), admin.ID)
			rec := httptest.NewRecorder()
			handler.List(rec, req)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.Contains(t, env.Errors[tc.wantField], tc.wantMessage)
		})
	}
}

func TestListUsersEmptyPageKeepsDataKey(t *testing.T) {
	admin := activeUser("admin@example.com", "Ada Admin", "s3cret-pass", domain.RoleAdministrator)
	handler, _ := newUserHandler(mocks.NewMockUserStore().WithUser(admin))

	req := asPrincipal(httptest.NewRequest(http.MethodGet, "/api/users?page=99", nil), admin.ID)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	var data UserListResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 99, data.Page)
	assert.NotNil(t, data.Users)
	assert.Empty(t, data.Users)
}

func TestListUsersUnknownPrincipal(t *testing.T) {
	handler, _ := newUserHandler(mocks.NewMockUserStore())

	// A validly signed token for a user that no longer exists.
	req := asPrincipal(httptest.NewRequest(http.MethodGet, "/api/users", nil), activeUser("ghost@example.com", "Ghost", "s3cret-pass", domain.RoleUser).ID)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Unauthenticated. Bearer token invalid or expired.", env.Message)
}

func TestListUsersStoreFailure(t *testing.T) {
	admin := activeUser("admin@example.com", "Ada Admin", "s3cret-pass", domain.RoleAdministrator)
	userStore := mocks.NewMockUserStore().WithUser(admin)
	userStore.ListActiveFn = func(ctx context.Context, params store.ListUsersParams) ([]store.UserWithOrderCount, error) {
		return nil, errors.New("connection reset")
	}
	handler, _ := newUserHandler(userStore)

	req := asPrincipal(httptest.NewRequest(http.MethodGet, "/api/users", nil), admin.ID)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "An error occurred.", env.Message)
}
