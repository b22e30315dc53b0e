package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrEmptyUserID      = errors.New("user ID cannot be empty")
	ErrEmptyEmail       = errors.New("email cannot be empty")
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrNameTooShort     = errors.New("name must be at least 3 characters long")
	ErrNameTooLong      = errors.New("name must be at most 50 characters long")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
	ErrEmptyPassword    = errors.New("password cannot be empty")
)

// User represents a registered account. The plaintext Password field is only
// populated transiently during creation; HashedPassword is what gets stored
// and neither is ever serialized outward.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Password       string    `json:"-"`
	HashedPassword string    `json:"-"`
	Role           Role      `json:"role"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewUser creates a new active User with the given email, name, password and
// role. It generates a new UUID for the user ID and sets the creation
// timestamp. An empty role defaults to RoleUser.
// Returns an error if validation fails.
//
// NOTE: the caller is responsible for hashing the password before storage.
func NewUser(email, name, password string, role Role) (*User, error) {
	if role == "" {
		role = RoleUser
	}

	user := &User{
		ID:        uuid.New(),
		Email:     email,
		Name:      name,
		Password:  password,
		Role:      role,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	switch nameLen := len(u.Name); {
	case nameLen == 0:
		return ErrEmptyName
	case nameLen < 3:
		return ErrNameTooShort
	case nameLen > 50:
		return ErrNameTooLong
	}

	if !u.Role.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidRole, u.Role)
	}

	if u.Password != "" {
		if len(u.Password) < 8 {
			return ErrPasswordTooShort
		}
	} else if u.HashedPassword == "" {
		// Existing users loaded from the store carry only the hash.
		return ErrEmptyPassword
	}

	return nil
}

// validEmailFormat performs basic validation of email format: a single '@'
// with a dotted domain after it. Request-level validation applies the
// stricter validator tag; this is the last line of defense.
func validEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
