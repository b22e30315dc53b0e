package domain

// Role is the closed set of user roles. Using a dedicated type instead of
// raw strings means a typo'd role fails validation instead of silently
// behaving like a regular user.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleManager       Role = "manager"
	RoleUser          Role = "user"
)

// ParseRole converts a string into a Role.
// Returns ErrInvalidRole if the value is not one of the enumerated roles.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdministrator:
		return RoleAdministrator, nil
	case RoleManager:
		return RoleManager, nil
	case RoleUser:
		return RoleUser, nil
	default:
		return "", ErrInvalidRole
	}
}

// IsValid reports whether the role is one of the enumerated values.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdministrator, RoleManager, RoleUser:
		return true
	}
	return false
}
