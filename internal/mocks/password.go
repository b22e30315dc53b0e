package mocks

import (
	"errors"
	"strings"
)

// ErrPasswordMismatch is returned by MockPasswordVerifier on mismatch.
var ErrPasswordMismatch = errors.New("password does not match")

const mockHashPrefix = "hashed:"

// MockPasswordHasher implements auth.PasswordHasher for testing. The
// default implementation prefixes the plaintext so tests can assert the
// stored value without paying for bcrypt.
type MockPasswordHasher struct {
	HashFn    func(password string) (string, error)
	HashError error
}

// Hash implements the PasswordHasher interface.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	if m.HashError != nil {
		return "", m.HashError
	}
	return mockHashPrefix + password, nil
}

// MockPasswordVerifier implements auth.PasswordVerifier for testing,
// matching hashes produced by MockPasswordHasher.
type MockPasswordVerifier struct {
	CompareFn func(hashedPassword, password string) error
}

// Compare implements the PasswordVerifier interface.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if strings.TrimPrefix(hashedPassword, mockHashPrefix) != password {
		return ErrPasswordMismatch
	}
	return nil
}
