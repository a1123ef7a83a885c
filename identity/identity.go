// Package identity holds the identity backends a client session signs in against.
package identity

import (
	"context"
	"errors"

	"kacip-storefront/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrEmailTaken         = errors.New("email already registered")
	// ErrUnavailable wraps any failure to reach the backing identity store
	ErrUnavailable = errors.New("identity backend unavailable")
)

// Identity is the public part of an authenticated user
type Identity struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
}

// IsAdmin is derived from Role only
func (i Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

// Backend is the capability contract the session holder depends on. Any backend that
// satisfies it can be swapped in.
type Backend interface {
	// Login checks credentials and returns the identity with a bearer token
	Login(ctx context.Context, email, password string) (Identity, string, error)

	// Logout invalidates token remotely. Callers treat failures as best-effort.
	Logout(ctx context.Context, token string) error

	// CurrentUser resolves a bearer token back to its identity
	CurrentUser(ctx context.Context, token string) (Identity, error)
}
