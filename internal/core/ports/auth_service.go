package ports

import (
	"context"

	"github.com/helpdesk/ticketing-system/internal/core/domain"
)

// AuthService implements registration, credential verification, and the
// one-time admin bootstrap.
type AuthService interface {
	// Register creates a user account with role "user". The username must
	// already be trimmed and length-validated by the transport layer.
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login verifies credentials. Unknown usernames and wrong passwords are
	// indistinguishable: both return domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*domain.User, error)
	// EnsureAdmin creates the bootstrap admin account if it does not exist.
	// Idempotent; safe to run on every startup.
	EnsureAdmin(ctx context.Context) error
}
