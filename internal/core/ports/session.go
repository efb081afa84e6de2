package ports

import (
	"context"

	"github.com/helpdesk/ticketing-system/internal/core/domain"
)

// SessionStore persists session payloads keyed by opaque session ID so that
// active sessions survive a process restart.
type SessionStore interface {
	// Put stores the payload under id for the store's configured TTL.
	Put(ctx context.Context, id string, session domain.Session) error
	// Get returns the payload for id, or domain.ErrSessionNotFound when the
	// id is unknown or the entry has expired.
	Get(ctx context.Context, id string) (domain.Session, error)
	// Delete removes the entry for id. Deleting an absent entry is not an
	// error.
	Delete(ctx context.Context, id string) error
}

// SessionService issues and resolves signed session tokens.
type SessionService interface {
	// Create opens a session for the user and returns the signed token to
	// be set as the session cookie value.
	Create(ctx context.Context, userID, role string) (string, error)
	// Load resolves a token back to its payload. Forged, expired, and
	// unknown tokens all yield domain.ErrSessionNotFound.
	Load(ctx context.Context, token string) (domain.Session, error)
	// Destroy invalidates the session behind token. Idempotent.
	Destroy(ctx context.Context, token string) error
}
