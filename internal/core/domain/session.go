package domain

import "errors"

// ErrSessionNotFound marks an unknown, expired, or tampered session token.
// Absence is a legitimate state meaning "unauthenticated", not a fault.
var ErrSessionNotFound = errors.New("session not found")

// Session is the server-side payload bound to a session cookie.
type Session struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}
