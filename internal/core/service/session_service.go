package service

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/helpdesk/ticketing-system/internal/core/domain"
	"github.com/helpdesk/ticketing-system/internal/core/ports"
)

// SessionService issues signed session tokens and resolves them against a
// durable store. The cookie value is an HS256-signed compact token carrying
// only the opaque session ID; the payload itself lives server-side with an
// absolute TTL, so a restart does not log users out and tampered cookies
// fail before the store is consulted.
type SessionService struct {
	store  ports.SessionStore
	secret []byte
	logger zerolog.Logger
}

func NewSessionService(store ports.SessionStore, secret string, logger zerolog.Logger) *SessionService {
	return &SessionService{store: store, secret: []byte(secret), logger: logger}
}

// Create opens a session and returns the signed token for the cookie.
func (s *SessionService) Create(ctx context.Context, userID, role string) (string, error) {
	id := uuid.NewString()

	if err := s.store.Put(ctx, id, domain.Session{UserID: userID, Role: role}); err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sid": id})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		// orphaned store entry expires on its own TTL
		return "", err
	}

	return signed, nil
}

// Load verifies the token signature and fetches the payload. Any failure
// along the way is reported as ErrSessionNotFound: an unauthenticated
// request is a state, not a server fault.
func (s *SessionService) Load(ctx context.Context, token string) (domain.Session, error) {
	id, err := s.sessionID(token)
	if err != nil {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	return s.store.Get(ctx, id)
}

// Destroy invalidates the session. Destroying an absent or malformed
// session still succeeds so logout is idempotent.
func (s *SessionService) Destroy(ctx context.Context, token string) error {
	id, err := s.sessionID(token)
	if err != nil {
		return nil
	}
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil
		}
		return err
	}
	return nil
}

func (s *SessionService) sessionID(token string) (string, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", domain.ErrSessionNotFound
	}

	id, _ := claims["sid"].(string)
	if id == "" {
		return "", domain.ErrSessionNotFound
	}
	return id, nil
}
