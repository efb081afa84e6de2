package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/helpdesk/ticketing-system/internal/core/domain"
)

type stubSessionStore struct {
	sessions map[string]domain.Session
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]domain.Session)}
}

func (s *stubSessionStore) Put(_ context.Context, id string, session domain.Session) error {
	s.sessions[id] = session
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, id string) (domain.Session, error) {
	session, ok := s.sessions[id]
	if !ok {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	return session, nil
}

func (s *stubSessionStore) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func TestSessionService_CreateAndLoad(t *testing.T) {
	store := newStubSessionStore()
	svc := NewSessionService(store, "test-secret", zerolog.Nop())

	token, err := svc.Create(context.Background(), "user-1", domain.RoleUser)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}

	session, err := svc.Load(context.Background(), token)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if session.UserID != "user-1" || session.Role != domain.RoleUser {
		t.Fatalf("unexpected payload: %+v", session)
	}
}

func TestSessionService_Load_TamperedToken(t *testing.T) {
	store := newStubSessionStore()
	svc := NewSessionService(store, "test-secret", zerolog.Nop())

	token, err := svc.Create(context.Background(), "user-1", domain.RoleUser)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := svc.Load(context.Background(), token+"x"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for tampered token, got %v", err)
	}

	other := NewSessionService(store, "other-secret", zerolog.Nop())
	if _, err := other.Load(context.Background(), token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for token signed with another secret, got %v", err)
	}
}

func TestSessionService_Load_ExpiredSession(t *testing.T) {
	store := newStubSessionStore()
	svc := NewSessionService(store, "test-secret", zerolog.Nop())

	token, err := svc.Create(context.Background(), "user-1", domain.RoleUser)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// TTL expiry removes the store entry; the signed token alone is useless.
	for id := range store.sessions {
		delete(store.sessions, id)
	}

	if _, err := svc.Load(context.Background(), token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after expiry, got %v", err)
	}
}

func TestSessionService_Destroy_Idempotent(t *testing.T) {
	store := newStubSessionStore()
	svc := NewSessionService(store, "test-secret", zerolog.Nop())

	token, err := svc.Create(context.Background(), "user-1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Destroy(context.Background(), token); err != nil {
		t.Fatalf("first Destroy failed: %v", err)
	}
	if err := svc.Destroy(context.Background(), token); err != nil {
		t.Fatalf("second Destroy failed: %v", err)
	}
	if err := svc.Destroy(context.Background(), "not-a-token"); err != nil {
		t.Fatalf("Destroy of malformed token failed: %v", err)
	}

	if _, err := svc.Load(context.Background(), token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected session gone after Destroy, got %v", err)
	}
}
