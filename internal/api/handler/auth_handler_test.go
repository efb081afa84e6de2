package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/helpdesk/ticketing-system/internal/api/middleware"
	"github.com/helpdesk/ticketing-system/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, username, password string) (*domain.User, error)
	loginFn    func(ctx context.Context, username, password string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	return s.registerFn(ctx, username, password)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) EnsureAdmin(ctx context.Context) error { return nil }

type stubSessions struct {
	created   []domain.Session
	destroyed []string
	token     string
}

func (s *stubSessions) Create(_ context.Context, userID, role string) (string, error) {
	s.created = append(s.created, domain.Session{UserID: userID, Role: role})
	return s.token, nil
}

func (s *stubSessions) Load(_ context.Context, token string) (domain.Session, error) {
	return domain.Session{}, domain.ErrSessionNotFound
}

func (s *stubSessions) Destroy(_ context.Context, token string) error {
	s.destroyed = append(s.destroyed, token)
	return nil
}

func newAuthTestContext(t *testing.T, body string) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e, e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	auth := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string) (*domain.User, error) {
			if username != "alice" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return &domain.User{ID: "u1", Username: username, Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(auth, &stubSessions{}, 24*time.Hour, false)

	_, c, rec := newAuthTestContext(t, `{"username":"alice","password":"secret1"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] == "" {
		t.Fatalf("expected confirmation message")
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	auth := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(auth, &stubSessions{}, 24*time.Hour, false)

	_, c, _ := newAuthTestContext(t, `{"username":"alice","password":"secret1"}`)
	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	called := false
	auth := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string) (*domain.User, error) {
			called = true
			return nil, nil
		},
	}
	h := NewAuthHandler(auth, &stubSessions{}, 24*time.Hour, false)

	cases := []string{
		`{"username":"ab","password":"secret1"}`,  // username too short
		`{"username":"alice","password":"short"}`, // password too short
		`{"username":"   ","password":"secret1"}`, // whitespace-only username
	}
	for _, body := range cases {
		_, c, _ := newAuthTestContext(t, body)
		err := h.Register(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %v", body, err)
		}
	}
	if called {
		t.Fatalf("service must not be called on validation failure")
	}
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	auth := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*domain.User, error) {
			return &domain.User{ID: "u1", Username: "alice", Role: domain.RoleUser}, nil
		},
	}
	sessions := &stubSessions{token: "signed-token"}
	h := NewAuthHandler(auth, sessions, 24*time.Hour, false)

	_, c, rec := newAuthTestContext(t, `{"username":"alice","password":"secret1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["role"] != domain.RoleUser {
		t.Fatalf("expected role in response, got %+v", resp)
	}

	if len(sessions.created) != 1 || sessions.created[0].UserID != "u1" {
		t.Fatalf("expected session created for u1, got %+v", sessions.created)
	}

	cookies := rec.Result().Cookies()
	var sessionCookie *http.Cookie
	for _, ck := range cookies {
		if ck.Name == middleware.CookieName {
			sessionCookie = ck
		}
	}
	if sessionCookie == nil {
		t.Fatalf("session cookie not set")
	}
	if sessionCookie.Value != "signed-token" {
		t.Fatalf("unexpected cookie value: %s", sessionCookie.Value)
	}
	if !sessionCookie.HttpOnly {
		t.Fatalf("session cookie must be HTTP-only")
	}
	if sessionCookie.Secure {
		t.Fatalf("secure flag must be off outside production")
	}
}

func TestAuthHandler_Login_SecureCookieInProduction(t *testing.T) {
	auth := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*domain.User, error) {
			return &domain.User{ID: "u1", Username: "alice", Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(auth, &stubSessions{token: "tok"}, 24*time.Hour, true)

	_, c, rec := newAuthTestContext(t, `{"username":"alice","password":"secret1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.CookieName && !ck.Secure {
			t.Fatalf("session cookie must be secure in production")
		}
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	auth := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*domain.User, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(auth, &stubSessions{}, 24*time.Hour, false)

	_, c, _ := newAuthTestContext(t, `{"username":"alice","password":"wrong99"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	sessions := &stubSessions{}
	h := NewAuthHandler(&stubAuthService{}, sessions, 24*time.Hour, false)

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: "tok-1"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(sessions.destroyed) != 1 || sessions.destroyed[0] != "tok-1" {
		t.Fatalf("expected session destroyed, got %+v", sessions.destroyed)
	}

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.CookieName && ck.MaxAge >= 0 {
			t.Fatalf("expected expired cookie, got MaxAge %d", ck.MaxAge)
		}
	}
}

func TestAuthHandler_Logout_WithoutSession(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubSessions{}, 24*time.Hour, false)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
