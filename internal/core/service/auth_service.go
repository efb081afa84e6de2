package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/helpdesk/ticketing-system/internal/core/domain"
	"github.com/helpdesk/ticketing-system/internal/core/ports"
)

// AuthService implements registration, login, and the admin bootstrap.
type AuthService struct {
	repo          ports.UserRepository
	adminUsername string
	adminPassword string
	logger        zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, adminUsername, adminPassword string, logger zerolog.Logger) *AuthService {
	if adminUsername == "" {
		adminUsername = "admin"
	}
	return &AuthService{
		repo:          repo,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
		logger:        logger,
	}
}

// Register creates an account with role "user". The password is hashed
// exactly once, here; repositories never see plaintext.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Login verifies credentials. An unknown username and a wrong password both
// map to ErrInvalidCredentials so the response never reveals which failed.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// EnsureAdmin creates the bootstrap admin account when absent. A duplicate
// from a concurrent startup is treated as success. The default credentials
// are a development convenience, not a security control.
func (s *AuthService) EnsureAdmin(ctx context.Context) error {
	_, err := s.repo.FindByUsername(ctx, s.adminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	admin := &domain.User{
		Username:     s.adminUsername,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := s.repo.Create(ctx, admin); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil
		}
		return err
	}

	s.logger.Warn().
		Str("username", s.adminUsername).
		Msg("bootstrap admin created with default password; change it outside development")
	return nil
}
