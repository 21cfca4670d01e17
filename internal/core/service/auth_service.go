package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/orderdesk/order-management-api/internal/core/domain"
	"github.com/orderdesk/order-management-api/internal/core/ports"
)

// bcrypt silently truncates inputs beyond 72 bytes; reject them instead.
const maxPasswordBytes = 72

// AuthService implements registration, login, and role administration.
type AuthService struct {
	repo   ports.UserRepository
	tokens *TokenService
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, log: log}
}

// Register creates a new user with the default role. The email is the login
// key; a duplicate fails with domain.ErrEmailExists.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if len(password) > maxPasswordBytes {
		return nil, domain.ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", created.Email).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and returns a signed access token. Unknown
// email and wrong password both fail with ErrInvalidCredentials so the two
// cases cannot be told apart.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.Email)
}

// SetRole changes a user's role. This is the only exposed path that mutates
// roles; it requires an admin actor.
func (s *AuthService) SetRole(ctx context.Context, email string, role domain.Role, actor *domain.User) (*domain.User, error) {
	if actor == nil || !actor.Role.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	updated, err := s.repo.UpdateRole(ctx, email, role)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("email", email).
		Str("role", string(role)).
		Str("actor", actor.Email).
		Msg("role updated")
	return updated, nil
}

// ListUsers returns all users. Admin only.
func (s *AuthService) ListUsers(ctx context.Context, actor *domain.User) ([]*domain.User, error) {
	if actor == nil || !actor.Role.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.repo.List(ctx)
}

// EnsureAdmin creates the bootstrap admin account if it does not exist yet,
// or promotes it if it does. Idempotent; called once at startup when
// configured.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		_, err = s.repo.UpdateRole(ctx, email, domain.RoleAdmin)
		return err
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = s.repo.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("email", email).Msg("bootstrap admin created")
	return nil
}
