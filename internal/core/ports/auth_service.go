package ports

import (
	"context"

	"github.com/orderdesk/order-management-api/internal/core/domain"
)

// AuthService implements registration, login, and out-of-band role changes.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	// Login returns a signed access token on success. Unknown email and wrong
	// password are indistinguishable: both fail with ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)
	// SetRole changes a user's role. The actor must be an admin.
	SetRole(ctx context.Context, email string, role domain.Role, actor *domain.User) (*domain.User, error)
	ListUsers(ctx context.Context, actor *domain.User) ([]*domain.User, error)
}
