package ports

import (
	"context"

	"github.com/orderdesk/order-management-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// UpdateRole overwrites the role of the user with the given email.
	UpdateRole(ctx context.Context, email string, role domain.Role) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
