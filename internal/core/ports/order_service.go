package ports

import (
	"context"

	"github.com/orderdesk/order-management-api/internal/core/domain"
)

// CreateOrderInput carries the validated fields for a new order.
type CreateOrderInput struct {
	CustomerName string
	ItemName     string
	Quantity     int
}

// ListOrdersInput carries the raw list parameters as received from the
// transport layer. Out-of-range pagination values are clamped, not rejected.
type ListOrdersInput struct {
	Search    string
	MinQty    int
	MaxQty    int
	SortBy    string // "id", "quantity", "created_at"; unknown keys fall back to "id"
	SortOrder string // "asc" or "desc"; default "desc"
	Limit     int    // clamped to [1,100]; the transport layer supplies 20 when absent
	Offset    int    // clamped to >= 0
}

// OrderService defines actor-aware order operations. Every call takes the
// resolved current user and enforces ownership and role rules.
type OrderService interface {
	Create(ctx context.Context, in CreateOrderInput, actor *domain.User) (*domain.Order, error)
	List(ctx context.Context, in ListOrdersInput, actor *domain.User) ([]*domain.Order, error)
	Get(ctx context.Context, id string, actor *domain.User) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, actor *domain.User) (*domain.Order, error)
	// Delete requires the admin role; ownership alone is insufficient.
	Delete(ctx context.Context, id string, actor *domain.User) error
}
