package ports

import (
	"context"

	"github.com/orderdesk/order-management-api/internal/core/domain"
)

// ListOrdersQuery carries the fully resolved query the repository executes.
// The service layer owns clamping and RBAC scoping; by the time a query
// reaches the repository every field is trusted.
type ListOrdersQuery struct {
	OwnerID  string // empty = no owner filter (admin); non-empty = scoped to owner
	Search   string // optional: case-insensitive substring on customer_name or item_name
	MinQty   int    // optional: quantity >= MinQty when > 0
	MaxQty   int    // optional: quantity <= MaxQty when > 0
	SortKey  string // one of "id", "quantity", "created_at"
	SortDesc bool
	Limit    int
	Offset   int
}

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	// FindByID retrieves an order by id. A malformed or unknown id fails with
	// domain.ErrOrderNotFound.
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, q ListOrdersQuery) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}
