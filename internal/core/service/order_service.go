package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/orderdesk/order-management-api/internal/api/metrics"
	"github.com/orderdesk/order-management-api/internal/core/domain"
	"github.com/orderdesk/order-management-api/internal/core/ports"
)

const maxLimit = 100

// OrderService enforces ownership and role rules over order CRUD.
type OrderService struct {
	repo ports.OrderRepository
	log  zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, log zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, log: log}
}

// Create persists a new order owned by the actor. Status always starts at
// PENDING and the creation timestamp is server-assigned.
func (s *OrderService) Create(ctx context.Context, in ports.CreateOrderInput, actor *domain.User) (*domain.Order, error) {
	order := &domain.Order{
		CustomerName: in.CustomerName,
		ItemName:     in.ItemName,
		Quantity:     in.Quantity,
		Status:       domain.StatusPending,
		OwnerID:      actor.ID,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create order")
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	s.log.Info().Str("order_id", created.ID).Str("owner", actor.Email).Msg("order created")
	return created, nil
}

// List returns orders matching the filters. Non-admin actors only ever see
// their own orders; admins see everything. Pagination inputs are silently
// clamped, and an unrecognized sort key falls back to id.
func (s *OrderService) List(ctx context.Context, in ports.ListOrdersInput, actor *domain.User) ([]*domain.Order, error) {
	q := ports.ListOrdersQuery{
		Search:   in.Search,
		MinQty:   in.MinQty,
		MaxQty:   in.MaxQty,
		SortKey:  sortKey(in.SortBy),
		SortDesc: in.SortOrder != "asc",
		Limit:    clamp(in.Limit, 1, maxLimit),
		Offset:   in.Offset,
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	if !actor.Role.IsAdmin() {
		q.OwnerID = actor.ID
	}

	return s.repo.List(ctx, q)
}

// Get returns a single order. Only the owner or an admin may see it.
func (s *OrderService) Get(ctx context.Context, id string, actor *domain.User) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.Role.IsAdmin() && order.OwnerID != actor.ID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

// UpdateStatus overwrites the order status. Only the owner or an admin may do
// so. There is no transition graph: any status may replace any other.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, actor *domain.User) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.Role.IsAdmin() && order.OwnerID != actor.ID {
		return nil, domain.ErrForbidden
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("order_id", id).
		Str("from", string(order.Status)).
		Str("to", string(status)).
		Str("actor", actor.Email).
		Msg("order status updated")
	return updated, nil
}

// Delete permanently removes an order. Admin only; ownership alone is
// insufficient.
func (s *OrderService) Delete(ctx context.Context, id string, actor *domain.User) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if !actor.Role.IsAdmin() {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.OrdersDeletedTotal.Inc()
	s.log.Info().Str("order_id", id).Str("actor", actor.Email).Msg("order deleted")
	return nil
}

// sortKey whitelists the sort field, falling back to id.
func sortKey(key string) string {
	switch key {
	case "quantity", "created_at":
		return key
	default:
		return "id"
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
