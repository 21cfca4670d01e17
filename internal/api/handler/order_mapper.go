package handler

import (
	"github.com/orderdesk/order-management-api/internal/core/domain"
)

func toOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		ItemName:     o.ItemName,
		Quantity:     o.Quantity,
		Status:       string(o.Status),
		OwnerID:      o.OwnerID,
		CreatedAt:    o.CreatedAt.UTC(),
	}
}

func toOrderListResponse(orders []*domain.Order) []orderResponse {
	out := make([]orderResponse, len(orders))
	for i, o := range orders {
		out[i] = toOrderResponse(o)
	}
	return out
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.UTC(),
	}
}

func toUserListResponse(users []*domain.User) []userResponse {
	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return out
}
