package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusDelivered OrderStatus = "DELIVERED"
)

// ParseOrderStatus converts a raw string to an OrderStatus, rejecting
// anything outside the closed set.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusPending, StatusShipped, StatusDelivered:
		return OrderStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInvalidRole        = errors.New("invalid role")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrPasswordTooLong    = errors.New("password too long (max 72 bytes)")
)

// Order is a purchase record owned by exactly one user.
//
// There is no enforced transition graph on Status: any of the three states is
// reachable from any other via an update. PENDING is always the initial state.
type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customer_name"`
	ItemName     string      `json:"item_name"`
	Quantity     int         `json:"quantity"`
	Status       OrderStatus `json:"status"`
	OwnerID      string      `json:"owner_id"`
	CreatedAt    time.Time   `json:"created_at"`
}
