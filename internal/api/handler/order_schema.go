package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth request / response types ---

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=200"`
}

type registeredResponse struct {
	Message string `json:"message"`
}

// loginRequest carries the same constraints as registration: a credential
// that could never have been registered is rejected before hashing.
type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=200"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// --- Order request / response types ---

type createOrderRequest struct {
	CustomerName string `json:"customer_name" validate:"required,min=1,max=200"`
	ItemName     string `json:"item_name"     validate:"required,min=1,max=200"`
	Quantity     int    `json:"quantity"      validate:"required,gte=1,lte=100000"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING SHIPPED DELIVERED"`
}

// orderResponse is the transport view of an order, intentionally separate
// from the domain type so the JSON contract is not coupled to internal
// changes.
type orderResponse struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	ItemName     string    `json:"item_name"`
	Quantity     int       `json:"quantity"`
	Status       string    `json:"status"`
	OwnerID      string    `json:"owner_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// --- Admin request / response types ---

type setRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
