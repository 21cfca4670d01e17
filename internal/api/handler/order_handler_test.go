package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/orderdesk/order-management-api/internal/api/middleware"
	"github.com/orderdesk/order-management-api/internal/core/domain"
	"github.com/orderdesk/order-management-api/internal/core/ports"
)

type stubOrderService struct {
	order     *domain.Order
	orders    []*domain.Order
	err       error
	lastInput ports.ListOrdersInput
	lastID    string
}

func (s *stubOrderService) Create(_ context.Context, in ports.CreateOrderInput, actor *domain.User) (*domain.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Order{
		ID:           "o1",
		CustomerName: in.CustomerName,
		ItemName:     in.ItemName,
		Quantity:     in.Quantity,
		Status:       domain.StatusPending,
		OwnerID:      actor.ID,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

func (s *stubOrderService) List(_ context.Context, in ports.ListOrdersInput, _ *domain.User) ([]*domain.Order, error) {
	s.lastInput = in
	return s.orders, s.err
}

func (s *stubOrderService) Get(_ context.Context, id string, _ *domain.User) (*domain.Order, error) {
	s.lastID = id
	return s.order, s.err
}

func (s *stubOrderService) UpdateStatus(_ context.Context, id string, status domain.OrderStatus, _ *domain.User) (*domain.Order, error) {
	s.lastID = id
	if s.err != nil {
		return nil, s.err
	}
	updated := *s.order
	updated.Status = status
	return &updated, nil
}

func (s *stubOrderService) Delete(_ context.Context, id string, _ *domain.User) error {
	s.lastID = id
	return s.err
}

var orderTestUser = &domain.User{ID: "u1", Email: "user@example.com", Role: domain.RoleUser}

func newOrderTestContext(t *testing.T, method, target, body string) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserKey, orderTestUser)
	return e, c, rec
}

func TestOrderHandler_Create(t *testing.T) {
	e, c, rec := newOrderTestContext(t, http.MethodPost, "/orders",
		`{"customer_name":"ACME Corp","item_name":"Widget","quantity":3}`)

	h := NewOrderHandler(&stubOrderService{})
	if err := h.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp orderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Status != string(domain.StatusPending) {
		t.Fatalf("expected status PENDING, got %q", resp.Status)
	}
	if resp.OwnerID != orderTestUser.ID {
		t.Fatalf("expected owner %s, got %q", orderTestUser.ID, resp.OwnerID)
	}
}

func TestOrderHandler_Create_Validation(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{"customer_name"`, http.StatusBadRequest},
		{"missing item", `{"customer_name":"ACME Corp","quantity":3}`, http.StatusUnprocessableEntity},
		{"zero quantity", `{"customer_name":"ACME Corp","item_name":"Widget","quantity":0}`, http.StatusUnprocessableEntity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, c, rec := newOrderTestContext(t, http.MethodPost, "/orders", tc.body)
			h := NewOrderHandler(&stubOrderService{})
			if err := h.Create(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestOrderHandler_Create_Unauthenticated(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/orders",
		strings.NewReader(`{"customer_name":"ACME Corp","item_name":"Widget","quantity":3}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewOrderHandler(&stubOrderService{})
	if err := h.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestOrderHandler_List_QueryPassthrough(t *testing.T) {
	e, c, rec := newOrderTestContext(t, http.MethodGet,
		"/orders?search=acme&min_qty=2&max_qty=50&sort_by=quantity&sort_order=asc&limit=5&offset=10", "")

	svc := &stubOrderService{orders: []*domain.Order{}}
	h := NewOrderHandler(svc)
	if err := h.List(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	want := ports.ListOrdersInput{
		Search: "acme", MinQty: 2, MaxQty: 50,
		SortBy: "quantity", SortOrder: "asc", Limit: 5, Offset: 10,
	}
	if svc.lastInput != want {
		t.Fatalf("expected input %+v, got %+v", want, svc.lastInput)
	}
}

func TestOrderHandler_List_DefaultLimit(t *testing.T) {
	e, c, _ := newOrderTestContext(t, http.MethodGet, "/orders", "")

	svc := &stubOrderService{orders: []*domain.Order{}}
	h := NewOrderHandler(svc)
	if err := h.List(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if svc.lastInput.Limit != defaultListLimit {
		t.Fatalf("expected default limit %d when absent, got %d", defaultListLimit, svc.lastInput.Limit)
	}
}

func TestOrderHandler_List_EmptyResultIsArray(t *testing.T) {
	e, c, rec := newOrderTestContext(t, http.MethodGet, "/orders", "")

	h := NewOrderHandler(&stubOrderService{orders: nil})
	if err := h.List(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("expected empty JSON array, got %q", got)
	}
}

func TestOrderHandler_Get_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", domain.ErrOrderNotFound, http.StatusNotFound},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, c, rec := newOrderTestContext(t, http.MethodGet, "/orders/o1", "")
			c.SetParamNames("id")
			c.SetParamValues("o1")

			h := NewOrderHandler(&stubOrderService{err: tc.err})
			if err := h.Get(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	e, c, rec := newOrderTestContext(t, http.MethodPatch, "/orders/o1", `{"status":"SHIPPED"}`)
	c.SetParamNames("id")
	c.SetParamValues("o1")

	svc := &stubOrderService{order: &domain.Order{ID: "o1", Status: domain.StatusPending, OwnerID: orderTestUser.ID}}
	h := NewOrderHandler(svc)
	if err := h.UpdateStatus(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastID != "o1" {
		t.Fatalf("expected service called with id o1, got %q", svc.lastID)
	}
	var resp orderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Status != string(domain.StatusShipped) {
		t.Fatalf("expected SHIPPED, got %q", resp.Status)
	}
}

func TestOrderHandler_UpdateStatus_UnknownStatus(t *testing.T) {
	e, c, rec := newOrderTestContext(t, http.MethodPatch, "/orders/o1", `{"status":"TELEPORTED"}`)
	c.SetParamNames("id")
	c.SetParamValues("o1")

	h := NewOrderHandler(&stubOrderService{})
	if err := h.UpdateStatus(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestOrderHandler_Delete(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, http.StatusNoContent},
		{"not found", domain.ErrOrderNotFound, http.StatusNotFound},
		{"non-admin", domain.ErrForbidden, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, c, rec := newOrderTestContext(t, http.MethodDelete, "/orders/o1", "")
			c.SetParamNames("id")
			c.SetParamValues("o1")

			h := NewOrderHandler(&stubOrderService{err: tc.err})
			if err := h.Delete(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}
