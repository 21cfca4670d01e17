package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/orderdesk/order-management-api/internal/core/domain"
	"github.com/orderdesk/order-management-api/internal/core/ports"
)

// defaultListLimit is used when the limit query parameter is absent. An
// explicit limit of 0 is clamped to 1 by the service instead.
const defaultListLimit = 20

// OrderHandler handles HTTP requests for order operations.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Create handles POST /orders.
//
// @Summary      Create a new order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order details"
// @Success      201   {object}  orderResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	order, err := h.service.Create(c.Request().Context(), ports.CreateOrderInput{
		CustomerName: req.CustomerName,
		ItemName:     req.ItemName,
		Quantity:     req.Quantity,
	}, user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toOrderResponse(order))
}

// List handles GET /orders.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        search      query     string  false  "Substring match on customer_name or item_name"
// @Param        min_qty     query     int     false  "Minimum quantity"
// @Param        max_qty     query     int     false  "Maximum quantity"
// @Param        sort_by     query     string  false  "Sort key: id, quantity, created_at"  default(id)
// @Param        sort_order  query     string  false  "asc or desc"                         default(desc)
// @Param        limit       query     int     false  "Page size, clamped to [1,100]"       default(20)
// @Param        offset      query     int     false  "Rows to skip, clamped to >= 0"       default(0)
// @Success      200  {array}   orderResponse
// @Failure      401  {object}  errorResponse
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	in := ports.ListOrdersInput{
		Search:    c.QueryParam("search"),
		MinQty:    intParam(c, "min_qty", 0),
		MaxQty:    intParam(c, "max_qty", 0),
		SortBy:    c.QueryParam("sort_by"),
		SortOrder: c.QueryParam("sort_order"),
		Limit:     intParam(c, "limit", defaultListLimit),
		Offset:    intParam(c, "offset", 0),
	}

	orders, err := h.service.List(c.Request().Context(), in, user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderListResponse(orders))
}

// Get handles GET /orders/:id.
//
// @Summary      Get a single order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  orderResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	order, err := h.service.Get(c.Request().Context(), c.Param("id"), user)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		}
		if errors.Is(err, domain.ErrForbidden) {
			return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
		}
		return err
	}

	return c.JSON(http.StatusOK, toOrderResponse(order))
}

// UpdateStatus handles PATCH /orders/:id.
//
// @Summary      Update an order's status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Order id"
// @Param        body  body      updateOrderStatusRequest  true  "New status"
// @Success      200   {object}  orderResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /orders/{id} [patch]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	status, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	order, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), status, user)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		}
		if errors.Is(err, domain.ErrForbidden) {
			return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
		}
		return err
	}

	return c.JSON(http.StatusOK, toOrderResponse(order))
}

// Delete handles DELETE /orders/:id. Admin only.
//
// @Summary      Delete an order
// @Tags         orders
// @Security     BearerAuth
// @Param        id  path  string  true  "Order id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), user); err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		}
		if errors.Is(err, domain.ErrForbidden) {
			return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
		}
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// intParam parses an integer query parameter, returning fallback when the
// parameter is absent or malformed.
func intParam(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
