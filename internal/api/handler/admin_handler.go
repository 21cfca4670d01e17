package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orderdesk/order-management-api/internal/core/domain"
	"github.com/orderdesk/order-management-api/internal/core/ports"
)

// AdminHandler exposes out-of-band user administration. All routes are
// guarded by the RequireAdmin middleware.
type AdminHandler struct {
	authService ports.AuthService
}

func NewAdminHandler(authService ports.AuthService) *AdminHandler {
	return &AdminHandler{authService: authService}
}

// ListUsers handles GET /admin/users.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	users, err := h.authService.ListUsers(c.Request().Context(), user)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
		}
		return err
	}

	return c.JSON(http.StatusOK, toUserListResponse(users))
}

// SetRole handles PUT /admin/users/:email/role — the only exposed path that
// mutates a user's role.
//
// @Summary      Change a user's role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string          true  "User email"
// @Param        body   body      setRoleRequest  true  "New role"
// @Success      200    {object}  userResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Failure      422    {object}  errorResponse
// @Router       /admin/users/{email}/role [put]
func (h *AdminHandler) SetRole(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req setRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	updated, err := h.authService.SetRole(c.Request().Context(), c.Param("email"), role, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		if errors.Is(err, domain.ErrForbidden) {
			return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
		}
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(updated))
}
