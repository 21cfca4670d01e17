package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orderdesk/order-management-api/internal/core/domain"
)

// RequireAdmin rejects requests whose resolved user does not hold the admin
// role. Must run after Auth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(ContextUserKey).(*domain.User)
			if !ok || user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if !user.Role.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, "admin role required")
			}
			return next(c)
		}
	}
}
