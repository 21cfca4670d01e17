package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/orderdesk/order-management-api/internal/core/domain"
)

// ContextUserKey is the echo context key under which the resolved user is
// stored for downstream handlers.
const ContextUserKey = "current_user"

// TokenVerifier validates a bearer token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// UserResolver resolves a token subject to a stored user.
type UserResolver interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Auth validates the bearer token and resolves it to a user, failing closed
// on any error. A subject that no longer resolves to a stored user is
// indistinguishable from a bad token so that account existence is not leaked.
func Auth(tokens TokenVerifier, users UserResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			subject, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			user, err := users.FindByEmail(c.Request().Context(), subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}
