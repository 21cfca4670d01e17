package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/orderdesk/order-management-api/internal/api/metrics"
)

// RateLimiter bounds requests per (route, client address) pair.
type RateLimiter interface {
	Allow(ctx context.Context, route, clientIP string) (bool, error)
}

// RateLimit throttles a route per client address. A limiter outage fails
// open: credential endpoints must stay reachable even if Redis is down.
func RateLimit(limiter RateLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route := c.Path()

			allowed, err := limiter.Allow(c.Request().Context(), route, c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("route", route).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}
			if !allowed {
				metrics.RateLimitedTotal.WithLabelValues(route).Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
