package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter implements a fixed-window request counter backed by Redis.
// Key format: ratelimit:<route>:<client-ip>
//
// The window survives process restarts and is shared across instances, which
// is why this lives in Redis rather than in-process token buckets.
type RateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewRateLimiter creates a limiter allowing limit requests per window per key.
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{client: client, limit: int64(limit), window: window}
}

// Allow increments the counter for (route, clientIP) and reports whether the
// request is within the window limit.
func (l *RateLimiter) Allow(ctx context.Context, route, clientIP string) (bool, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", route, clientIP)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		// First hit in this window starts the expiry clock.
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= l.limit, nil
}
