package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const rateLimiterKey = "rateLimiter"

// RateLimiter allows maxRequests per window for each client IP, method and
// route. Counters live in Redis and expire with their window.
func RateLimiter(client *redis.Client, maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rateLimitKey(c)

		count, ttl, err := hitWindow(c.Request.Context(), client, key, window)
		if err != nil {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse(c, "Rate limiter unavailable"))
			return
		}

		remaining := maxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      remaining,
			ResetAt:        time.Now().Add(ttl).Truncate(time.Second),
			ResetInSeconds: int(ttl.Round(time.Second) / time.Second),
		}
		c.Set(rateLimiterKey, rate)

		if int(count) > maxRequests {
			c.Header("Retry-After", fmt.Sprint(rate.ResetInSeconds))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ErrorResponse(c, "Too many requests"))
			return
		}

		c.Next()
	}
}

// rl:<ip>:<method>:<route>
func rateLimitKey(c *gin.Context) string {
	return "rl:" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()
}

// hitWindow counts one request against key and returns the count and the
// time left in the window. A counter found without expiry gets one.
func hitWindow(ctx context.Context, client *redis.Client, key string, window time.Duration) (int64, time.Duration, error) {
	var (
		incr *redis.IntCmd
		pttl *redis.DurationCmd
	)
	if _, err := client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pttl = pipe.PTTL(ctx, key)
		return nil
	}); err != nil {
		return 0, 0, fmt.Errorf("rate limit %s: %w", key, err)
	}

	ttl := pttl.Val()
	if ttl <= 0 {
		if err := client.PExpire(ctx, key, window).Err(); err != nil {
			return 0, 0, fmt.Errorf("rate limit expire %s: %w", key, err)
		}
		ttl = window
	}

	return incr.Val(), ttl, nil
}
