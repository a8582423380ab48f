package ratelimit

import (
	"math"
	"strconv"

	"reward-platform/internal/apierrors"
	"reward-platform/internal/observability"

	"github.com/gin-gonic/gin"
)

// CallerKey is the gin context key holding the authenticated user id
const CallerKey = "user_id"

// Middleware creates a Gin middleware for rate limiting. Authenticated callers
// are limited by user id, anonymous callers by client IP.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		key := c.GetString(CallerKey)
		if key == "" {
			key = "ip:" + c.ClientIP()
		}

		result := l.Allow(ctx, key)

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(result.RetryAfter.Seconds()))))
			ctx = observability.WithFields(ctx,
				observability.Field{Key: "rate_limit_key", Value: key},
				observability.Field{Key: "retry_after_ms", Value: result.RetryAfter.Milliseconds()},
			)
			l.logger.Warn(ctx, "rate limit exceeded")
			observability.RecordRateLimited()

			apierrors.RespondWithError(c, apierrors.TooManyRequests("Rate limit exceeded"))
			return
		}

		c.Next()
	}
}
