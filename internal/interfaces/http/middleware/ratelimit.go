package middleware

import (
	"github.com/gin-gonic/gin"

	"stratplan/internal/infrastructure/ratelimit"
	"stratplan/internal/shared/errors"
	"stratplan/internal/shared/logger"
	"stratplan/internal/shared/utils"
)

// RateLimiter throttles requests per client IP. A nil limiter lets every
// request through.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, logger logger.Interface) *RateLimiter {
	return &RateLimiter{limiter: limiter, logger: logger}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.limiter == nil {
			c.Next()
			return
		}

		allowed, err := rl.limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			// fail open when redis is unreachable
			rl.logger.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponseWithError(c, errors.NewRateLimitedError())
			return
		}

		c.Next()
	}
}
