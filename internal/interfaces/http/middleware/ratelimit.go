package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"vox/internal/infrastructure/ratelimit"
	"vox/internal/shared/logger"
	"vox/internal/shared/utils"
)

// SubmitRateLimit throttles feedback submissions per authenticated
// user. Must run after RequireAuth. Redis outages fail open so a cache
// incident never blocks submissions.
func SubmitRateLimit(limiter ratelimit.RateLimiter, limits ratelimit.SubmitLimits, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := utils.ContextUserID(c)
		if userID == 0 {
			c.Next()
			return
		}

		allowed, err := limiter.Allow(fmt.Sprintf("submit:%d", userID), limits)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}
		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "submission rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
