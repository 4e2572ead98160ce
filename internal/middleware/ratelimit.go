package middleware

import (
	"net/http"
	"time"

	"CarbonFootprintTracker/internal/logging"

	"github.com/gin-gonic/gin"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"
)

// RateLimit throttles requests per client IP with a token bucket.
// Idle limiters are evicted after an hour.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	return limit.NewRateLimiter(
		func(c *gin.Context) string {
			return c.ClientIP()
		},
		func(c *gin.Context) (*rate.Limiter, time.Duration) {
			return rate.NewLimiter(rate.Limit(rps), burst), time.Hour
		},
		func(c *gin.Context) {
			logging.Ctx(c.Request.Context()).Warn().Str("client_ip", c.ClientIP()).Msg("RateLimit(): too many requests")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"success": false, "message": "Too many requests"})
		},
	)
}
