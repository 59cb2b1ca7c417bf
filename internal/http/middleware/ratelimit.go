// README: Per-client rate limiting middleware (token bucket per IP).
package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	limiterCacheSize = 1000
	limiterCacheTTL  = 10 * time.Minute
)

// RateLimit allows perMinute requests per client IP with the given burst.
// Idle limiters age out of the cache so the map stays bounded.
func RateLimit(perMinute, burst int) gin.HandlerFunc {
	limiters := expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterCacheTTL)
	perSecond := rate.Limit(float64(perMinute) / 60.0)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		limiter, ok := limiters.Get(ip)
		if !ok {
			limiter = rate.NewLimiter(perSecond, burst)
			limiters.Add(ip, limiter)
		}
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
