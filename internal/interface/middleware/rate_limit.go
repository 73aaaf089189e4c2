package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/taskflow-api/pkg/response"
)

// KeyFunc builds a rate-limit key from the request
type KeyFunc func(c *gin.Context) string

// KeyByIP returns a key function that limits by client IP only
func KeyByIP() KeyFunc {
	return func(c *gin.Context) string {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}
		return "rl:ip:" + ip
	}
}

// RateLimit rejects requests with 429 once the caller's bucket is empty.
// A nil limiter disables the middleware entirely.
func RateLimit(tb *TokenBucket, key KeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tb == nil {
			c.Next()
			return
		}
		if !tb.Allow(key(c)) {
			response.AbortTooManyRequests(c)
			return
		}
		c.Next()
	}
}
