package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ppiankov/benkhawiya/internal/http/response"
	"github.com/ppiankov/benkhawiya/internal/platform/apierr"
	"github.com/ppiankov/benkhawiya/internal/worker"
)

var errRateLimited = errors.New("too many requests, slow down")

// RateLimit rejects clients that exceed their token bucket with 429
func RateLimit(limiter *worker.Limiter) gin.HandlerFunc {
	if limiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.Header("Retry-After", "1")
			response.RespondError(c, http.StatusTooManyRequests, apierr.CodeRateLimited, errRateLimited)
			return
		}
		c.Next()
	}
}
