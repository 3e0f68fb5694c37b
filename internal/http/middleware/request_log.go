package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ppiankov/benkhawiya/internal/platform/logger"
)

func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if log == nil {
			return
		}

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		fields := []interface{}{
			"method", strings.ToUpper(c.Request.Method),
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if traceID := c.GetString(KeyTraceID); traceID != "" {
			fields = append(fields, "trace_id", traceID)
		}
		if reqID := c.GetString(KeyRequestID); reqID != "" {
			fields = append(fields, "request_id", reqID)
		}
		if cacheStatus := c.Writer.Header().Get("X-Cache"); cacheStatus != "" {
			fields = append(fields, "cache", cacheStatus)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "error", c.Errors.Last().Error())
		}

		switch {
		case status >= 500:
			log.Error("HTTP request", fields...)
		case status >= 400:
			log.Warn("HTTP request", fields...)
		default:
			log.Info("HTTP request", fields...)
		}
	}
}
