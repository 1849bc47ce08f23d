package server

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vk/taskflowgo/internal/ctxlog"
)

// requestIDHeader is echoed back to callers for log correlation.
const requestIDHeader = "X-Request-ID"

// requestID assigns each request a fresh ID unless the caller supplied one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(requestIDHeader, id)
		c.Set("request_id", id)
		c.Next()
	}
}

// requestLogger embeds a per-request logger into the request context so
// handlers and the scheduler core pick it up via ctxlog, then emits one
// summary line per request.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqLogger := logger.With("request_id", c.GetString("request_id"))
		ctx := ctxlog.WithLogger(c.Request.Context(), reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		reqLogger.Info("Request handled.",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
