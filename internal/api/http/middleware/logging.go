package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/hard75/internal/api/http/response"
	"github.com/dtroode/hard75/internal/logger"
)

// Logging logs every HTTP request and its result.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle logs method, path, status and duration for each request.
func (l *Logging) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", c.GetString(response.RequestIDKey),
		}

		switch {
		case status >= 500:
			l.logger.Error("HTTP request failed", append(args, "error", c.Errors.String())...)
		case len(c.Errors) > 0:
			l.logger.Warn("HTTP request rejected", append(args, "error", c.Errors.String())...)
		default:
			l.logger.Info("HTTP request completed", args...)
		}
	}
}
