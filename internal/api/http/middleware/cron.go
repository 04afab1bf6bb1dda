package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/hard75/internal/api/http/response"
	"github.com/dtroode/hard75/internal/apperrors"
	"github.com/dtroode/hard75/internal/logger"
)

// CronSecret admits only callers presenting the scheduler's shared secret.
type CronSecret struct {
	secret string
	logger *logger.Logger
}

// NewCronSecret creates the middleware. An empty secret rejects everyone.
func NewCronSecret(secret string, logger *logger.Logger) *CronSecret {
	return &CronSecret{secret: secret, logger: logger}
}

func (m *CronSecret) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		want := "Bearer " + m.secret
		got := c.GetHeader("Authorization")
		if m.secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(want)) != 1 {
			m.logger.Warn("Cron middleware: rejected sweep trigger", "client_ip", c.ClientIP())
			response.Error(c, apperrors.NewErrForbidden())
			return
		}
		c.Next()
	}
}
