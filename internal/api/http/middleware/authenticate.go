package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/hard75/internal/api/http/response"
	"github.com/dtroode/hard75/internal/apperrors"
	"github.com/dtroode/hard75/internal/logger"
	"github.com/dtroode/hard75/internal/model"
)

// Authenticate validates session tokens and injects the identity into the
// request context.
type Authenticate struct {
	tokenManager   model.TokenManager
	contextManager model.ContextManager
	cookieName     string
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance. The token
// is read from a bearer Authorization header, then from cookieName.
func NewAuthenticate(tokenManager model.TokenManager, contextManager model.ContextManager, cookieName string, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		tokenManager:   tokenManager,
		contextManager: contextManager,
		cookieName:     cookieName,
		logger:         logger,
	}
}

func (m *Authenticate) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := m.tokenFromRequest(c)
		if tokenString == "" {
			response.Error(c, apperrors.NewErrMissingSession())
			return
		}

		identity, err := m.tokenManager.ParseSessionToken(tokenString)
		if err != nil || identity.UserID == uuid.Nil {
			m.logger.Debug("Authenticate middleware: rejected session token", "error", err)
			response.Error(c, apperrors.NewErrMissingSession())
			return
		}

		c.Request = c.Request.WithContext(m.contextManager.SetIdentityToContext(c.Request.Context(), identity))
		c.Next()
	}
}

func (m *Authenticate) tokenFromRequest(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if m.cookieName == "" {
		return ""
	}
	cookie, err := c.Cookie(m.cookieName)
	if err != nil {
		return ""
	}
	return cookie
}
