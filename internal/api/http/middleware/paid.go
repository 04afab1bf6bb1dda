package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/hard75/internal/api/http/response"
	"github.com/dtroode/hard75/internal/apperrors"
	"github.com/dtroode/hard75/internal/model"
)

// PaymentChecker reports whether a user has unlocked the paid features.
type PaymentChecker interface {
	RequirePaid(ctx context.Context, userID uuid.UUID) error
}

// RequirePaid rejects authenticated users who have not paid. It must run
// after Authenticate.
type RequirePaid struct {
	checker        PaymentChecker
	contextManager model.ContextManager
}

func NewRequirePaid(checker PaymentChecker, contextManager model.ContextManager) *RequirePaid {
	return &RequirePaid{checker: checker, contextManager: contextManager}
}

func (m *RequirePaid) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := m.contextManager.GetIdentityFromContext(c.Request.Context())
		if !ok {
			response.Error(c, apperrors.NewErrMissingSession())
			return
		}
		if err := m.checker.RequirePaid(c.Request.Context(), identity.UserID); err != nil {
			response.Error(c, err)
			return
		}
		c.Next()
	}
}
