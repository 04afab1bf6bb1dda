package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/hard75/internal/api/http/response"
	"github.com/dtroode/hard75/internal/apperrors"
	"github.com/dtroode/hard75/internal/logger"
	"github.com/dtroode/hard75/internal/model"
)

// SignatureHeader carries the payment provider's shared secret.
const SignatureHeader = "webhook-signature"

// Payment handles payment provider webhooks.
type Payment struct {
	paymentService PaymentService
	logger         *logger.Logger
}

func NewPayment(paymentService PaymentService, logger *logger.Logger) *Payment {
	return &Payment{paymentService: paymentService, logger: logger}
}

// Webhook applies a payment event. Unmatched payers are acknowledged so the
// provider does not retry.
func (h *Payment) Webhook(c *gin.Context) {
	if err := h.paymentService.VerifySignature(c.GetHeader(SignatureHeader)); err != nil {
		response.Error(c, err)
		return
	}

	var event model.PaymentEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		response.Error(c, apperrors.NewErrInvalidInput("invalid payment event"))
		return
	}

	outcome, err := h.paymentService.ProcessEvent(c.Request.Context(), event)
	if err != nil {
		response.Error(c, err)
		return
	}

	switch outcome {
	case model.PaymentApplied:
		c.JSON(http.StatusOK, gin.H{"success": true})
	case model.PaymentUnmatched:
		c.JSON(http.StatusOK, gin.H{"received": true, "note": "user not yet registered"})
	default:
		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}
