// Package response writes JSON error bodies and maps service errors to
// HTTP status codes.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/hard75/internal/apperrors"
)

// ErrorBody is the JSON body of every error response.
type ErrorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

// StatusFor returns the HTTP status for err and the message safe to send.
func StatusFor(err error) (int, string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, apperrors.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrProfileNotFound), errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrPaymentRequired):
		status = http.StatusPaymentRequired
	}

	var apiErr *apperrors.APIError
	if status != http.StatusInternalServerError && errors.As(err, &apiErr) {
		return status, apiErr.Message
	}
	if status == http.StatusInternalServerError {
		return status, "internal server error"
	}
	return status, http.StatusText(status)
}

// Error aborts the request with the status and message for err. The
// original error is attached to the gin context for the access log.
func Error(c *gin.Context, err error) {
	status, msg := StatusFor(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, ErrorBody{Error: msg, RequestID: c.GetString(RequestIDKey)})
}

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"
