// Package apperrors defines the typed errors services return and handlers
// translate into HTTP responses.
package apperrors

import (
	"errors"
	"fmt"
)

// Error kinds. Match them with errors.Is.
var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidInput    = errors.New("invalid input")
	ErrProfileNotFound = errors.New("profile not found")
	ErrPaymentRequired = errors.New("payment required")
	ErrNotFound        = errors.New("not found")
	ErrStorage         = errors.New("storage error")
)

// APIError is an error with a kind and a message safe to show to the caller.
type APIError struct {
	Kind    error
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func NewErrUnauthorized() *APIError {
	return &APIError{Kind: ErrUnauthorized, Message: "unauthorized"}
}

func NewErrMissingSession() *APIError {
	return &APIError{Kind: ErrUnauthorized, Message: "not authenticated, please sign in again"}
}

func NewErrForbidden() *APIError {
	return &APIError{Kind: ErrForbidden, Message: "forbidden"}
}

func NewErrInvalidSignature() *APIError {
	return &APIError{Kind: ErrUnauthorized, Message: "invalid signature"}
}

func NewErrInvalidInput(msg string) *APIError {
	return &APIError{Kind: ErrInvalidInput, Message: msg}
}

func NewErrInvalidTaskID(taskID string) *APIError {
	return &APIError{Kind: ErrInvalidInput, Message: fmt.Sprintf("invalid task id %q", taskID)}
}

func NewErrProfileNotFound() *APIError {
	return &APIError{Kind: ErrProfileNotFound, Message: "profile not found, please sign in again"}
}

func NewErrPaymentRequired() *APIError {
	return &APIError{Kind: ErrPaymentRequired, Message: "payment required"}
}

func NewErrNotFound(what string) *APIError {
	return &APIError{Kind: ErrNotFound, Message: what + " not found"}
}

// NewErrStorage wraps a datastore failure. The message stays generic; the
// operation and cause are kept for server-side logs.
func NewErrStorage(op string, err error) *APIError {
	return &APIError{Kind: ErrStorage, Message: "internal server error", Err: fmt.Errorf("%s: %w", op, err)}
}
