package service

import (
	"context"
	"crypto/subtle"

	"github.com/dtroode/hard75/internal/apperrors"
	"github.com/dtroode/hard75/internal/logger"
	"github.com/dtroode/hard75/internal/model"
)

// Payment applies payment provider webhooks to profiles.
type Payment struct {
	profileStore model.ProfileStore
	secret       string
	logger       *logger.Logger
}

func NewPayment(profileStore model.ProfileStore, secret string, logger *logger.Logger) *Payment {
	return &Payment{
		profileStore: profileStore,
		secret:       secret,
		logger:       logger,
	}
}

// VerifySignature checks the shared webhook secret. With no secret
// configured every signature is rejected.
func (s *Payment) VerifySignature(signature string) error {
	if s.secret == "" || subtle.ConstantTimeCompare([]byte(signature), []byte(s.secret)) != 1 {
		return apperrors.NewErrInvalidSignature()
	}
	return nil
}

// ProcessEvent marks the payer's profile as paid for unlocking events.
func (s *Payment) ProcessEvent(ctx context.Context, event model.PaymentEvent) (model.PaymentOutcome, error) {
	if !event.Unlocks() {
		s.logger.Debug("Payment service: ignoring event", "type", event.Type)
		return model.PaymentIgnored, nil
	}

	email := event.PayerEmail()
	if email == "" {
		return model.PaymentIgnored, apperrors.NewErrInvalidInput("no email in payment event")
	}

	matched, err := s.profileStore.MarkPaidByEmail(ctx, email)
	if err != nil {
		s.logger.Error("Payment service: failed to mark profile paid", "type", event.Type, "error", err)
		return model.PaymentIgnored, apperrors.NewErrStorage("mark profile paid", err)
	}
	if !matched {
		s.logger.Warn("Payment service: payment for unknown email", "type", event.Type)
		return model.PaymentUnmatched, nil
	}

	s.logger.Info("Payment service: profile unlocked", "type", event.Type)
	return model.PaymentApplied, nil
}
