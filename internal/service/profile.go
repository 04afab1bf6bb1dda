package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dtroode/hard75/internal/apperrors"
	"github.com/dtroode/hard75/internal/logger"
	"github.com/dtroode/hard75/internal/model"
)

// Profile manages account profiles created from provider identities.
type Profile struct {
	profileStore model.ProfileStore
	logger       *logger.Logger
}

func NewProfile(profileStore model.ProfileStore, logger *logger.Logger) *Profile {
	return &Profile{
		profileStore: profileStore,
		logger:       logger,
	}
}

// EnsureProfile creates the profile for identity on first sign-in and
// returns the stored row.
func (s *Profile) EnsureProfile(ctx context.Context, identity model.Identity) (model.Profile, error) {
	if err := s.profileStore.Ensure(ctx, identity.UserID, identity.Email); err != nil {
		s.logger.Error("Profile service: failed to ensure profile", "user_id", identity.UserID, "error", err)
		return model.Profile{}, apperrors.NewErrStorage("ensure profile", err)
	}
	return s.GetProfile(ctx, identity.UserID)
}

func (s *Profile) GetProfile(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	profile, err := s.profileStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Profile{}, apperrors.NewErrProfileNotFound()
	}
	if err != nil {
		s.logger.Error("Profile service: failed to get profile", "user_id", userID, "error", err)
		return model.Profile{}, apperrors.NewErrStorage("get profile", err)
	}
	return profile, nil
}

// RequirePaid returns a PaymentRequired error unless the profile has paid.
func (s *Profile) RequirePaid(ctx context.Context, userID uuid.UUID) error {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if !profile.HasPaid {
		return apperrors.NewErrPaymentRequired()
	}
	return nil
}
