package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProfileStore defines persistence operations for account profiles.
type ProfileStore interface {
	GetByID(ctx context.Context, userID uuid.UUID) (Profile, error)
	// Ensure creates the profile row if it does not exist yet and leaves an
	// existing row untouched.
	Ensure(ctx context.Context, userID uuid.UUID, email string) error
	// Update returns ErrNotFound when there is no row for userID.
	Update(ctx context.Context, userID uuid.UUID, update ProfileUpdate) error
	// MarkPaidByEmail reports whether a profile matched email case-insensitively.
	MarkPaidByEmail(ctx context.Context, email string) (bool, error)
}

// Profile represents a stored account profile.
type Profile struct {
	ID                 uuid.UUID
	Email              *string
	Name               *string
	HasPaid            bool
	OnboardingComplete bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ProfileUpdate contains the fields written by onboarding.
type ProfileUpdate struct {
	Email              string
	Name               string
	OnboardingComplete bool
}
