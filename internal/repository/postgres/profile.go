package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/hard75/internal/model"
)

var _ model.ProfileStore = (*ProfileRepository)(nil)

type ProfileRepository struct {
	db *Connection
}

func NewProfileRepository(db *Connection) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

func (r *ProfileRepository) GetByID(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	var profile model.Profile
	query := `SELECT id, email, name, has_paid, onboarding_complete, created_at, updated_at
			  FROM profiles WHERE id = $1`

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID, &profile.Email, &profile.Name, &profile.HasPaid, &profile.OnboardingComplete,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, model.ErrNotFound
		}
		return model.Profile{}, fmt.Errorf("failed to get profile by id: %w", err)
	}

	return profile, nil
}

func (r *ProfileRepository) Ensure(ctx context.Context, userID uuid.UUID, email string) error {
	query := `INSERT INTO profiles (id, email) VALUES ($1, NULLIF($2, ''))
			  ON CONFLICT (id) DO NOTHING`

	if _, err := r.db.Exec(ctx, query, userID, email); err != nil {
		return fmt.Errorf("failed to ensure profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) Update(ctx context.Context, userID uuid.UUID, update model.ProfileUpdate) error {
	query := `UPDATE profiles
			  SET email = COALESCE(NULLIF($2, ''), email), name = NULLIF($3, ''),
			      onboarding_complete = $4, updated_at = NOW()
			  WHERE id = $1`

	cmd, err := r.db.Exec(ctx, query, userID, update.Email, update.Name, update.OnboardingComplete)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *ProfileRepository) MarkPaidByEmail(ctx context.Context, email string) (bool, error) {
	query := `UPDATE profiles SET has_paid = TRUE, updated_at = NOW()
			  WHERE LOWER(email) = LOWER($1)`

	cmd, err := r.db.Exec(ctx, query, email)
	if err != nil {
		return false, fmt.Errorf("failed to mark profile paid: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
