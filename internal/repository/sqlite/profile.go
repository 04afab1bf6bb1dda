package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

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
	var (
		profile              model.Profile
		createdAt, updatedAt string
	)
	query := `SELECT id, email, name, has_paid, onboarding_complete, created_at, updated_at
			  FROM profiles WHERE id = ?`

	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&profile.ID, &profile.Email, &profile.Name, &profile.HasPaid, &profile.OnboardingComplete,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Profile{}, model.ErrNotFound
		}
		return model.Profile{}, fmt.Errorf("failed to get profile by id: %w", err)
	}

	if profile.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.Profile{}, err
	}
	if profile.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.Profile{}, err
	}

	return profile, nil
}

func (r *ProfileRepository) Ensure(ctx context.Context, userID uuid.UUID, email string) error {
	query := `INSERT INTO profiles (id, email, created_at, updated_at) VALUES (?, NULLIF(?, ''), ?, ?)
			  ON CONFLICT (id) DO NOTHING`

	ts := now()
	if _, err := r.db.ExecContext(ctx, query, userID, email, ts, ts); err != nil {
		return fmt.Errorf("failed to ensure profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) Update(ctx context.Context, userID uuid.UUID, update model.ProfileUpdate) error {
	query := `UPDATE profiles
			  SET email = COALESCE(NULLIF(?, ''), email), name = NULLIF(?, ''),
			      onboarding_complete = ?, updated_at = ?
			  WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, update.Email, update.Name, update.OnboardingComplete, now(), userID)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if affected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *ProfileRepository) MarkPaidByEmail(ctx context.Context, email string) (bool, error) {
	query := `UPDATE profiles SET has_paid = 1, updated_at = ? WHERE LOWER(email) = LOWER(?)`

	res, err := r.db.ExecContext(ctx, query, now(), email)
	if err != nil {
		return false, fmt.Errorf("failed to mark profile paid: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to mark profile paid: %w", err)
	}
	return affected > 0, nil
}
