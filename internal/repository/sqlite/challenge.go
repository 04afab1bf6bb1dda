package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/hard75/internal/model"
)

var _ model.ChallengeStore = (*ChallengeRepository)(nil)

const challengeColumns = `user_id, duration_days, start_date, end_date, current_day,
		streak_active, last_completed_date, custom_tasks, updated_at`

// staleChallenge must stay in step with model.Challenge.Stale. ?1 is the
// swept date; YYYY-MM-DD text compares in calendar order.
const staleChallenge = `streak_active = 1 AND current_day > 0
		AND (last_completed_date < ?1 OR (last_completed_date IS NULL AND start_date < ?1))`

type ChallengeRepository struct {
	db *Connection
}

func NewChallengeRepository(db *Connection) *ChallengeRepository {
	return &ChallengeRepository{
		db: db,
	}
}

func (r *ChallengeRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (model.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges WHERE user_id = ?`

	challenge, err := scanChallenge(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Challenge{}, model.ErrNotFound
		}
		return model.Challenge{}, fmt.Errorf("failed to get challenge: %w", err)
	}

	return challenge, nil
}

func (r *ChallengeRepository) Upsert(ctx context.Context, challenge model.Challenge) error {
	customTasks := []byte("[]")
	if challenge.CustomTasks != nil {
		var err error
		if customTasks, err = json.Marshal(challenge.CustomTasks); err != nil {
			return fmt.Errorf("failed to encode custom tasks: %w", err)
		}
	}

	query := `INSERT INTO challenges (user_id, duration_days, start_date, end_date, current_day,
			      streak_active, last_completed_date, custom_tasks, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			  ON CONFLICT (user_id) DO UPDATE SET
			      duration_days = excluded.duration_days,
			      start_date = excluded.start_date,
			      end_date = excluded.end_date,
			      current_day = excluded.current_day,
			      streak_active = excluded.streak_active,
			      last_completed_date = excluded.last_completed_date,
			      custom_tasks = excluded.custom_tasks,
			      updated_at = excluded.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		challenge.UserID, challenge.DurationDays, challenge.StartDate, challenge.EndDate, challenge.CurrentDay,
		challenge.StreakActive, challenge.LastCompletedDate, string(customTasks), now(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert challenge: %w", err)
	}
	return nil
}

func (r *ChallengeRepository) ListStale(ctx context.Context, today string) ([]model.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges WHERE ` + staleChallenge + ` ORDER BY user_id`

	rows, err := r.db.QueryContext(ctx, query, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale challenges: %w", err)
	}
	defer rows.Close()

	var challenges []model.Challenge
	for rows.Next() {
		challenge, err := scanChallenge(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan challenge: %w", err)
		}
		challenges = append(challenges, challenge)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list stale challenges: %w", err)
	}

	return challenges, nil
}

func (r *ChallengeRepository) ResetStale(ctx context.Context, today string, limit int) (int64, error) {
	query := `UPDATE challenges SET current_day = 0, streak_active = 0, updated_at = ?3
			  WHERE user_id IN (
			      SELECT user_id FROM challenges WHERE ` + staleChallenge + `
			      ORDER BY user_id LIMIT ?2
			  ) AND ` + staleChallenge

	res, err := r.db.ExecContext(ctx, query, today, limit, now())
	if err != nil {
		return 0, fmt.Errorf("failed to reset stale challenges: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to reset stale challenges: %w", err)
	}
	return affected, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanChallenge(row scanner) (model.Challenge, error) {
	var (
		challenge   model.Challenge
		customTasks string
		updatedAt   string
	)
	err := row.Scan(
		&challenge.UserID, &challenge.DurationDays, &challenge.StartDate, &challenge.EndDate, &challenge.CurrentDay,
		&challenge.StreakActive, &challenge.LastCompletedDate, &customTasks, &updatedAt,
	)
	if err != nil {
		return model.Challenge{}, err
	}
	if customTasks != "" {
		if err := json.Unmarshal([]byte(customTasks), &challenge.CustomTasks); err != nil {
			return model.Challenge{}, fmt.Errorf("failed to decode custom tasks: %w", err)
		}
	}
	if challenge.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.Challenge{}, err
	}
	return challenge, nil
}
