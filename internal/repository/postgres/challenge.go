package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/hard75/internal/model"
)

var _ model.ChallengeStore = (*ChallengeRepository)(nil)

const challengeColumns = `user_id, duration_days, start_date, end_date, current_day,
		streak_active, last_completed_date, custom_tasks, updated_at`

// staleChallenge must stay in step with model.Challenge.Stale. $1 is the
// swept date; YYYY-MM-DD text compares in calendar order.
const staleChallenge = `streak_active AND current_day > 0
		AND (last_completed_date < $1 OR (last_completed_date IS NULL AND start_date < $1))`

type ChallengeRepository struct {
	db *Connection
}

func NewChallengeRepository(db *Connection) *ChallengeRepository {
	return &ChallengeRepository{
		db: db,
	}
}

func (r *ChallengeRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (model.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges WHERE user_id = $1`

	challenge, err := scanChallenge(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Challenge{}, model.ErrNotFound
		}
		return model.Challenge{}, fmt.Errorf("failed to get challenge: %w", err)
	}

	return challenge, nil
}

func (r *ChallengeRepository) Upsert(ctx context.Context, challenge model.Challenge) error {
	customTasks, err := json.Marshal(challenge.CustomTasks)
	if err != nil {
		return fmt.Errorf("failed to encode custom tasks: %w", err)
	}
	if challenge.CustomTasks == nil {
		customTasks = []byte("[]")
	}

	query := `INSERT INTO challenges (user_id, duration_days, start_date, end_date, current_day,
			      streak_active, last_completed_date, custom_tasks, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
			  ON CONFLICT (user_id) DO UPDATE SET
			      duration_days = EXCLUDED.duration_days,
			      start_date = EXCLUDED.start_date,
			      end_date = EXCLUDED.end_date,
			      current_day = EXCLUDED.current_day,
			      streak_active = EXCLUDED.streak_active,
			      last_completed_date = EXCLUDED.last_completed_date,
			      custom_tasks = EXCLUDED.custom_tasks,
			      updated_at = NOW()`

	_, err = r.db.Exec(ctx, query,
		challenge.UserID, challenge.DurationDays, challenge.StartDate, challenge.EndDate, challenge.CurrentDay,
		challenge.StreakActive, challenge.LastCompletedDate, string(customTasks),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert challenge: %w", err)
	}
	return nil
}

func (r *ChallengeRepository) ListStale(ctx context.Context, today string) ([]model.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges WHERE ` + staleChallenge + ` ORDER BY user_id`

	rows, err := r.db.Query(ctx, query, today)
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

// ResetStale resets one batch. The outer predicate re-checks each row so a
// completion that landed after the batch was selected is not reset.
func (r *ChallengeRepository) ResetStale(ctx context.Context, today string, limit int) (int64, error) {
	query := `UPDATE challenges SET current_day = 0, streak_active = FALSE, updated_at = NOW()
			  WHERE user_id IN (
			      SELECT user_id FROM challenges WHERE ` + staleChallenge + `
			      ORDER BY user_id LIMIT $2 FOR UPDATE SKIP LOCKED
			  ) AND ` + staleChallenge

	cmd, err := r.db.Exec(ctx, query, today, limit)
	if err != nil {
		return 0, fmt.Errorf("failed to reset stale challenges: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func scanChallenge(row pgx.Row) (model.Challenge, error) {
	var (
		challenge   model.Challenge
		customTasks []byte
	)
	err := row.Scan(
		&challenge.UserID, &challenge.DurationDays, &challenge.StartDate, &challenge.EndDate, &challenge.CurrentDay,
		&challenge.StreakActive, &challenge.LastCompletedDate, &customTasks, &challenge.UpdatedAt,
	)
	if err != nil {
		return model.Challenge{}, err
	}
	if len(customTasks) > 0 {
		if err := json.Unmarshal(customTasks, &challenge.CustomTasks); err != nil {
			return model.Challenge{}, fmt.Errorf("failed to decode custom tasks: %w", err)
		}
	}
	return challenge, nil
}
