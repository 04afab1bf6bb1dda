package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/hard75/internal/model"
)

var _ model.DailyLogStore = (*DailyLogRepository)(nil)

type DailyLogRepository struct {
	db *Connection
}

func NewDailyLogRepository(db *Connection) *DailyLogRepository {
	return &DailyLogRepository{
		db: db,
	}
}

func (r *DailyLogRepository) Get(ctx context.Context, userID uuid.UUID, date string) (model.DailyLog, error) {
	var log model.DailyLog
	query := `SELECT user_id, log_date, completed_tasks, all_complete, updated_at
			  FROM daily_logs WHERE user_id = $1 AND log_date = $2`

	err := r.db.QueryRow(ctx, query, userID, date).Scan(
		&log.UserID, &log.LogDate, &log.CompletedTasks, &log.AllComplete, &log.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.DailyLog{}, model.ErrNotFound
		}
		return model.DailyLog{}, fmt.Errorf("failed to get daily log: %w", err)
	}

	return log, nil
}

func (r *DailyLogRepository) Upsert(ctx context.Context, log model.DailyLog) error {
	completed := log.CompletedTasks
	if completed == nil {
		completed = []string{}
	}

	query := `INSERT INTO daily_logs (user_id, log_date, completed_tasks, all_complete, updated_at)
			  VALUES ($1, $2, $3, $4, NOW())
			  ON CONFLICT (user_id, log_date) DO UPDATE SET
			      completed_tasks = EXCLUDED.completed_tasks,
			      all_complete = EXCLUDED.all_complete,
			      updated_at = NOW()`

	if _, err := r.db.Exec(ctx, query, log.UserID, log.LogDate, completed, log.AllComplete); err != nil {
		return fmt.Errorf("failed to upsert daily log: %w", err)
	}
	return nil
}

func (r *DailyLogRepository) ListRange(ctx context.Context, userID uuid.UUID, from, to string) ([]model.DailyLog, error) {
	query := `SELECT user_id, log_date, completed_tasks, all_complete, updated_at
			  FROM daily_logs
			  WHERE user_id = $1 AND log_date >= $2 AND log_date <= $3
			  ORDER BY log_date`

	rows, err := r.db.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily logs: %w", err)
	}
	defer rows.Close()

	var logs []model.DailyLog
	for rows.Next() {
		var log model.DailyLog
		if err := rows.Scan(&log.UserID, &log.LogDate, &log.CompletedTasks, &log.AllComplete, &log.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan daily log: %w", err)
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list daily logs: %w", err)
	}

	return logs, nil
}
