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

var _ model.DailyLogStore = (*DailyLogRepository)(nil)

const dailyLogColumns = `user_id, log_date, completed_tasks, all_complete, updated_at`

type DailyLogRepository struct {
	db *Connection
}

func NewDailyLogRepository(db *Connection) *DailyLogRepository {
	return &DailyLogRepository{
		db: db,
	}
}

func (r *DailyLogRepository) Get(ctx context.Context, userID uuid.UUID, date string) (model.DailyLog, error) {
	query := `SELECT ` + dailyLogColumns + ` FROM daily_logs WHERE user_id = ? AND log_date = ?`

	log, err := scanDailyLog(r.db.QueryRowContext(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
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
	encoded, err := json.Marshal(completed)
	if err != nil {
		return fmt.Errorf("failed to encode completed tasks: %w", err)
	}

	query := `INSERT INTO daily_logs (user_id, log_date, completed_tasks, all_complete, updated_at)
			  VALUES (?, ?, ?, ?, ?)
			  ON CONFLICT (user_id, log_date) DO UPDATE SET
			      completed_tasks = excluded.completed_tasks,
			      all_complete = excluded.all_complete,
			      updated_at = excluded.updated_at`

	if _, err := r.db.ExecContext(ctx, query, log.UserID, log.LogDate, string(encoded), log.AllComplete, now()); err != nil {
		return fmt.Errorf("failed to upsert daily log: %w", err)
	}
	return nil
}

func (r *DailyLogRepository) ListRange(ctx context.Context, userID uuid.UUID, from, to string) ([]model.DailyLog, error) {
	query := `SELECT ` + dailyLogColumns + ` FROM daily_logs
			  WHERE user_id = ? AND log_date >= ? AND log_date <= ?
			  ORDER BY log_date`

	rows, err := r.db.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily logs: %w", err)
	}
	defer rows.Close()

	var logs []model.DailyLog
	for rows.Next() {
		log, err := scanDailyLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily log: %w", err)
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list daily logs: %w", err)
	}

	return logs, nil
}

func scanDailyLog(row scanner) (model.DailyLog, error) {
	var (
		log       model.DailyLog
		completed string
		updatedAt string
	)
	if err := row.Scan(&log.UserID, &log.LogDate, &completed, &log.AllComplete, &updatedAt); err != nil {
		return model.DailyLog{}, err
	}
	if err := json.Unmarshal([]byte(completed), &log.CompletedTasks); err != nil {
		return model.DailyLog{}, fmt.Errorf("failed to decode completed tasks: %w", err)
	}
	var err error
	if log.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.DailyLog{}, err
	}
	return log, nil
}
