package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/dtroode/hard75/internal/apperrors"
	"github.com/dtroode/hard75/internal/clock"
	"github.com/dtroode/hard75/internal/logger"
	"github.com/dtroode/hard75/internal/model"
)

// Sweeper runs the daily reset.
type Sweeper interface {
	Today() string
	DailySweep(ctx context.Context, today string) (model.SweepResult, error)
}

// handleDailySweep runs the sweep named by the task. Bad payloads are not
// retried; storage failures are, and a retry only touches rows still stale.
func handleDailySweep(sweeper Sweeper, logger *logger.Logger) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, task *asynq.Task) error {
		var payload sweepPayload
		if len(task.Payload()) > 0 {
			if err := json.Unmarshal(task.Payload(), &payload); err != nil {
				return fmt.Errorf("invalid sweep payload: %w", asynq.SkipRetry)
			}
		}

		date := payload.Date
		if date == "" {
			date = sweeper.Today()
			if payload.PreviousDay {
				yesterday, err := clock.AddDays(date, -1)
				if err != nil {
					return fmt.Errorf("invalid sweep date %q: %w", date, asynq.SkipRetry)
				}
				date = yesterday
			}
		}

		result, err := sweeper.DailySweep(ctx, date)
		if errors.Is(err, apperrors.ErrInvalidInput) {
			return fmt.Errorf("invalid sweep date %q: %w", date, asynq.SkipRetry)
		}
		if err != nil {
			return fmt.Errorf("daily sweep for %s failed after %d resets: %w", date, result.ResetCount, err)
		}

		logger.Info("Worker: daily sweep completed", "date", date, "reset", result.ResetCount)
		return nil
	}
}
