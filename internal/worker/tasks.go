package worker

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

// TaskDailySweep resets stale streaks.
const TaskDailySweep = "streak:daily-sweep"

// sweepPayload names the date to sweep. With no date, the task sweeps the
// worker's today, or the day before it when PreviousDay is set.
type sweepPayload struct {
	Date        string `json:"date,omitempty"`
	PreviousDay bool   `json:"previous_day,omitempty"`
}

// NewDailySweepTask builds a sweep task. Only one sweep task for the same
// payload can be queued per day.
func NewDailySweepTask(date string) (*asynq.Task, error) {
	return newSweepTask(sweepPayload{Date: date})
}

// NewScheduledSweepTask builds the task the scheduler enqueues after
// midnight. It sweeps the day that just ended, so a retry or a late run
// still sweeps the same day.
func NewScheduledSweepTask() (*asynq.Task, error) {
	return newSweepTask(sweepPayload{PreviousDay: true})
}

func newSweepTask(p sweepPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sweep payload: %w", err)
	}
	return asynq.NewTask(
		TaskDailySweep,
		payload,
		asynq.MaxRetry(3),
		asynq.Timeout(10*time.Minute),
		asynq.Retention(24*time.Hour),
		asynq.Unique(23*time.Hour),
	), nil
}
