package worker

import (
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"github.com/dtroode/hard75/internal/logger"
)

// StartScheduler registers the daily sweep on schedule, evaluated in loc,
// and starts the scheduler. It returns a stop function. Each run sweeps the
// day before the one it fires on, so schedule should fire shortly after
// midnight.
func StartScheduler(redisOpt asynq.RedisConnOpt, schedule string, loc *time.Location, logger *logger.Logger) (stop func(), err error) {
	if loc == nil {
		loc = time.Local
	}

	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
		Location: loc,
		LogLevel: asynq.InfoLevel,
		Logger:   &asynqLogger{logger: logger},
	})

	task, err := NewScheduledSweepTask()
	if err != nil {
		return nil, err
	}

	entryID, err := scheduler.Register(schedule, task)
	if err != nil {
		return nil, fmt.Errorf("failed to register sweep schedule %q: %w", schedule, err)
	}

	if err := scheduler.Start(); err != nil {
		return nil, fmt.Errorf("failed to start scheduler: %w", err)
	}

	logger.Info("Scheduler started", "schedule", schedule, "timezone", loc.String(), "entry_id", entryID)
	return scheduler.Shutdown, nil
}
