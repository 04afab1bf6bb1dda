package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"github.com/dtroode/hard75/internal/logger"
)

// Config holds the queue and schedule settings.
type Config struct {
	RedisURL    string
	Schedule    string
	Location    *time.Location
	Concurrency int
}

// Start runs the task server and the sweep scheduler without blocking and
// returns a function that stops both.
func Start(cfg Config, sweeper Sweeper, logger *logger.Logger) (stop func(), err error) {
	redisOpt, err := asynq.ParseRedisURI(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	srv := newServer(redisOpt, cfg.Concurrency, logger)
	if err := srv.Start(NewServeMux(sweeper, logger)); err != nil {
		return nil, fmt.Errorf("failed to start worker: %w", err)
	}

	stopScheduler, err := StartScheduler(redisOpt, cfg.Schedule, cfg.Location, logger)
	if err != nil {
		srv.Shutdown()
		return nil, err
	}

	logger.Info("Worker started", "concurrency", cfg.Concurrency, "schedule", cfg.Schedule)
	return func() {
		stopScheduler()
		srv.Shutdown()
	}, nil
}

// NewServeMux routes task types to handlers.
func NewServeMux(sweeper Sweeper, logger *logger.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskDailySweep, handleDailySweep(sweeper, logger))
	return mux
}

func newServer(redisOpt asynq.RedisConnOpt, concurrency int, logger *logger.Logger) *asynq.Server {
	if concurrency <= 0 {
		concurrency = 1
	}
	return asynq.NewServer(redisOpt, asynq.Config{
		Concurrency:     concurrency,
		ShutdownTimeout: 30 * time.Second,
		Logger:          &asynqLogger{logger: logger},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			retried, _ := asynq.GetRetryCount(ctx)
			maxRetry, _ := asynq.GetMaxRetry(ctx)
			logger.Error("Worker: task failed", "type", task.Type(), "retry", retried, "max_retry", maxRetry, "error", err)
		}),
	})
}

// Enqueue submits a sweep for date, or for the worker's today when date is
// empty.
func Enqueue(ctx context.Context, redisURL, date string) (*asynq.TaskInfo, error) {
	redisOpt, err := asynq.ParseRedisURI(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	client := asynq.NewClient(redisOpt)
	defer client.Close()

	task, err := NewDailySweepTask(date)
	if err != nil {
		return nil, err
	}
	info, err := client.EnqueueContext(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue sweep: %w", err)
	}
	return info, nil
}
