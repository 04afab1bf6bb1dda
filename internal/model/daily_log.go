package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DailyLogStore defines persistence operations for daily logs.
type DailyLogStore interface {
	Get(ctx context.Context, userID uuid.UUID, date string) (DailyLog, error)
	// Upsert writes the row keyed by (user id, log date).
	Upsert(ctx context.Context, log DailyLog) error
	// ListRange returns logs with from <= log date <= to, oldest first.
	ListRange(ctx context.Context, userID uuid.UUID, from, to string) ([]DailyLog, error)
}

// DailyLog is the per-day record of checked tasks.
type DailyLog struct {
	UserID         uuid.UUID
	LogDate        string
	CompletedTasks []string
	AllComplete    bool
	UpdatedAt      time.Time
}

// ToggleResult is returned by a task toggle.
type ToggleResult struct {
	CompletedTasks []string
	AllComplete    bool
	// Advanced is true when this toggle moved the challenge forward a day.
	Advanced   bool
	CurrentDay int
}

// SweepResult is returned by the daily sweep.
type SweepResult struct {
	Date       string
	ResetCount int64
}
