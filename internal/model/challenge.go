package model

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/hard75/internal/tasks"
)

// ChallengeStore defines persistence operations for challenges.
type ChallengeStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (Challenge, error)
	// Upsert writes the whole row, keyed by user id.
	Upsert(ctx context.Context, challenge Challenge) error
	// ListStale returns challenges matching the sweep predicate for today.
	ListStale(ctx context.Context, today string) ([]Challenge, error)
	// ResetStale resets at most limit stale challenges and returns how many
	// rows changed.
	ResetStale(ctx context.Context, today string, limit int) (int64, error)
}

// Challenge represents a user's N-day commitment and its progress.
type Challenge struct {
	UserID            uuid.UUID
	DurationDays      int
	StartDate         string
	EndDate           string
	CurrentDay        int
	StreakActive      bool
	LastCompletedDate *string
	CustomTasks       []tasks.Task
	UpdatedAt         time.Time
}

// ChallengeState is the per-user position in the streak state machine.
type ChallengeState string

const (
	// StateNotStarted means there is no challenge row.
	StateNotStarted ChallengeState = "not_started"
	// StateActive means the streak is progressing.
	StateActive ChallengeState = "active"
	// StateReset means a sweep broke the streak.
	StateReset ChallengeState = "reset"
	// StateComplete means current day reached the duration. Advisory only.
	StateComplete ChallengeState = "complete"
)

// Tasks returns the catalog the challenge is measured against.
func (c Challenge) Tasks() []tasks.Task {
	return tasks.Resolve(c.CustomTasks)
}

// CompletedOn reports whether the challenge was fully completed on date.
func (c Challenge) CompletedOn(date string) bool {
	return c.LastCompletedDate != nil && *c.LastCompletedDate == date
}

// Stale reports whether the daily sweep for date should reset this
// challenge: it was not completed on date or on any later day. A challenge
// that has never been completed is left alone on the day it started, so the
// onboarding day itself does not have to be completed.
func (c Challenge) Stale(date string) bool {
	if !c.StreakActive || c.CurrentDay <= 0 {
		return false
	}
	if c.LastCompletedDate == nil {
		return c.StartDate < date
	}
	return *c.LastCompletedDate < date
}

// State maps the stored row onto the streak state machine.
func (c Challenge) State() ChallengeState {
	switch {
	case !c.StreakActive && c.CurrentDay == 0:
		return StateReset
	case c.DurationDays > 0 && c.CurrentDay >= c.DurationDays:
		return StateComplete
	default:
		return StateActive
	}
}

// Broken reports whether the streak was reset after some progress, which is
// what the dashboard shows a reset banner for.
func (c Challenge) Broken() bool {
	return c.State() == StateReset && c.LastCompletedDate != nil
}
