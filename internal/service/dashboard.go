package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/hard75/internal/apperrors"
	"github.com/dtroode/hard75/internal/clock"
	"github.com/dtroode/hard75/internal/logger"
	"github.com/dtroode/hard75/internal/model"
	"github.com/dtroode/hard75/internal/motivation"
	"github.com/dtroode/hard75/internal/tasks"
)

const (
	// MaxHistoryDays bounds a history range, both ends included.
	MaxHistoryDays = 120
	// DefaultHistoryDays is used when the range start is omitted.
	DefaultHistoryDays = 30
)

// Dashboard builds the read-only views of a user's progress.
type Dashboard struct {
	challengeStore model.ChallengeStore
	dailyLogStore  model.DailyLogStore
	clock          clock.Clock
	logger         *logger.Logger
}

func NewDashboard(
	challengeStore model.ChallengeStore,
	dailyLogStore model.DailyLogStore,
	clk clock.Clock,
	logger *logger.Logger,
) *Dashboard {
	return &Dashboard{
		challengeStore: challengeStore,
		dailyLogStore:  dailyLogStore,
		clock:          clk,
		logger:         logger,
	}
}

func (s *Dashboard) Get(ctx context.Context, userID uuid.UUID) (model.Dashboard, error) {
	today := clock.Today(s.clock)
	view := model.Dashboard{
		Today:                today,
		SecondsUntilMidnight: clock.SecondsUntilNextMidnight(s.clock),
		State:                model.StateNotStarted,
		Tasks:                tasks.Default(),
		CompletedTasks:       []string{},
	}

	challenge, err := s.challengeStore.GetByUserID(ctx, userID)
	switch {
	case errors.Is(err, model.ErrNotFound):
	case err != nil:
		s.logger.Error("Dashboard service: failed to get challenge", "user_id", userID, "error", err)
		return model.Dashboard{}, apperrors.NewErrStorage("get challenge", err)
	default:
		view.Challenge = &challenge
		view.State = challenge.State()
		view.Tasks = challenge.Tasks()
		view.StreakBroken = challenge.Broken()
		view.Milestone = motivation.MilestoneLabel(challenge.CurrentDay, challenge.DurationDays)
		if msg, ok := motivation.For(challenge.CurrentDay); ok {
			view.Motivation = &msg
		}
	}

	log, err := s.dailyLogStore.Get(ctx, userID, today)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		s.logger.Error("Dashboard service: failed to get daily log", "user_id", userID, "date", today, "error", err)
		return model.Dashboard{}, apperrors.NewErrStorage("get daily log", err)
	}
	if len(log.CompletedTasks) > 0 {
		view.CompletedTasks = log.CompletedTasks
	}
	view.AllComplete = tasks.AllComplete(view.Tasks, view.CompletedTasks)

	return view, nil
}

// History returns the daily logs between from and to, both included. An
// empty to means today and an empty from means DefaultHistoryDays before to.
func (s *Dashboard) History(ctx context.Context, userID uuid.UUID, from, to string) ([]model.DailyLog, error) {
	if to == "" {
		to = clock.Today(s.clock)
	}
	if _, err := clock.ParseDate(to); err != nil {
		return nil, apperrors.NewErrInvalidInput("to must be a YYYY-MM-DD date")
	}
	if from == "" {
		from, _ = clock.AddDays(to, -(DefaultHistoryDays - 1))
	}

	days, err := clock.DaysBetween(from, to)
	if err != nil {
		return nil, apperrors.NewErrInvalidInput("from must be a YYYY-MM-DD date")
	}
	if days < 0 {
		return nil, apperrors.NewErrInvalidInput("from must not be after to")
	}
	if days+1 > MaxHistoryDays {
		return nil, apperrors.NewErrInvalidInput(fmt.Sprintf("range must be at most %d days", MaxHistoryDays))
	}

	logs, err := s.dailyLogStore.ListRange(ctx, userID, from, to)
	if err != nil {
		s.logger.Error("Dashboard service: failed to list daily logs", "user_id", userID, "from", from, "to", to, "error", err)
		return nil, apperrors.NewErrStorage("list daily logs", err)
	}
	return logs, nil
}
