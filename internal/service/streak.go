package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dtroode/hard75/internal/apperrors"
	"github.com/dtroode/hard75/internal/clock"
	"github.com/dtroode/hard75/internal/logger"
	"github.com/dtroode/hard75/internal/model"
	"github.com/dtroode/hard75/internal/tasks"
)

// DefaultSweepBatchSize is used when no positive batch size is configured.
const DefaultSweepBatchSize = 500

// Streak advances and resets challenges.
type Streak struct {
	challengeStore model.ChallengeStore
	dailyLogStore  model.DailyLogStore
	profileStore   model.ProfileStore
	clock          clock.Clock
	validate       *validator.Validate
	batchSize      int
	logger         *logger.Logger
}

func NewStreak(
	challengeStore model.ChallengeStore,
	dailyLogStore model.DailyLogStore,
	profileStore model.ProfileStore,
	clk clock.Clock,
	batchSize int,
	logger *logger.Logger,
) *Streak {
	if batchSize <= 0 {
		batchSize = DefaultSweepBatchSize
	}
	return &Streak{
		challengeStore: challengeStore,
		dailyLogStore:  dailyLogStore,
		profileStore:   profileStore,
		clock:          clk,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
		batchSize:      batchSize,
		logger:         logger,
	}
}

// Today returns the calendar date every decision of this service is made for.
func (s *Streak) Today() string {
	return clock.Today(s.clock)
}

// ToggleTask flips taskID in today's log. The first time today's log becomes
// complete, the challenge advances by one day.
//
// The log write and the challenge write are separate; when the second one
// fails the log keeps the new state and the error is returned.
func (s *Streak) ToggleTask(ctx context.Context, userID uuid.UUID, taskID string) (model.ToggleResult, error) {
	today := s.Today()

	challenge, hasChallenge, err := s.findChallenge(ctx, userID)
	if err != nil {
		return model.ToggleResult{}, err
	}

	catalog := tasks.Default()
	if hasChallenge {
		catalog = challenge.Tasks()
	}
	if !tasks.Contains(catalog, taskID) {
		return model.ToggleResult{}, apperrors.NewErrInvalidTaskID(taskID)
	}

	log, err := s.dailyLogStore.Get(ctx, userID, today)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.ToggleResult{}, s.storageError(userID, "get daily log", err)
	}
	wasComplete := log.AllComplete

	completed := tasks.Toggle(log.CompletedTasks, taskID)
	allComplete := tasks.AllComplete(catalog, completed)

	err = s.dailyLogStore.Upsert(ctx, model.DailyLog{
		UserID:         userID,
		LogDate:        today,
		CompletedTasks: completed,
		AllComplete:    allComplete,
	})
	if err != nil {
		return model.ToggleResult{}, s.storageError(userID, "upsert daily log", err)
	}

	result := model.ToggleResult{
		CompletedTasks: completed,
		AllComplete:    allComplete,
		CurrentDay:     challenge.CurrentDay,
	}

	// A day counts once even when its log is unchecked and completed again.
	if !allComplete || wasComplete || challenge.CompletedOn(today) {
		return result, nil
	}

	if !hasChallenge {
		challenge, err = newChallenge(userID, today)
		if err != nil {
			return model.ToggleResult{}, apperrors.NewErrStorage("derive end date", err)
		}
	}
	challenge.CurrentDay++
	challenge.StreakActive = true
	challenge.LastCompletedDate = &today

	if err := s.challengeStore.Upsert(ctx, challenge); err != nil {
		s.logger.Warn("Streak service: daily log saved but challenge not advanced", "user_id", userID, "date", today)
		return model.ToggleResult{}, s.storageError(userID, "advance challenge", err)
	}

	s.logger.Info("Streak service: day completed", "user_id", userID, "date", today, "current_day", challenge.CurrentDay)

	result.Advanced = true
	result.CurrentDay = challenge.CurrentDay
	return result, nil
}

// DailySweep resets every stale challenge for today in batches. A failed
// batch leaves earlier batches applied; running the sweep again finishes
// the job.
func (s *Streak) DailySweep(ctx context.Context, today string) (model.SweepResult, error) {
	if _, err := clock.ParseDate(today); err != nil {
		return model.SweepResult{}, apperrors.NewErrInvalidInput(err.Error())
	}

	result := model.SweepResult{Date: today}
	for {
		n, err := s.challengeStore.ResetStale(ctx, today, s.batchSize)
		if err != nil {
			s.logger.Error("Streak service: sweep batch failed", "date", today, "reset_so_far", result.ResetCount, "error", err)
			return result, apperrors.NewErrStorage("reset stale challenges", err)
		}
		result.ResetCount += n
		if n < int64(s.batchSize) {
			break
		}
	}

	s.logger.Info("Streak service: daily sweep finished", "date", today, "reset", result.ResetCount)
	return result, nil
}

// PreviewSweep lists the challenges DailySweep would reset for today.
func (s *Streak) PreviewSweep(ctx context.Context, today string) ([]model.Challenge, error) {
	if _, err := clock.ParseDate(today); err != nil {
		return nil, apperrors.NewErrInvalidInput(err.Error())
	}

	challenges, err := s.challengeStore.ListStale(ctx, today)
	if err != nil {
		s.logger.Error("Streak service: failed to list stale challenges", "date", today, "error", err)
		return nil, apperrors.NewErrStorage("list stale challenges", err)
	}
	return challenges, nil
}

// SaveOnboarding completes the profile and (re)starts the challenge at day 1.
func (s *Streak) SaveOnboarding(ctx context.Context, identity model.Identity, params model.OnboardingParams) error {
	params.Name = strings.TrimSpace(params.Name)
	if err := s.validate.Struct(params); err != nil {
		return onboardingInputError(err)
	}

	today := s.Today()
	endDate, err := clock.AddDays(today, params.DurationDays-1)
	if err != nil {
		return apperrors.NewErrInvalidInput(err.Error())
	}

	name := params.Name
	if name == "" {
		name = emailLocalPart(identity.Email)
	}

	err = s.profileStore.Update(ctx, identity.UserID, model.ProfileUpdate{
		Email:              identity.Email,
		Name:               name,
		OnboardingComplete: true,
	})
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Warn("Streak service: onboarding without profile", "user_id", identity.UserID)
		return apperrors.NewErrProfileNotFound()
	}
	if err != nil {
		return s.storageError(identity.UserID, "update profile", err)
	}

	previous, hasPrevious, err := s.findChallenge(ctx, identity.UserID)
	if err != nil {
		return err
	}

	challenge := model.Challenge{
		UserID:       identity.UserID,
		DurationDays: params.DurationDays,
		StartDate:    today,
		EndDate:      endDate,
		CurrentDay:   1,
		StreakActive: true,
		CustomTasks:  params.Tasks,
	}
	// a completion already counted today stays counted
	if hasPrevious && previous.CompletedOn(today) {
		challenge.LastCompletedDate = previous.LastCompletedDate
	}

	if err := s.challengeStore.Upsert(ctx, challenge); err != nil {
		return s.storageError(identity.UserID, "upsert challenge", err)
	}

	s.logger.Info("Streak service: onboarding saved", "user_id", identity.UserID, "duration_days", params.DurationDays, "tasks", len(params.Tasks))
	return nil
}

func (s *Streak) findChallenge(ctx context.Context, userID uuid.UUID) (model.Challenge, bool, error) {
	challenge, err := s.challengeStore.GetByUserID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Challenge{}, false, nil
	}
	if err != nil {
		return model.Challenge{}, false, s.storageError(userID, "get challenge", err)
	}
	return challenge, true, nil
}

func (s *Streak) storageError(userID uuid.UUID, op string, err error) error {
	s.logger.Error("Streak service: storage failure", "user_id", userID, "operation", op, "error", err)
	return apperrors.NewErrStorage(op, err)
}

func newChallenge(userID uuid.UUID, today string) (model.Challenge, error) {
	endDate, err := clock.AddDays(today, tasks.DefaultDurationDays-1)
	if err != nil {
		return model.Challenge{}, err
	}
	return model.Challenge{
		UserID:       userID,
		DurationDays: tasks.DefaultDurationDays,
		StartDate:    today,
		EndDate:      endDate,
	}, nil
}

func emailLocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

func onboardingInputError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.NewErrInvalidInput("invalid onboarding request")
	}

	fe := verrs[0]
	switch fe.StructField() {
	case "DurationDays":
		return apperrors.NewErrInvalidInput("days must be a positive integer")
	case "Tasks":
		if fe.Tag() == "unique" {
			return apperrors.NewErrInvalidInput("task ids must be unique")
		}
		return apperrors.NewErrInvalidInput("tasks must contain between 1 and 6 entries")
	case "ID":
		return apperrors.NewErrInvalidInput("every task needs an id of at most 64 characters")
	case "Label":
		return apperrors.NewErrInvalidInput("every task needs a label of at most 80 characters")
	case "Description":
		return apperrors.NewErrInvalidInput("task descriptions must be at most 280 characters")
	case "Name":
		return apperrors.NewErrInvalidInput("name must be at most 100 characters")
	default:
		return apperrors.NewErrInvalidInput("invalid onboarding request")
	}
}
