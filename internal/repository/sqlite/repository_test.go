package sqlite

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/hard75/internal/model"
	"github.com/dtroode/hard75/internal/tasks"
)

func newTestConnection(t *testing.T) *Connection {
	t.Helper()
	conn, err := NewConnection(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func strPtr(s string) *string { return &s }

func TestProfileRepository(t *testing.T) {
	ctx := context.Background()
	pr := NewProfileRepository(newTestConnection(t))
	id := uuid.New()

	_, err := pr.GetByID(ctx, id)
	require.ErrorIs(t, err, model.ErrNotFound)
	require.ErrorIs(t, pr.Update(ctx, id, model.ProfileUpdate{Name: "Alex"}), model.ErrNotFound)

	require.NoError(t, pr.Ensure(ctx, id, "Alex@Example.com"))
	require.NoError(t, pr.Ensure(ctx, id, "other@example.com"))

	got, err := pr.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	require.NotNil(t, got.Email)
	assert.Equal(t, "Alex@Example.com", *got.Email)
	assert.Nil(t, got.Name)
	assert.False(t, got.HasPaid)
	assert.False(t, got.OnboardingComplete)
	assert.False(t, got.CreatedAt.IsZero())

	require.NoError(t, pr.Update(ctx, id, model.ProfileUpdate{Name: "Alex", OnboardingComplete: true}))
	got, err = pr.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.Name)
	assert.Equal(t, "Alex", *got.Name)
	assert.Equal(t, "Alex@Example.com", *got.Email)
	assert.True(t, got.OnboardingComplete)

	matched, err := pr.MarkPaidByEmail(ctx, "alex@EXAMPLE.com")
	require.NoError(t, err)
	assert.True(t, matched)

	got, err = pr.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.HasPaid)

	matched, err = pr.MarkPaidByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestProfileRepository_EnsureWithoutEmail(t *testing.T) {
	ctx := context.Background()
	pr := NewProfileRepository(newTestConnection(t))
	id := uuid.New()

	require.NoError(t, pr.Ensure(ctx, id, ""))

	got, err := pr.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got.Email)
}

func TestDailyLogRepository(t *testing.T) {
	ctx := context.Background()
	lr := NewDailyLogRepository(newTestConnection(t))
	user := uuid.New()
	other := uuid.New()

	_, err := lr.Get(ctx, user, "2025-01-01")
	require.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, lr.Upsert(ctx, model.DailyLog{UserID: user, LogDate: "2025-01-01", CompletedTasks: []string{"read"}}))
	require.NoError(t, lr.Upsert(ctx, model.DailyLog{UserID: user, LogDate: "2025-01-01", CompletedTasks: []string{"read", "water"}, AllComplete: true}))
	require.NoError(t, lr.Upsert(ctx, model.DailyLog{UserID: user, LogDate: "2025-01-03"}))
	require.NoError(t, lr.Upsert(ctx, model.DailyLog{UserID: user, LogDate: "2025-02-01", CompletedTasks: []string{"diet"}}))
	require.NoError(t, lr.Upsert(ctx, model.DailyLog{UserID: other, LogDate: "2025-01-02", CompletedTasks: []string{"diet"}}))

	got, err := lr.Get(ctx, user, "2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, user, got.UserID)
	assert.Equal(t, []string{"read", "water"}, got.CompletedTasks)
	assert.True(t, got.AllComplete)

	logs, err := lr.ListRange(ctx, user, "2025-01-01", "2025-01-31")
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "2025-01-01", logs[0].LogDate)
	assert.Equal(t, "2025-01-03", logs[1].LogDate)
	assert.Empty(t, logs[1].CompletedTasks)
	assert.False(t, logs[1].AllComplete)
}

func TestChallengeRepository(t *testing.T) {
	ctx := context.Background()
	cr := NewChallengeRepository(newTestConnection(t))
	user := uuid.New()

	_, err := cr.GetByUserID(ctx, user)
	require.ErrorIs(t, err, model.ErrNotFound)

	custom := []tasks.Task{
		{ID: "run", Label: "RUN", Description: "5k"},
		{ID: "stretch", Label: "STRETCH"},
	}
	require.NoError(t, cr.Upsert(ctx, model.Challenge{
		UserID: user, DurationDays: 31, StartDate: "2025-01-01", EndDate: "2025-01-31",
		CurrentDay: 1, StreakActive: true, CustomTasks: custom,
	}))

	got, err := cr.GetByUserID(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, user, got.UserID)
	assert.Equal(t, 31, got.DurationDays)
	assert.Equal(t, "2025-01-01", got.StartDate)
	assert.Equal(t, "2025-01-31", got.EndDate)
	assert.Equal(t, 1, got.CurrentDay)
	assert.True(t, got.StreakActive)
	assert.Nil(t, got.LastCompletedDate)
	assert.Equal(t, custom, got.CustomTasks)

	got.CurrentDay = 2
	got.LastCompletedDate = strPtr("2025-01-02")
	require.NoError(t, cr.Upsert(ctx, got))

	got, err = cr.GetByUserID(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CurrentDay)
	require.NotNil(t, got.LastCompletedDate)
	assert.Equal(t, "2025-01-02", *got.LastCompletedDate)

	// a challenge created without custom tasks reads back with none
	plain := uuid.New()
	require.NoError(t, cr.Upsert(ctx, model.Challenge{
		UserID: plain, DurationDays: 75, StartDate: "2025-01-01", EndDate: "2025-03-16",
		CurrentDay: 1, StreakActive: true,
	}))
	got, err = cr.GetByUserID(ctx, plain)
	require.NoError(t, err)
	assert.Empty(t, got.CustomTasks)
	assert.Len(t, got.Tasks(), 6)
}

func TestChallengeRepository_ResetStale(t *testing.T) {
	ctx := context.Background()
	cr := NewChallengeRepository(newTestConnection(t))
	today := "2025-03-03"

	type seed struct {
		challenge model.Challenge
		wantReset bool
	}
	seeds := []seed{
		{model.Challenge{CurrentDay: 10, StreakActive: true, StartDate: "2025-02-20", LastCompletedDate: strPtr("2025-03-01")}, true},
		{model.Challenge{CurrentDay: 3, StreakActive: true, StartDate: "2025-02-27", LastCompletedDate: strPtr("2025-03-02")}, true},
		{model.Challenge{CurrentDay: 1, StreakActive: true, StartDate: "2025-03-01"}, true},
		{model.Challenge{CurrentDay: 12, StreakActive: true, StartDate: "2025-02-20", LastCompletedDate: strPtr(today)}, false},
		{model.Challenge{CurrentDay: 1, StreakActive: true, StartDate: today}, false},
		{model.Challenge{CurrentDay: 0, StreakActive: false, StartDate: "2025-02-01", LastCompletedDate: strPtr("2025-02-10")}, false},
		{model.Challenge{CurrentDay: 0, StreakActive: true, StartDate: "2025-02-01"}, false},
		// swept late: already completed the following day
		{model.Challenge{CurrentDay: 13, StreakActive: true, StartDate: "2025-02-20", LastCompletedDate: strPtr("2025-03-04")}, false},
		{model.Challenge{CurrentDay: 1, StreakActive: true, StartDate: "2025-03-04"}, false},
	}
	for i := range seeds {
		seeds[i].challenge.UserID = uuid.New()
		seeds[i].challenge.DurationDays = 75
		seeds[i].challenge.EndDate = "2025-06-01"
		require.NoError(t, cr.Upsert(ctx, seeds[i].challenge))
	}

	stale, err := cr.ListStale(ctx, today)
	require.NoError(t, err)
	assert.Len(t, stale, 3)
	for _, c := range stale {
		assert.True(t, c.Stale(today))
	}

	n, err := cr.ResetStale(ctx, today, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = cr.ResetStale(ctx, today, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = cr.ResetStale(ctx, today, 2)
	require.NoError(t, err)
	assert.Zero(t, n)

	for _, s := range seeds {
		got, err := cr.GetByUserID(ctx, s.challenge.UserID)
		require.NoError(t, err)
		if s.wantReset {
			assert.Equal(t, 0, got.CurrentDay)
			assert.False(t, got.StreakActive)
			assert.Equal(t, s.challenge.LastCompletedDate, got.LastCompletedDate)
		} else {
			assert.Equal(t, s.challenge.CurrentDay, got.CurrentDay)
			assert.Equal(t, s.challenge.StreakActive, got.StreakActive)
		}
	}
}
