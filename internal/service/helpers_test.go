package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/hard75/internal/clock"
	"github.com/dtroode/hard75/internal/repository/sqlite"
	"github.com/dtroode/hard75/internal/testutil"
)

// stepClock is a clock tests can move between days.
type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func (c *stepClock) setDate(t *testing.T, date string) {
	t.Helper()
	d, err := clock.ParseDate(date)
	require.NoError(t, err)
	c.now = d.Add(15 * time.Hour)
}

func newStepClock(t *testing.T, date string) *stepClock {
	c := &stepClock{}
	c.setDate(t, date)
	return c
}

type sqliteStores struct {
	profiles   *sqlite.ProfileRepository
	challenges *sqlite.ChallengeRepository
	logs       *sqlite.DailyLogRepository
}

func newSQLiteStores(t *testing.T) sqliteStores {
	t.Helper()
	conn, err := sqlite.NewConnection(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return sqliteStores{
		profiles:   sqlite.NewProfileRepository(conn),
		challenges: sqlite.NewChallengeRepository(conn),
		logs:       sqlite.NewDailyLogRepository(conn),
	}
}

func newSQLiteStreak(t *testing.T, clk clock.Clock) (*Streak, sqliteStores) {
	t.Helper()
	stores := newSQLiteStores(t)
	return NewStreak(stores.challenges, stores.logs, stores.profiles, clk, 2, testutil.MakeNoopLogger()), stores
}

func toggleAll(t *testing.T, s *Streak, userID uuid.UUID, ids ...string) {
	t.Helper()
	for _, id := range ids {
		_, err := s.ToggleTask(context.Background(), userID, id)
		require.NoError(t, err)
	}
}

func defaultIDs() []string {
	return []string{"workout-1", "workout-2", "diet", "water", "read", "progress-photo"}
}

func strPtr(s string) *string { return &s }
