// Package repository opens the datastore selected by the DSN.
package repository

import (
	"context"
	"fmt"

	"github.com/dtroode/hard75/database"
	"github.com/dtroode/hard75/internal/model"
	"github.com/dtroode/hard75/internal/repository/postgres"
	"github.com/dtroode/hard75/internal/repository/sqlite"
)

// Stores bundles the repositories of one datastore.
type Stores struct {
	Dialect    database.Dialect
	Profiles   model.ProfileStore
	Challenges model.ChallengeStore
	DailyLogs  model.DailyLogStore

	ping  func(ctx context.Context) error
	close func() error
}

// Open connects to PostgreSQL or SQLite depending on the DSN scheme and
// applies pending migrations.
func Open(ctx context.Context, dsn string) (*Stores, error) {
	dialect, err := database.DialectFromDSN(dsn)
	if err != nil {
		return nil, err
	}

	switch dialect {
	case database.Postgres:
		conn, err := postgres.NewConnection(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return &Stores{
			Dialect:    dialect,
			Profiles:   postgres.NewProfileRepository(conn),
			Challenges: postgres.NewChallengeRepository(conn),
			DailyLogs:  postgres.NewDailyLogRepository(conn),
			ping:       conn.Ping,
			close:      conn.Close,
		}, nil
	case database.SQLite:
		conn, err := sqlite.NewConnection(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return &Stores{
			Dialect:    dialect,
			Profiles:   sqlite.NewProfileRepository(conn),
			Challenges: sqlite.NewChallengeRepository(conn),
			DailyLogs:  sqlite.NewDailyLogRepository(conn),
			ping:       conn.Ping,
			close:      conn.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
}

func (s *Stores) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

func (s *Stores) Close() error {
	return s.close()
}
