package cli

import (
	"fmt"

	"github.com/dtroode/hard75/internal/api/http/handler"
	"github.com/dtroode/hard75/internal/clock"
	"github.com/dtroode/hard75/internal/repository"
	"github.com/dtroode/hard75/internal/service"
	"github.com/dtroode/hard75/internal/worker"
)

type SweepCmd struct {
	Date   string `help:"Date to sweep for (YYYY-MM-DD). Defaults to today."`
	DryRun bool   `help:"List the streaks that would be reset without changing them."`
}

func (c *SweepCmd) Run(ctx *Context) error {
	stores, err := repository.Open(ctx, ctx.Config.Database.DSN)
	if err != nil {
		return err
	}
	defer stores.Close()

	streak := service.NewStreak(stores.Challenges, stores.DailyLogs, stores.Profiles, ctx.Clock, ctx.Config.Sweep.BatchSize, ctx.Logger)

	date := c.Date
	if date == "" {
		date = streak.Today()
	}

	if c.DryRun {
		stale, err := streak.PreviewSweep(ctx, date)
		if err != nil {
			return err
		}
		fmt.Fprintf(ctx.Out, "Sweep for %s would reset %d streaks\n", date, len(stale))
		for _, ch := range stale {
			last := "never"
			if ch.LastCompletedDate != nil {
				last = *ch.LastCompletedDate
			}
			fmt.Fprintf(ctx.Out, "  %s  day %d/%d  last completed %s\n", ch.UserID, ch.CurrentDay, ch.DurationDays, last)
		}
		return nil
	}

	result, err := streak.DailySweep(ctx, date)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "%s: %s\n", result.Date, handler.SweepMessage(result.ResetCount))
	return nil
}

type EnqueueCmd struct {
	Date string `help:"Date to sweep for (YYYY-MM-DD). Defaults to the worker's today."`
}

func (c *EnqueueCmd) Run(ctx *Context) error {
	if c.Date != "" {
		if _, err := clock.ParseDate(c.Date); err != nil {
			return err
		}
	}

	info, err := worker.Enqueue(ctx, ctx.Config.Redis.URL, c.Date)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "Enqueued %s on queue %s (id %s)\n", info.Type, info.Queue, info.ID)
	return nil
}
