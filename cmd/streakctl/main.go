package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/dtroode/hard75/database"
	"github.com/dtroode/hard75/internal/cli"
	"github.com/dtroode/hard75/internal/clock"
	"github.com/dtroode/hard75/internal/config"
	"github.com/dtroode/hard75/internal/logger"
)

var buildVersion = "N/A" // set by ldflags

var CLI struct {
	Version kong.VersionFlag

	Migrate cli.MigrateCmd `cmd:"" help:"Apply pending database migrations."`
	Sweep   cli.SweepCmd   `cmd:"" help:"Reset streaks that missed a day."`
	Enqueue cli.EnqueueCmd `cmd:"" help:"Queue a daily sweep for the worker."`
	Token   cli.TokenCmd   `cmd:"" help:"Print a session token."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("streakctl"),
		kong.Description("Operator tool for the hard75 streak tracker"),
		kong.UsageOnError(),
		kong.Vars{"version": buildVersion},
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	loc, err := clock.LoadLocation(cfg.Timezone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.NewWithWriter(os.Stderr, cfg.LogLevel)
	database.SetLogger(appLogger)

	appCtx := &cli.Context{
		Context: ctx,
		Config:  cfg,
		Clock:   clock.NewSystem(loc),
		Logger:  appLogger,
		Out:     os.Stdout,
	}

	if err := kctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
