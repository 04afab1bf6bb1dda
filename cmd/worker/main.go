package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dtroode/hard75/database"
	"github.com/dtroode/hard75/internal/clock"
	"github.com/dtroode/hard75/internal/config"
	"github.com/dtroode/hard75/internal/logger"
	"github.com/dtroode/hard75/internal/repository"
	"github.com/dtroode/hard75/internal/service"
	"github.com/dtroode/hard75/internal/worker"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFile)
	database.SetLogger(logger)

	loc, err := clock.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Fatal("failed to load timezone", "error", err)
	}

	stores, err := repository.Open(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer stores.Close()

	streakService := service.NewStreak(stores.Challenges, stores.DailyLogs, stores.Profiles, clock.NewSystem(loc), cfg.Sweep.BatchSize, logger)

	stopWorker, err := worker.Start(worker.Config{
		RedisURL:    cfg.Redis.URL,
		Schedule:    cfg.Sweep.Schedule,
		Location:    loc,
		Concurrency: cfg.Worker.Concurrency,
	}, streakService, logger)
	if err != nil {
		logger.Fatal("failed to start worker", "error", err)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	stopWorker()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
