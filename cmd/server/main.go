package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	httpctx "github.com/dtroode/hard75/internal/api/http/context"
	"github.com/dtroode/hard75/internal/api/http/handler"
	"github.com/dtroode/hard75/internal/api/http/router"
	httpServer "github.com/dtroode/hard75/internal/api/http/server"
	"github.com/dtroode/hard75/database"
	"github.com/dtroode/hard75/internal/clock"
	"github.com/dtroode/hard75/internal/config"
	"github.com/dtroode/hard75/internal/logger"
	"github.com/dtroode/hard75/internal/model"
	"github.com/dtroode/hard75/internal/repository"
	"github.com/dtroode/hard75/internal/server"
	"github.com/dtroode/hard75/internal/service"
	storage "github.com/dtroode/hard75/internal/storage/minio"
	"github.com/dtroode/hard75/internal/token"
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
	clk := clock.NewSystem(loc)

	stores, err := repository.Open(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer stores.Close()

	if cfg.Cron.Secret == "" {
		logger.Warn("CRON_SECRET is empty, reset-streak will reject every request")
	}
	if cfg.Payment.WebhookSecret == "" {
		logger.Warn("PAYMENT_WEBHOOK_SECRET is empty, payment webhooks will be rejected")
	}

	tokenManager := token.NewJWT(cfg.Session.Secret, cfg.Session.TTL)
	ctxMgr := httpctx.NewManager()

	streakService := service.NewStreak(stores.Challenges, stores.DailyLogs, stores.Profiles, clk, cfg.Sweep.BatchSize, logger)
	profileService := service.NewProfile(stores.Profiles, logger)
	paymentService := service.NewPayment(stores.Profiles, cfg.Payment.WebhookSecret, logger)
	dashboardService := service.NewDashboard(stores.Challenges, stores.DailyLogs, clk, logger)

	var photoService handler.PhotoService
	if cfg.Storage.Enabled {
		storageClient, err := storage.Dial(ctx, cfg.Storage)
		if err != nil {
			logger.Fatal("failed to initialize storage client", "error", err)
		}
		photoService = service.NewPhoto(storageClient, clk, cfg.Photo.MaxBytes, logger)
	}

	r := router.New(
		streakService,
		profileService,
		paymentService,
		dashboardService,
		photoService,
		stores,
		tokenManager,
		ctxMgr,
		router.Options{
			CronSecret:     cfg.Cron.Secret,
			CookieName:     cfg.Session.CookieName,
			RequestTimeout: cfg.HTTP.RequestTimeout,
			PhotoMaxBytes:  cfg.Photo.MaxBytes,
		},
		logger,
	)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))
	sl := server.NewSecurityLayer(cfg.HTTP)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "dialect", stores.Dialect, "timezone", loc.String())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
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
