package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"skim/config"
	"skim/di"
	"skim/driver/skim_db"
	"skim/job"
	"skim/rest"
	"skim/utils/logger"

	"github.com/labstack/echo/v4"
)

func main() {
	log := logger.InitLogger()
	log.Info("starting server")

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load configuration", "error", err)
		panic(err)
	}
	logger.SetLevel(cfg.Logging.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := skim_db.InitDBConnection(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic(err)
	}
	defer pool.Close()

	if err := skim_db.EnsureSchema(ctx, pool); err != nil {
		log.Error("failed to ensure schema", "error", err)
		panic(err)
	}

	container := di.NewApplicationComponents(pool, cfg)

	scheduler := job.NewScheduler()
	scheduler.Add(job.NewRefreshJob(container.RefreshFeedsUsecase, cfg.Refresh))
	scheduler.Start(ctx)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout
	rest.RegisterRoutes(e, container, cfg)

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := e.Shutdown(context.Background()); err != nil {
			log.Error("server shutdown failed", "error", err)
		}
		scheduler.Shutdown()
	}()

	if err := e.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		log.Info("server stopped", "reason", err)
	}
}
