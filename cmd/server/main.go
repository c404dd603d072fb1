package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/ovalle/ganaderia/internal/config"
	"github.com/ovalle/ganaderia/internal/repository/mongodb"
	"github.com/ovalle/ganaderia/internal/scheduler"
	"github.com/ovalle/ganaderia/internal/server/handlers"
	"github.com/ovalle/ganaderia/internal/server/router"
	dashboardsvc "github.com/ovalle/ganaderia/internal/service/dashboard"
	"github.com/ovalle/ganaderia/pkg/clients/farmapi"
	"github.com/ovalle/ganaderia/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	farmClient := farmapi.NewClient(cfg.FarmAPI)
	dashboardSvc := dashboardsvc.NewService(farmClient, baseLogger.Named("svc.dashboard"))
	dashboardHandler := handlers.NewDashboardHandler(dashboardSvc, mongoRepo, baseLogger.Named("handlers.dashboard"))
	engine := router.New(dashboardHandler, baseLogger.Named("router"))

	// Initialize Scheduler
	sched := scheduler.NewScheduler(cfg.Snapshots, dashboardSvc, mongoRepo, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
