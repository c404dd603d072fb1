package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/ovalle/ganaderia/internal/config"
	"github.com/ovalle/ganaderia/internal/repository/mongodb"
	"github.com/ovalle/ganaderia/internal/service/dashboard"
)

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron         *cron.Cron
	dashboardSvc *dashboard.Service
	repo         mongodb.Repository
	cfg          config.SnapshotConfig
	location     *time.Location
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance. The cron schedule runs
// in the configured timezone; an unknown timezone falls back to UTC.
func NewScheduler(cfg config.SnapshotConfig, dashboardSvc *dashboard.Service, repo mongodb.Repository, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("unknown timezone, falling back to UTC", zap.String("timezone", cfg.Timezone), zap.Error(err))
		location = time.UTC
	}

	return &Scheduler{
		cron:         cron.New(cron.WithLocation(location)),
		dashboardSvc: dashboardSvc,
		repo:         repo,
		cfg:          cfg,
		location:     location,
		logger:       logger,
	}
}

// Start starts the scheduler.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	_, err := s.cron.AddFunc(s.cfg.CronSchedule, s.storeDailySnapshot)
	if err != nil {
		s.logger.Error("failed to schedule daily snapshot", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) storeDailySnapshot() {
	s.logger.Info("computing daily stats snapshot")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	snapshot, stored := s.dashboardSvc.Refresh(ctx, time.Now().In(s.location))
	if !stored {
		s.logger.Warn("snapshot superseded by a newer refresh, not persisting")
		return
	}

	if err := s.repo.SaveSnapshot(ctx, snapshot); err != nil {
		s.logger.Error("failed to persist stats snapshot", zap.Error(err))
	} else {
		s.logger.Info("stats snapshot persisted", zap.String("fecha", snapshot.Fecha))
	}
}
