package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/casaflow/casaflow/pkg/access"
	"github.com/casaflow/casaflow/pkg/board"
	"github.com/casaflow/casaflow/pkg/logger"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron   *cron.Cron
	board  *board.Service
	logger logger.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(boardService *board.Service, log logger.Logger) *CronManager {
	if log == nil {
		log = logger.New("info")
	}

	return &CronManager{
		cron:   cron.New(),
		board:  boardService,
		logger: log.With("component", "cron"),
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	// Every 5 minutes: drop stale stage-count caches and rebuild the
	// shared (admin) summary so badge endpoints stay warm.
	_, err := cm.cron.AddFunc("*/5 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if err := cm.board.InvalidateCounts(ctx); err != nil {
			cm.logger.Error("failed to invalidate stage counts", "error", err)
			return
		}

		if _, err := cm.board.StagesWithCounts(ctx, access.Principal{Role: access.RoleAdmin}); err != nil {
			cm.logger.Error("failed to warm stage counts", "error", err)
		}
	})
	if err != nil {
		return err
	}

	// Daily at 6 AM: log a pipeline summary for operators.
	_, err = cm.cron.AddFunc("0 6 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		summary, err := cm.board.StagesWithCounts(ctx, access.Principal{Role: access.RoleAdmin})
		if err != nil {
			cm.logger.Error("failed to build daily pipeline summary", "error", err)
			return
		}

		for _, st := range summary.Stages {
			cm.logger.Info("pipeline stage summary",
				"stage", st.Name,
				"count", st.Count,
				"total_value", st.TotalValue,
			)
		}
	})
	if err != nil {
		return err
	}

	return nil
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.cron.Start()
	cm.logger.Info("cron jobs started")
}

// Stop stops the cron scheduler
func (cm *CronManager) Stop() {
	cm.cron.Stop()
	cm.logger.Info("cron jobs stopped")
}
