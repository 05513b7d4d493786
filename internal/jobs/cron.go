// Package jobs runs periodic maintenance inside the API process.
package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Sweeper drops expired state and reports how many entries it removed.
type Sweeper interface {
	Sweep() int
}

// CronManager manages scheduled jobs
type CronManager struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(logger *slog.Logger) *CronManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &CronManager{
		cron:   cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger))),
		logger: logger,
	}
}

// AddSweep runs s on spec, e.g. "@every 5m".
func (cm *CronManager) AddSweep(name, spec string, s Sweeper) error {
	_, err := cm.cron.AddFunc(spec, sweepJob(name, s, cm.logger))
	return err
}

// Len returns the number of scheduled jobs.
func (cm *CronManager) Len() int {
	return len(cm.cron.Entries())
}

func (cm *CronManager) Start() {
	cm.cron.Start()
	cm.logger.Info("cron jobs started", "jobs", cm.Len())
}

// Stop halts scheduling and waits for running jobs until ctx is done.
func (cm *CronManager) Stop(ctx context.Context) {
	select {
	case <-cm.cron.Stop().Done():
		cm.logger.Info("cron jobs stopped")
	case <-ctx.Done():
		cm.logger.Warn("cron jobs still running at shutdown")
	}
}

func sweepJob(name string, s Sweeper, logger *slog.Logger) func() {
	return func() {
		if removed := s.Sweep(); removed > 0 {
			logger.Debug("sweep finished", "job", name, "removed", removed)
		}
	}
}
