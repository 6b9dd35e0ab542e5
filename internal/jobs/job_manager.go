package jobs

import (
	"fmt"
	"log/slog"

	"dentallab/internal/pkg/clock"
)

// JobManager coordinates the scheduled jobs of the lab service.
type JobManager struct {
	overdueStageJob *OverdueStageJob
}

// NewJobManager creates a job manager. overdueSchedule may be empty to use
// DefaultOverdueSchedule.
func NewJobManager(
	overdueStages OverdueStagesFinder,
	clk clock.Clock,
	overdueSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueStageJob: NewOverdueStageJob(overdueStages, clk, overdueSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueStageJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue stage job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueStageJob.Stop()
}
