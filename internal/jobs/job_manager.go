// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3. Jobs are composed through JobManager, which
// starts and stops them as a unit during application lifecycle.
package jobs

import (
	"fmt"

	"mercurydash/internal/core/application/usecases/queries"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orderBoardReportJob *OrderBoardReportJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	orderBoardHandler queries.GetOrderBoardQueryHandler,
	reportSchedule string,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		orderBoardReportJob: NewOrderBoardReportJob(orderBoardHandler, reportSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.orderBoardReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start order board report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderBoardReportJob.Stop()
}
