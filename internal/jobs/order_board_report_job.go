package jobs

import (
	"context"

	"mercurydash/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// OrderBoardReportJob periodically logs how many orders sit in each
// lifecycle status. The report gives operators a pulse on the order pool
// without touching the write path.
type OrderBoardReportJob struct {
	handler  queries.GetOrderBoardQueryHandler
	cron     *cron.Cron
	schedule string
	logger   *zap.Logger
}

// NewOrderBoardReportJob creates a report job on the given cron schedule.
func NewOrderBoardReportJob(
	handler queries.GetOrderBoardQueryHandler,
	schedule string,
	logger *zap.Logger,
) *OrderBoardReportJob {
	return &OrderBoardReportJob{
		handler:  handler,
		cron:     cron.New(),
		schedule: schedule,
		logger:   logger.With(zap.String("component", "order_board_report_job")),
	}
}

// Start schedules the report and begins running it.
func (j *OrderBoardReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		board, err := j.handler.Handle(ctx, queries.NewGetOrderBoardQuery())
		if err != nil {
			j.logger.Error("order board report failed", zap.Error(err))
			return
		}

		fields := make([]zap.Field, 0, len(board))
		for _, row := range board {
			fields = append(fields, zap.Int64(row.Status, row.Count))
		}
		j.logger.Info("order board", fields...)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("order board report job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop stops the report job.
func (j *OrderBoardReportJob) Stop() {
	j.cron.Stop()
	j.logger.Info("order board report job stopped")
}
