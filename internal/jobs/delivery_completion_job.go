package jobs

import (
	"context"
	"log/slog"

	"shop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryCompletionJob manages the scheduled completion of deliveries.
// Runs every minute to ship out placed orders whose delivery is still ready.
type DeliveryCompletionJob struct {
	handler commands.CompleteDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryCompletionJob creates a new job for completing deliveries.
// Uses CompleteDeliveriesCommandHandler to process ready deliveries every minute.
func NewDeliveryCompletionJob(handler commands.CompleteDeliveriesCommandHandler, logger *slog.Logger) *DeliveryCompletionJob {
	return &DeliveryCompletionJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "delivery_completion_job"),
	}
}

// Start begins the delivery completion job to run every minute.
func (j *DeliveryCompletionJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewCompleteDeliveriesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Delivery completion job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery completion job started (running every minute)")
	return nil
}

// Stop stops the delivery completion job.
func (j *DeliveryCompletionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery completion job stopped")
}
