package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"frameshop/internal/core/application/usecases/commands"
)

// unclaimedSweepSchedule runs the sweep once a day, during the quiet hours.
const unclaimedSweepSchedule = "0 0 3 * * *"

// UnclaimedOrderJob manages the scheduled sweep of stale READY_FOR_PICKUP
// orders into MYSTERY_UNCLAIMED. Runs daily at 03:00.
type UnclaimedOrderJob struct {
	handler commands.SweepUnclaimedOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewUnclaimedOrderJob creates a new job for sweeping unclaimed orders.
// Uses SweepUnclaimedOrdersCommandHandler to process the sweep once a day.
func NewUnclaimedOrderJob(handler commands.SweepUnclaimedOrdersCommandHandler, logger *slog.Logger) *UnclaimedOrderJob {
	return &UnclaimedOrderJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "unclaimed_order_job"),
	}
}

// Start begins the daily unclaimed order sweep.
func (j *UnclaimedOrderJob) Start() error {
	_, err := j.cron.AddFunc(unclaimedSweepSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewSweepUnclaimedOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Unclaimed order sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Unclaimed order sweep started (running daily at 03:00)")
	return nil
}

// Stop stops the unclaimed order sweep.
func (j *UnclaimedOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Unclaimed order sweep stopped")
}
