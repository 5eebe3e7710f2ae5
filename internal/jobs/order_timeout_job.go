package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderTimeoutJob cancels pending orders that were never picked up.
// Runs every minute and sweeps orders whose age exceeds the configured
// maximum pending age.
type OrderTimeoutJob struct {
	handler commands.CancelStaleOrdersCommandHandler
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderTimeoutJob creates the job that sweeps stale pending orders.
// maxAge is how long an order may stay pending before it is cancelled.
func NewOrderTimeoutJob(
	handler commands.CancelStaleOrdersCommandHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *OrderTimeoutJob {
	return &OrderTimeoutJob{
		handler: handler,
		maxAge:  maxAge,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_timeout_job"),
	}
}

// Start begins the sweep, running at the top of every minute.
func (j *OrderTimeoutJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewCancelStaleOrdersCommand(time.Now().Add(-j.maxAge))
		if err != nil {
			j.logger.ErrorContext(ctx, "Order timeout job failed to build command", "error", err)
			return
		}

		cancelled, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order timeout job failed", "error", err)
			return
		}

		if cancelled > 0 {
			j.logger.InfoContext(ctx, "Cancelled stale pending orders", "count", cancelled)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order timeout job started (running every minute)",
		"max_pending_age", j.maxAge)
	return nil
}

// Stop stops the order timeout job.
func (j *OrderTimeoutJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order timeout job stopped")
}
