package jobs

import (
	"context"
	"log/slog"

	"dinein/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// TableReleaseJob manages the scheduled reconciliation sweep over tables.
// Runs every thirty seconds to vacate tables whose orders have all finished.
type TableReleaseJob struct {
	handler commands.ReleaseTablesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTableReleaseJob creates a new job for the table sweep.
// Uses ReleaseTablesCommandHandler to re-evaluate occupied tables periodically.
func NewTableReleaseJob(handler commands.ReleaseTablesCommandHandler, logger *slog.Logger) *TableReleaseJob {
	return &TableReleaseJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "table_release_job"),
	}
}

// Start begins the table release job to run every thirty seconds.
func (j *TableReleaseJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReleaseTablesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Table release job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Table release job started (running every thirty seconds)")
	return nil
}

// Stop stops the table release job.
func (j *TableReleaseJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Table release job stopped")
}
