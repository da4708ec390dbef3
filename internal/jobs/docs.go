// Package jobs provides scheduled background tasks for the dine-in system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the ordering service.
//
// # Available Jobs
//
// 1. TableReleaseJob - Runs every thirty seconds to vacate tables whose orders have all been completed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(releaseTablesHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep uses the cron expression "*/30 * * * * *" which means it runs
// every thirty seconds. Releases normally happen synchronously when the last
// order at a table completes; the sweep catches any table that was missed.
//
// # Error Handling
//
// - Sweep failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
