// Package jobs provides scheduled background tasks for the frame shop.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order workflow.
//
// # Available Jobs
//
// 1. UnclaimedOrderJob - Runs daily at 03:00 to move orders that sat in
// READY_FOR_PICKUP past the configured window into MYSTERY_UNCLAIMED.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sweepHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Sweep failures are logged and retried on the next scheduled run; the sweep
// transaction is atomic, so a failed run never leaves a half-swept batch.
package jobs
