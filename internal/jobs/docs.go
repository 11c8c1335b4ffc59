// Package jobs provides scheduled background tasks for the shop.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order workflow.
//
// # Available Jobs
//
// 1. DeliveryCompletionJob - Runs every minute to ship out placed orders whose delivery is still ready
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(completeDeliveriesHandler, logger)
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
// The completion job uses the cron expression "* * * * *" which means it
// runs every minute. Completing a delivery moves its order out of the set
// that can still be cancelled, so the cadence bounds how long a placed
// order stays cancellable.
//
// # Error Handling
//
// - Completion job logs all errors as they indicate system issues
// - An empty ready set is not an error; the job simply commits nothing
// - Failed job starts will stop any already running jobs
package jobs
