// Package jobs provides scheduled background tasks for the storage system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for warehouse operations.
//
// # Available Jobs
//
// 1. OccupancyReportJob - Runs every minute to log the system-wide occupancy counters
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getSummaryHandler, logger)
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
// The report job uses the cron expression "0 * * * * *", firing at the top
// of every minute. Occupancy moves at human speed, so a minute of lag in the
// logs is acceptable.
//
// # Error Handling
//
// - Report job logs query failures and skips the tick
// - Failed job starts will stop any already running jobs
package jobs
