// Package jobs provides scheduled background tasks for the shipment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the courier service.
//
// # Available Jobs
//
// 1. OverdueShipmentJob - Runs every minute to flag shipments past their ETA deadline
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(overdueShipmentsHandler, logger)
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
// The overdue watch uses the cron expression "0 * * * * *", firing at the
// top of every minute. ETA deadlines carry minute precision at best, so a
// tighter cadence would only repeat the same findings.
//
// # Error Handling
//
// The overdue watch is read-only and advisory. Query failures are logged
// and the next tick retries; overdue shipments are logged as warnings for
// operations to act on, never mutated by the job itself.
package jobs
