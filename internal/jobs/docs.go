// Package jobs provides scheduled background tasks for the lab service.
//
// Jobs are built on github.com/robfig/cron/v3 with seconds-precision
// schedules.
//
// # Available Jobs
//
// OverdueStageJob scans Pending stages of orders in production whose start date plus
// execution time lies before the lab clock's current time and logs a
// warning for each of them. It runs once a minute unless
// OVERDUE_SCAN_SCHEDULE says otherwise.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(overdueStagesHandler, clk, cfg.OverdueScanSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed scan is logged and retried on the next tick. An invalid schedule
// fails StartAll.
package jobs
