// Package jobs provides scheduled background tasks for the pickup service.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and each owns its own
// scheduler, so a slow run of one job never delays another.
//
// # Available Jobs
//
// 1. OrphanSweepJob - cancels pending orders whose header was written but
// whose line items never were (a partial submission left behind)
// 2. SessionEvictionJob - drops carts of browser sessions idle for too long
//
// # Usage
//
//	jobManager := jobs.NewJobManager(sweepJob, evictionJob)
//	if err := jobManager.StartAll(); err != nil {
//		return fmt.Errorf("starting jobs: %w", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the standard five-field cron syntax and come from
// configuration. A run that is still in progress when the next tick fires
// is skipped rather than stacked.
package jobs
