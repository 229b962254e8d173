package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orphanSweepJob     *OrphanSweepJob
	sessionEvictionJob *SessionEvictionJob
}

func NewJobManager(orphanSweepJob *OrphanSweepJob, sessionEvictionJob *SessionEvictionJob) *JobManager {
	return &JobManager{
		orphanSweepJob:     orphanSweepJob,
		sessionEvictionJob: sessionEvictionJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orphanSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start orphan sweep job: %w", err)
	}

	if err := jm.sessionEvictionJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orphanSweepJob.Stop()
		return fmt.Errorf("failed to start session eviction job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs, waiting for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.sessionEvictionJob.Stop()
	jm.orphanSweepJob.Stop()
}
