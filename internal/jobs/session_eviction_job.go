package jobs

import (
	"context"
	"strconv"
	"time"

	"pickup/internal/pkg/logger"
	"pickup/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

const sessionEvictionJobName = "session_eviction"

// IdleSessionEvicter is implemented by the HTTP session store.
type IdleSessionEvicter interface {
	EvictIdle(maxIdle time.Duration) int
}

// SessionEvictionJob drops sessions, and with them their carts, after a
// period of inactivity.
type SessionEvictionJob struct {
	sessions IdleSessionEvicter
	schedule string
	maxIdle  time.Duration
	cron     *cron.Cron
	metrics  *metrics.JobMetrics
	log      *logger.Logger
}

func NewSessionEvictionJob(
	sessions IdleSessionEvicter,
	schedule string,
	maxIdle time.Duration,
	jobMetrics *metrics.JobMetrics,
	log *logger.Logger,
) *SessionEvictionJob {
	if log == nil {
		log = logger.Nop()
	}
	return &SessionEvictionJob{
		sessions: sessions,
		schedule: schedule,
		maxIdle:  maxIdle,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		metrics:  jobMetrics,
		log:      log,
	}
}

func (j *SessionEvictionJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.log.Info(context.Background(), "session eviction job started ("+j.schedule+")")
	return nil
}

func (j *SessionEvictionJob) Stop() {
	<-j.cron.Stop().Done()
	j.log.Info(context.Background(), "session eviction job stopped")
}

func (j *SessionEvictionJob) run(ctx context.Context) int {
	started := time.Now()
	evicted := j.sessions.EvictIdle(j.maxIdle)
	j.metrics.ObserveDuration(sessionEvictionJobName, time.Since(started))
	j.metrics.IncSuccess(sessionEvictionJobName)

	if evicted > 0 {
		j.log.Debug(j.log.WithField(ctx, "job", sessionEvictionJobName),
			"evicted "+strconv.Itoa(evicted)+" idle sessions")
	}
	return evicted
}
