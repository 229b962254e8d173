package jobs

import (
	"context"
	"strconv"
	"time"

	"pickup/internal/core/application/usecases/commands"
	"pickup/internal/pkg/logger"
	"pickup/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

const orphanSweepJobName = "orphan_sweep"

// OrphanSweepJob periodically cancels order headers that never got their lines.
type OrphanSweepJob struct {
	handler  *commands.SweepOrphanedOrdersCommandHandler
	schedule string
	maxAge   time.Duration
	cron     *cron.Cron
	metrics  *metrics.JobMetrics
	log      *logger.Logger
}

// NewOrphanSweepJob creates the sweep job. Headers younger than maxAge are
// left alone so an in-flight submission is never swept.
func NewOrphanSweepJob(
	handler *commands.SweepOrphanedOrdersCommandHandler,
	schedule string,
	maxAge time.Duration,
	jobMetrics *metrics.JobMetrics,
	log *logger.Logger,
) *OrphanSweepJob {
	if log == nil {
		log = logger.Nop()
	}
	return &OrphanSweepJob{
		handler:  handler,
		schedule: schedule,
		maxAge:   maxAge,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		metrics:  jobMetrics,
		log:      log,
	}
}

func (j *OrphanSweepJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { _ = j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.log.Info(context.Background(), "orphan sweep job started ("+j.schedule+")")
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (j *OrphanSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.log.Info(context.Background(), "orphan sweep job stopped")
}

func (j *OrphanSweepJob) run(ctx context.Context) error {
	ctx = j.log.WithField(ctx, "job", orphanSweepJobName)
	started := time.Now()
	defer func() { j.metrics.ObserveDuration(orphanSweepJobName, time.Since(started)) }()

	cmd, err := commands.NewSweepOrphanedOrdersCommand(j.maxAge)
	if err != nil {
		j.metrics.IncFailure(orphanSweepJobName)
		j.log.Error(ctx, "orphan sweep is misconfigured", err)
		return err
	}

	swept, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.metrics.IncFailure(orphanSweepJobName)
		j.log.Error(ctx, "orphan sweep failed", err)
		return err
	}

	j.metrics.IncSuccess(orphanSweepJobName)
	if swept > 0 {
		j.log.Warn(ctx, "cancelled "+strconv.Itoa(swept)+" orphaned orders")
	}
	return nil
}
