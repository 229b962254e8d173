package cmd

import (
	"fmt"
	"time"

	apihttp "pickup/internal/adapters/in/http"
	"pickup/internal/adapters/out/identity"
	"pickup/internal/adapters/out/postgres/orderstore"
	"pickup/internal/core/application/usecases/commands"
	"pickup/internal/core/application/usecases/queries"
	"pickup/internal/core/domain/services"
	"pickup/internal/core/ports"
	"pickup/internal/jobs"
	"pickup/internal/pkg/logger"
	"pickup/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config   Config
	store    ports.OrderStore
	identity ports.IdentityProvider
	slots    services.TimeSlotGenerator
	clock    func() time.Time
	log      *logger.Logger

	registry          *prometheus.Registry
	submissionMetrics *metrics.SubmissionMetrics
	jobMetrics        *metrics.JobMetrics

	sessions *apihttp.SessionStore
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, log *logger.Logger) (*CompositionRoot, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	start, end, err := cfg.PickupWindow()
	if err != nil {
		return nil, err
	}
	slots, err := services.NewTimeSlotGenerator(
		start, end,
		int(cfg.PickupGranularity/time.Minute),
		int(cfg.PickupBuffer/time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("pickup window: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	c := &CompositionRoot{
		config:            cfg,
		store:             orderstore.NewGormOrderStore(gormDB),
		identity:          identity.NewContextProvider(),
		slots:             slots,
		clock:             func() time.Time { return time.Now().In(loc) },
		log:               log,
		registry:          registry,
		submissionMetrics: metrics.NewSubmissionMetrics(registry),
		jobMetrics:        metrics.NewJobMetrics(registry),
	}
	c.sessions = apihttp.NewSessionStore(c.CreateSubmitOrderCommandHandler)
	return c, nil
}

// CreateSubmitOrderCommandHandler returns a handler with its own in-flight
// guard; the session store asks for one per browser session.
func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.store, c.identity, c.slots, c.clock, c.submissionMetrics, c.log)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.store, c.identity, c.log)
}

func (c *CompositionRoot) CreateSweepOrphanedOrdersCommandHandler() commands.SweepOrphanedOrdersCommandHandler {
	return commands.NewSweepOrphanedOrdersCommandHandler(c.store, c.clock, c.log)
}

func (c *CompositionRoot) CreateListUserOrdersQueryHandler() queries.ListUserOrdersQueryHandler {
	return queries.NewListUserOrdersQueryHandler(c.store, c.identity)
}

func (c *CompositionRoot) CreateGetPickupSlotsQueryHandler() queries.GetPickupSlotsQueryHandler {
	return queries.NewGetPickupSlotsQueryHandler(c.slots, c.clock)
}

func (c *CompositionRoot) CreateServer() *apihttp.Server {
	return apihttp.NewServer(
		c.sessions,
		apihttp.NewAuthenticator(c.config.JWTSecret, c.config.JWTIssuer, c.log),
		c.CreateCancelOrderCommandHandler(),
		c.CreateListUserOrdersQueryHandler(),
		c.CreateGetPickupSlotsQueryHandler(),
		c.log,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	sweepHandler := c.CreateSweepOrphanedOrdersCommandHandler()
	return jobs.NewJobManager(
		jobs.NewOrphanSweepJob(&sweepHandler, c.config.OrphanSweepSchedule, c.config.OrphanMaxAge, c.jobMetrics, c.log),
		jobs.NewSessionEvictionJob(c.sessions, c.config.SessionEvictionSchedule, c.config.SessionMaxIdle, c.jobMetrics, c.log),
	)
}

// Registry is scraped by the /metrics endpoint.
func (c *CompositionRoot) Registry() *prometheus.Registry {
	return c.registry
}
