// Package metrics holds the Prometheus collectors of the ordering core.
// Every method is safe on a nil receiver so callers never need to check
// whether metrics were wired.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Submission outcomes used as the "outcome" label.
const (
	OutcomeSuccess          = "success"
	OutcomeRejected         = "rejected"
	OutcomeInProgress       = "in_progress"
	OutcomeStoreUnavailable = "store_unavailable"
	OutcomePartial          = "partial"
	OutcomeCanceled         = "canceled"
)

// SubmissionMetrics records order submission outcomes.
type SubmissionMetrics struct {
	outcomes *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewSubmissionMetrics registers the submission collectors on reg.
// A nil registerer yields a no-op instance.
func NewSubmissionMetrics(reg prometheus.Registerer) *SubmissionMetrics {
	if reg == nil {
		return &SubmissionMetrics{}
	}
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_submissions_total",
		Help: "Order submissions by outcome.",
	}, []string{"outcome"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_submission_duration_seconds",
		Help:    "Time spent writing an order header and its line items.",
		Buckets: prometheus.DefBuckets,
	})
	reg.MustRegister(outcomes, duration)
	return &SubmissionMetrics{
		outcomes: outcomes,
		duration: duration,
	}
}

// IncOutcome counts one submission with the given outcome.
func (m *SubmissionMetrics) IncOutcome(outcome string) {
	if m == nil || m.outcomes == nil {
		return
	}
	m.outcomes.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// ObserveDuration records how long the store writes took.
func (m *SubmissionMetrics) ObserveDuration(d time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.Observe(d.Seconds())
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
