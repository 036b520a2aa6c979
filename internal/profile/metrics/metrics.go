package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the profile module.
type Metrics struct {
	// Evidence lookup latencies by source
	EvidenceLatency *prometheus.HistogramVec

	// Profile outcomes: ok, not_found, upstream_error
	ProfileOutcome *prometheus.CounterVec

	// Evidence lookups degraded into absence, by source
	DegradedEvidence *prometheus.CounterVec

	// Distribution of derived risk scores
	RiskScore prometheus.Histogram

	// Overall profile latency including write-back
	ProfileLatency prometheus.Histogram
}

// New creates a new Metrics instance with all profile module metrics registered.
func New() *Metrics {
	return &Metrics{
		EvidenceLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "broker_profile_evidence_duration_seconds",
			Help:    "Duration of evidence lookups by source",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"source"}), // source: "entity", "statement", "screening", "licenses"

		ProfileOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "broker_profile_outcomes_total",
			Help: "Total profile requests by outcome",
		}, []string{"outcome"}),

		DegradedEvidence: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "broker_profile_degraded_evidence_total",
			Help: "Evidence lookups that failed and were treated as absent",
		}, []string{"source"}),

		RiskScore: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "broker_profile_risk_score",
			Help:    "Distribution of derived risk scores",
			Buckets: []float64{0, 1, 2, 3, 4, 5},
		}),

		ProfileLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "broker_profile_duration_seconds",
			Help:    "Duration of full profile computation",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		}),
	}
}

// ObserveEvidenceLatency records the duration of one lookup.
func (m *Metrics) ObserveEvidenceLatency(source string, d time.Duration) {
	if m != nil {
		m.EvidenceLatency.WithLabelValues(source).Observe(d.Seconds())
	}
}

// IncrementOutcome records a profile outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.ProfileOutcome.WithLabelValues(outcome).Inc()
	}
}

// IncrementDegraded records a swallowed lookup failure.
func (m *Metrics) IncrementDegraded(source string) {
	if m != nil {
		m.DegradedEvidence.WithLabelValues(source).Inc()
	}
}

// ObserveRiskScore records a derived score.
func (m *Metrics) ObserveRiskScore(score int) {
	if m != nil {
		m.RiskScore.Observe(float64(score))
	}
}

// ObserveProfileLatency records the total profile duration.
func (m *Metrics) ObserveProfileLatency(d time.Duration) {
	if m != nil {
		m.ProfileLatency.Observe(d.Seconds())
	}
}
