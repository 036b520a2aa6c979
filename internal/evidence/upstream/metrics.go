package upstream

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	callDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "broker_upstream_call_duration_seconds",
		Help:    "Duration of upstream registry calls by source and outcome",
		Buckets: []float64{0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"source", "outcome"}) // outcome: "ok", "not_found", "error"

	callFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "broker_upstream_failures_total",
		Help: "Upstream registry failures by source and error category",
	}, []string{"source", "category"})

	breakerOpen = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "broker_upstream_circuit_open",
		Help: "1 when the upstream circuit breaker is open",
	}, []string{"source"})
)
