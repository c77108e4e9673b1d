// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package telemetry wires the dispatcher's run outcomes into Prometheus,
// mirroring the teacher's api/metrics package.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tally"

// Metrics tracks run counts by method/outcome and run latency.
type Metrics struct {
	runs     *prometheus.CounterVec
	duration prometheus.Histogram
}

// New creates and registers the tally metrics against registerer. A nil
// registerer yields a Metrics that tracks nothing.
func New(registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Number of tabulation runs by method and result",
		}, []string{"method", "result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tabulation_duration_seconds",
			Help:      "Tabulation run latency",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	if registerer == nil {
		return m, nil
	}
	if err := registerer.Register(m.runs); err != nil {
		return nil, err
	}
	if err := registerer.Register(m.duration); err != nil {
		return nil, err
	}
	return m, nil
}

// ObserveRun records one completed run.
func (m *Metrics) ObserveRun(method, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(method, outcome).Inc()
	m.duration.Observe(seconds)
}
