// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jobqueue

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsPrefix = "parscrypt_jobqueue_"

// Metrics collects Queue statistics. A nil *Metrics records nothing.
type Metrics struct {
	jobsSubmitted prometheus.Counter
	jobsCompleted *prometheus.CounterVec
	queueDepth    prometheus.Gauge
	jobDuration   prometheus.Histogram
}

// NewMetrics creates the queue metrics and registers them with reg, if reg
// is not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		jobsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricsPrefix + "jobs_submitted_total",
			Help: "Number of jobs submitted to the queue.",
		}),
		jobsCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricsPrefix + "jobs_completed_total",
			Help: "Number of jobs that finished, by result.",
		}, []string{"result"}),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: metricsPrefix + "queue_depth",
			Help: "Number of jobs waiting for a worker.",
		}),
		jobDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    metricsPrefix + "job_duration_seconds",
			Help:    "Time spent running a job.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.jobsSubmitted, m.jobsCompleted, m.queueDepth, m.jobDuration)
	}
	return m
}

func (m *Metrics) submitted(depth int) {
	if m == nil {
		return
	}
	m.jobsSubmitted.Inc()
	m.queueDepth.Set(float64(depth))
}

func (m *Metrics) dequeued(depth int) {
	if m == nil {
		return
	}
	m.queueDepth.Set(float64(depth))
}

func (m *Metrics) finished(t *task, d time.Duration) {
	if m == nil {
		return
	}
	result := "ok"
	switch {
	case t.panicked:
		result = "panic"
	case t.err != nil:
		result = "error"
	}
	m.jobsCompleted.WithLabelValues(result).Inc()
	m.jobDuration.Observe(d.Seconds())
}
