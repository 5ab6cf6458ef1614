package cpe

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus collectors a [Group] reports through when
// configured via [WithMetrics]. A Group with no Metrics attached performs
// no metrics work at all.
type Metrics struct {
	jobsTotal     prometheus.Counter
	jobDuration   prometheus.Histogram
	activeWorkers prometheus.Gauge
}

// NewMetrics builds and registers a Metrics set against reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		jobsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "archipelago",
			Subsystem: "cpe",
			Name:      "jobs_total",
			Help:      "Number of jobs dispatched through Group.Execute.",
		}),
		jobDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "archipelago",
			Subsystem: "cpe",
			Name:      "job_duration_seconds",
			Help:      "Wall-clock duration of Group.Execute calls.",
			Buckets:   prometheus.DefBuckets,
		}),
		activeWorkers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "archipelago",
			Subsystem: "cpe",
			Name:      "active_workers",
			Help:      "Worker count of the in-flight job: the group size while a job runs, 0 once it completes.",
		}),
	}
	reg.MustRegister(m.jobsTotal, m.jobDuration, m.activeWorkers)
	return m
}
