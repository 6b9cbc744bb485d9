// Package metrics exposes Prometheus collectors for upstream fetches,
// normalization and view lifecycle.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "scorefeed"

// Fetch stages.
const (
	StagePrimary  = "primary"
	StageFallback = "fallback"
)

// Recorder is the set of collectors the service writes to. A nil *Recorder is
// valid and records nothing, which keeps tests free of registry plumbing.
type Recorder struct {
	registry *prometheus.Registry

	UpstreamRequests      *prometheus.CounterVec
	UpstreamLatency       *prometheus.HistogramVec
	BreakerTransitions    *prometheus.CounterVec
	NormalizationFailures *prometheus.CounterVec
	RecordsNormalized     *prometheus.CounterVec
	ViewTransitions       *prometheus.CounterVec
	RotationAdvances      *prometheus.CounterVec
}

func New() *Recorder {
	registry := prometheus.NewRegistry()

	r := &Recorder{
		registry: registry,

		UpstreamRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "upstream_requests_total",
				Help:      "Upstream scraper requests by family, stage and outcome",
			},
			[]string{"family", "stage", "outcome"},
		),
		UpstreamLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "upstream_request_duration_seconds",
				Help:      "Upstream scraper request latency",
				Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
			},
			[]string{"family", "stage"},
		),
		BreakerTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "upstream_breaker_transitions_total",
				Help:      "Circuit breaker state changes per upstream host",
			},
			[]string{"host", "to"},
		),
		NormalizationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "normalization_failures_total",
				Help:      "Payloads that could not be normalized",
			},
			[]string{"family"},
		),
		RecordsNormalized: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "records_normalized_total",
				Help:      "Records produced by the field normalizer",
			},
			[]string{"family"},
		),
		ViewTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "view_transitions_total",
				Help:      "View lifecycle transitions",
			},
			[]string{"view", "state"},
		),
		RotationAdvances: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rotation_advances_total",
				Help:      "Carousel cursor moves by view and trigger",
			},
			[]string{"view", "trigger"},
		),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.UpstreamRequests,
		r.UpstreamLatency,
		r.BreakerTransitions,
		r.NormalizationFailures,
		r.RecordsNormalized,
		r.ViewTransitions,
		r.RotationAdvances,
	)

	return r
}

func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Recorder) RecordUpstream(family, stage, outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.UpstreamRequests.WithLabelValues(family, stage, outcome).Inc()
	r.UpstreamLatency.WithLabelValues(family, stage).Observe(elapsed.Seconds())
}

func (r *Recorder) RecordBreaker(host, to string) {
	if r == nil {
		return
	}
	r.BreakerTransitions.WithLabelValues(host, to).Inc()
}

func (r *Recorder) RecordNormalized(family string, records int) {
	if r == nil {
		return
	}
	r.RecordsNormalized.WithLabelValues(family).Add(float64(records))
}

func (r *Recorder) RecordNormalizationFailure(family string) {
	if r == nil {
		return
	}
	r.NormalizationFailures.WithLabelValues(family).Inc()
}

func (r *Recorder) RecordViewState(view, state string) {
	if r == nil {
		return
	}
	r.ViewTransitions.WithLabelValues(view, state).Inc()
}

func (r *Recorder) RecordRotation(view, trigger string) {
	if r == nil {
		return
	}
	r.RotationAdvances.WithLabelValues(view, trigger).Inc()
}
