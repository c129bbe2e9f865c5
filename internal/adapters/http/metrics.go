package http

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	requests     *prometheus.CounterVec
	cacheHits    prometheus.Counter
	buildSeconds prometheus.Histogram
}

// newMetrics registers the server's collectors on its own registry, so
// multiple handlers can coexist in one process.
func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dfa_union_requests_total",
				Help: "Union requests served, labeled by outcome.",
			},
			[]string{"outcome"},
		),
		cacheHits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "dfa_union_cache_hits_total",
				Help: "Union requests answered from the result cache.",
			},
		),
		buildSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dfa_union_build_seconds",
				Help:    "Time spent constructing and validating a union.",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
	reg.MustRegister(m.requests, m.cacheHits, m.buildSeconds)
	return m
}
