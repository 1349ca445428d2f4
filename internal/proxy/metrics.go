package proxy

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	roverRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roverproxy_requests_total",
		Help: "Rover photo requests served, by rover and outcome.",
	}, []string{"rover", "outcome"})

	upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "roverproxy_upstream_duration_seconds",
		Help:    "Upstream call latency, by lookup phase.",
		Buckets: prometheus.DefBuckets,
	}, []string{"phase"})
)
