// Package metrics exposes the Prometheus collectors for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pokedex_http_requests_total",
			Help: "Total HTTP requests served, by method, path and status.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pokedex_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pokedex_http_requests_in_flight",
			Help: "HTTP requests currently being served.",
		},
	)
)

// Upstream gateway metrics
var (
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pokedex_upstream_requests_total",
			Help: "Requests issued to the upstream API, by resource and status.",
		},
		[]string{"resource", "status"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pokedex_upstream_request_duration_seconds",
			Help:    "Upstream request latency, by resource.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"resource"},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pokedex_cache_hits_total",
			Help: "Gateway cache hits, by resource. Stale hits count as hits.",
		},
		[]string{"resource"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pokedex_cache_misses_total",
			Help: "Gateway cache misses, by resource.",
		},
		[]string{"resource"},
	)
)
