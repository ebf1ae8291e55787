package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestsTotal counts served requests by route and status code
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "patternmap_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"route", "code"},
	)

	// ViewSeconds tracks how long a view takes to rebuild from its inputs
	ViewSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "patternmap_view_recompute_seconds",
			Help:    "Time spent rebuilding a view from selection, layers and query",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
	)
)

func init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(ViewSeconds)
}
