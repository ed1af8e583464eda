package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Calculation outcomes.
const (
	OutcomeSuccess       = "success"
	OutcomeMissingFields = "missing_fields"
	OutcomeInvalidInput  = "invalid_input"
	OutcomeError         = "error"
)

var (
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alimony_calculations_total",
			Help: "Total number of alimony calculation requests by outcome",
		},
		[]string{"outcome"},
	)

	CalculatedPercentage = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "alimony_percentage",
			Help:    "Distribution of the computed alimony percentage",
			Buckets: prometheus.LinearBuckets(0, 10, 8),
		},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alimony_cache_lookups_total",
			Help: "Result cache lookups by result",
		},
		[]string{"result"},
	)

	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_requests_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "status"},
	)
)
