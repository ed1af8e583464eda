package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter wires the API routes. Only the calculation routes are rate
// limited; health and metrics stay reachable for probes and scrapers.
func NewRouter(
	handler *AlimonyHandler,
	limiter *RateLimiter,
	logger *zap.Logger,
) http.Handler {
	mux := http.NewServeMux()

	mux.Handle(
		"/calculate-alimony",
		InstrumentHandler("/calculate-alimony",
			RateLimitMiddleware(limiter, logger,
				http.HandlerFunc(handler.CalculateAlimony),
			),
		),
	)

	mux.Handle(
		"GET /calculations/{id}",
		InstrumentHandler("/calculations/{id}",
			RateLimitMiddleware(limiter, logger,
				http.HandlerFunc(handler.GetCalculation),
			),
		),
	)

	mux.HandleFunc("GET /healthz", Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	return RequestIDMiddleware(
		LoggingMiddleware(logger,
			RecoveryMiddleware(logger, mux),
		),
	)
}
