package github

import (
	"langshare/internal/shared/metrics"
)

const (
	outcomeOK       = "ok"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

var (
	metricGraphQLRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubGitHub,
			Name:      "graphql_requests_total",
		},
		[]string{metrics.FieldOutcome},
	)

	metricGraphQLRequestDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubGitHub,
			Name:      "graphql_request_latency",
			Buckets:   metrics.DefBuckets,
		},
		[]string{metrics.FieldOutcome},
	)

	metricRateLimitRemaining = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubGitHub,
			Name:      "rate_limit_remaining",
		},
	)
)
