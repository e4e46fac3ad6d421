package languages

import (
	"langshare/internal/shared/metrics"
)

var (
	metricReportGeneratedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubLanguages,
			Name:      "report_generated_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricShareResidualTotal counts reports whose shares still miss 1 after redistribution.
	// This only happens when a single pass cannot place every grid unit (see shares.Normalize).
	metricShareResidualTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubLanguages,
			Name:      "share_residual_total",
		},
		[]string{"precision"},
	)
)
