package port

import (
	"context"
	"time"

	"pacewatch/internal/core/domain"
)

// MetricUseCase defines the business operations of the pacing pipeline. This
// is the primary inbound port; the HTTP adapter is a thin shell over it and
// mock implementations are generated from it for testing.
type MetricUseCase interface {
	// Ingest upserts the daily metric for the given campaign (and optional
	// flight), computes the spend target and anomaly signals, reconciles
	// fraud-signal rows and queues the day for analytics export, all in one
	// atomic transaction. It returns the persisted metric.
	Ingest(ctx context.Context, campaignID int64, req IngestRequest) (*domain.DailyMetric, error)

	// ListSignals returns a campaign's fraud signals, unresolved only by
	// default.
	ListSignals(ctx context.Context, campaignID int64, includeResolved bool) ([]domain.FraudSignal, error)

	// ResolveSignal manually resolves a signal with an optional note.
	// Resolving an already-resolved signal is a no-op returning the
	// existing record.
	ResolveSignal(ctx context.Context, signalID int64, note string) (*domain.FraudSignal, error)

	// ExportOverview reports export queue depth per status for operational
	// tooling.
	ExportOverview(ctx context.Context) (ExportOverview, error)
}

// IngestRequest is one raw daily performance report. Negative counters and
// amounts are clamped to zero during ingestion; Metadata is shallow-merged
// into any existing metric metadata.
type IngestRequest struct {
	FlightID    *int64
	MetricDate  time.Time
	Impressions int64
	Clicks      int64
	Conversions int64
	Spend       float64
	Revenue     float64
	Metadata    map[string]any
}

// ExportOverview aggregates export record counts by status.
type ExportOverview struct {
	Pending int64 `json:"pending"`
	Sent    int64 `json:"sent"`
	Failed  int64 `json:"failed"`
}
