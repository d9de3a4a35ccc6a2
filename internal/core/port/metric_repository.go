package port

import (
	"context"
	"time"

	"pacewatch/internal/core/domain"
)

// MetricRepository is the outbound port for the ingestion path. It owns
// transaction demarcation: all metric, signal and export writes for one
// ingestion call happen inside a single transaction holding an exclusive
// lock on the campaign row.
type MetricRepository interface {
	// InCampaignTx loads the campaign identified by campaignID under an
	// exclusive row lock and runs fn with a transactional store view. The
	// transaction commits when fn returns nil and rolls back otherwise.
	// Returns ErrCampaignNotFound when the campaign does not exist.
	InCampaignTx(ctx context.Context, campaignID int64, fn func(tx IngestStore, c *domain.Campaign) error) error
}

// IngestStore is the transactional store view handed to ingestion. Every
// read and write happens under the campaign lock taken by InCampaignTx, so
// find-then-save sequences are race-free by construction.
type IngestStore interface {
	// Flight loads a flight by id. Returns ErrFlightNotFound when absent.
	// Ownership against the locked campaign is checked by the caller.
	Flight(ctx context.Context, flightID int64) (*domain.Flight, error)

	// FindMetric returns the metric at key, or nil when none exists yet.
	FindMetric(ctx context.Context, key domain.MetricKey) (*domain.DailyMetric, error)

	// SaveMetric inserts the metric when m.ID is zero, otherwise updates the
	// existing row. On insert the generated ID is written back to m.
	SaveMetric(ctx context.Context, m *domain.DailyMetric) error

	// ListSignals returns all fraud signals (resolved included) at key.
	ListSignals(ctx context.Context, key domain.MetricKey) ([]domain.FraudSignal, error)

	// SaveSignal inserts the signal when s.ID is zero, otherwise updates the
	// existing row. On insert the generated ID is written back to s.
	SaveSignal(ctx context.Context, s *domain.FraudSignal) error

	// UpsertExport creates or replaces the export record keyed by
	// rec.MetricID, resetting it to pending with a fresh payload.
	UpsertExport(ctx context.Context, rec *domain.AnalyticsExport) error
}

// SignalRepository serves the operator-facing signal endpoints outside the
// ingestion transaction.
type SignalRepository interface {
	ListByCampaign(ctx context.Context, campaignID int64, includeResolved bool) ([]domain.FraudSignal, error)
	Find(ctx context.Context, id int64) (*domain.FraudSignal, error)
	// Resolve marks the signal resolved if it is not already, using a
	// conditional update, and returns the row as stored afterwards.
	Resolve(ctx context.Context, id int64, note string, at time.Time) (*domain.FraudSignal, error)
}

// ExportRepository serves the forwarder job. Its writes are single-row
// conditional updates and never compete with the ingestion lock.
type ExportRepository interface {
	// RequeueStaleFailures resets failed records not touched since cutoff
	// back to pending, returning how many rows changed.
	RequeueStaleFailures(ctx context.Context, cutoff time.Time) (int64, error)

	// PendingBatch returns up to limit pending records, oldest created first.
	PendingBatch(ctx context.Context, limit int) ([]domain.AnalyticsExport, error)

	// MarkSent transitions the record to sent and stamps the source
	// metric's exported_at.
	MarkSent(ctx context.Context, id int64, at time.Time) error

	// MarkFailed transitions the record to failed recording the error text.
	MarkFailed(ctx context.Context, id int64, at time.Time, lastError string) error

	// StatusCounts reports how many records sit in each status.
	StatusCounts(ctx context.Context) (map[domain.ExportStatus]int64, error)
}

// AnalyticsSink delivers one export payload to the external warehouse.
type AnalyticsSink interface {
	Deliver(ctx context.Context, payload domain.ExportPayload) error
}
