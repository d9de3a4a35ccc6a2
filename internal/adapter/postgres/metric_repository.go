package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pacewatch/internal/core/domain"
	"pacewatch/internal/core/port"
)

// MetricRepository implements port.MetricRepository using pgxpool. Every
// ingestion runs inside one transaction that holds a FOR UPDATE lock on the
// campaign row, so concurrent ingestions of the same campaign serialize
// while different campaigns proceed in parallel.
type MetricRepository struct {
	pool *pgxpool.Pool
}

// NewMetricRepository returns a new repository instance.
func NewMetricRepository(pool *pgxpool.Pool) *MetricRepository {
	return &MetricRepository{pool: pool}
}

const campaignColumns = `id, account_id, name, currency, total_budget, daily_spend_cap,
       start_at, end_at, pacing_strategy, objective, status, created_at, updated_at`

// InCampaignTx locks and loads the campaign, then runs fn with a store view
// bound to the same transaction. A nil return from fn commits; anything
// else rolls back, leaving no partial metric/signal/export state behind.
// The return is named so a commit failure reaches the caller: ingestion must
// never report success for a day that was not persisted.
func (r *MetricRepository) InCampaignTx(ctx context.Context, campaignID int64, fn func(tx port.IngestStore, c *domain.Campaign) error) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { err = finishTx(ctx, tx, err) }()

	var c domain.Campaign
	err = tx.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, campaignID).
		Scan(&c.ID, &c.AccountID, &c.Name, &c.Currency, &c.TotalBudget, &c.DailySpendCap,
			&c.StartAt, &c.EndAt, &c.PacingStrategy, &c.Objective, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		err = port.ErrCampaignNotFound
		return err
	}
	if err != nil {
		return err
	}

	err = fn(&ingestStore{tx: tx}, &c)
	return err
}

// ingestStore is the transactional store view handed to the ingestion
// usecase. All statements run on the transaction holding the campaign lock.
type ingestStore struct {
	tx pgx.Tx
}

func (s *ingestStore) Flight(ctx context.Context, flightID int64) (*domain.Flight, error) {
	var f domain.Flight
	err := s.tx.QueryRow(ctx, `SELECT id, campaign_id, name, total_budget, daily_spend_cap, start_at, end_at, created_at, updated_at
FROM flights WHERE id = $1`, flightID).
		Scan(&f.ID, &f.CampaignID, &f.Name, &f.TotalBudget, &f.DailySpendCap, &f.StartAt, &f.EndAt, &f.CreatedAt, &f.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrFlightNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *ingestStore) FindMetric(ctx context.Context, key domain.MetricKey) (*domain.DailyMetric, error) {
	var m domain.DailyMetric
	err := s.tx.QueryRow(ctx, `SELECT id, campaign_id, flight_id, metric_date, impressions, clicks, conversions,
       spend, revenue, spend_target, ctr, cvr, anomaly_score, metadata, exported_at, created_at, updated_at
FROM daily_metrics
WHERE campaign_id = $1 AND flight_id IS NOT DISTINCT FROM $2 AND metric_date = $3`,
		key.CampaignID, key.FlightID, key.MetricDate).
		Scan(&m.ID, &m.CampaignID, &m.FlightID, &m.MetricDate, &m.Impressions, &m.Clicks, &m.Conversions,
			&m.Spend, &m.Revenue, &m.SpendTarget, &m.CTR, &m.CVR, &m.AnomalyScore, &m.Metadata, &m.ExportedAt, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *ingestStore) SaveMetric(ctx context.Context, m *domain.DailyMetric) error {
	if m.ID == 0 {
		return s.tx.QueryRow(ctx, `INSERT INTO daily_metrics
    (campaign_id, flight_id, metric_date, impressions, clicks, conversions, spend, revenue,
     spend_target, ctr, cvr, anomaly_score, metadata, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,now(),now())
RETURNING id, created_at, updated_at`,
			m.CampaignID, m.FlightID, m.MetricDate, m.Impressions, m.Clicks, m.Conversions, m.Spend, m.Revenue,
			m.SpendTarget, m.CTR, m.CVR, m.AnomalyScore, m.Metadata).
			Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	}
	_, err := s.tx.Exec(ctx, `UPDATE daily_metrics SET
    impressions = $2, clicks = $3, conversions = $4, spend = $5, revenue = $6,
    spend_target = $7, ctr = $8, cvr = $9, anomaly_score = $10, metadata = $11, updated_at = now()
WHERE id = $1`,
		m.ID, m.Impressions, m.Clicks, m.Conversions, m.Spend, m.Revenue,
		m.SpendTarget, m.CTR, m.CVR, m.AnomalyScore, m.Metadata)
	return err
}

func (s *ingestStore) ListSignals(ctx context.Context, key domain.MetricKey) ([]domain.FraudSignal, error) {
	rows, err := s.tx.Query(ctx, `SELECT `+signalColumns+`
FROM fraud_signals
WHERE campaign_id = $1 AND flight_id IS NOT DISTINCT FROM $2 AND metric_date = $3`,
		key.CampaignID, key.FlightID, key.MetricDate)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanSignal)
}

func (s *ingestStore) SaveSignal(ctx context.Context, sig *domain.FraudSignal) error {
	if sig.ID == 0 {
		return s.tx.QueryRow(ctx, `INSERT INTO fraud_signals
    (campaign_id, flight_id, metric_date, signal_type, severity, metadata, detected_at, resolved_at, resolution_note, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,now(),now())
RETURNING id, created_at, updated_at`,
			sig.CampaignID, sig.FlightID, sig.MetricDate, sig.Type, sig.Severity, sig.Metadata,
			sig.DetectedAt, sig.ResolvedAt, sig.ResolutionNote).
			Scan(&sig.ID, &sig.CreatedAt, &sig.UpdatedAt)
	}
	_, err := s.tx.Exec(ctx, `UPDATE fraud_signals SET
    severity = $2, metadata = $3, detected_at = $4, resolved_at = $5, resolution_note = $6, updated_at = now()
WHERE id = $1`,
		sig.ID, sig.Severity, sig.Metadata, sig.DetectedAt, sig.ResolvedAt, sig.ResolutionNote)
	return err
}

func (s *ingestStore) UpsertExport(ctx context.Context, rec *domain.AnalyticsExport) error {
	return s.tx.QueryRow(ctx, `INSERT INTO analytics_exports
    (metric_id, payload, status, last_attempt_at, last_error, created_at, updated_at)
VALUES ($1, $2, 'pending', NULL, NULL, now(), now())
ON CONFLICT (metric_id) DO UPDATE SET
    payload = EXCLUDED.payload, status = 'pending', last_attempt_at = NULL, last_error = NULL, updated_at = now()
RETURNING id, created_at, updated_at`,
		rec.MetricID, rec.Payload).
		Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
}

const signalColumns = `id, campaign_id, flight_id, metric_date, signal_type, severity, metadata,
       detected_at, resolved_at, resolution_note, created_at, updated_at`

func scanSignal(row pgx.CollectableRow) (domain.FraudSignal, error) {
	var sig domain.FraudSignal
	err := row.Scan(&sig.ID, &sig.CampaignID, &sig.FlightID, &sig.MetricDate, &sig.Type, &sig.Severity, &sig.Metadata,
		&sig.DetectedAt, &sig.ResolvedAt, &sig.ResolutionNote, &sig.CreatedAt, &sig.UpdatedAt)
	return sig, err
}

