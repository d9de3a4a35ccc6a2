package usecase

import (
	"context"
	"time"

	"pacewatch/internal/core/anomaly"
	"pacewatch/internal/core/domain"
	"pacewatch/internal/core/pacing"
	"pacewatch/internal/core/port"
)

// MetricUseCase implements the pacing pipeline's business operations. It
// orchestrates the pure spend-target and anomaly calculators with the
// transactional metric store and implements the port.MetricUseCase
// interface.
type MetricUseCase struct {
	metrics  port.MetricRepository
	signals  port.SignalRepository
	exports  port.ExportRepository
	detector anomaly.Config
}

// NewMetricUseCase creates a new usecase with the provided repositories and
// detection thresholds.
func NewMetricUseCase(metrics port.MetricRepository, signals port.SignalRepository, exports port.ExportRepository, detector anomaly.Config) *MetricUseCase {
	return &MetricUseCase{metrics: metrics, signals: signals, exports: exports, detector: detector}
}

// resolutionNoteCleared is written when a signal's condition clears on
// re-ingestion, as opposed to a manual operator resolve.
const resolutionNoteCleared = "condition cleared"

// Ingest upserts one daily performance report. Everything — metric upsert,
// derived fields, export queueing, signal reconciliation — happens inside a
// single transaction holding the campaign row lock, so a failing step
// leaves no partial state and concurrent reports for the same campaign
// serialize.
func (u *MetricUseCase) Ingest(ctx context.Context, campaignID int64, req port.IngestRequest) (*domain.DailyMetric, error) {
	if req.MetricDate.IsZero() {
		return nil, port.ErrInvalidMetricDate
	}
	metricDate := req.MetricDate.UTC().Truncate(24 * time.Hour)

	var out *domain.DailyMetric
	err := u.metrics.InCampaignTx(ctx, campaignID, func(tx port.IngestStore, c *domain.Campaign) error {
		var flight *domain.Flight
		if req.FlightID != nil {
			f, err := tx.Flight(ctx, *req.FlightID)
			if err != nil {
				return err
			}
			if f.CampaignID != c.ID {
				return port.ErrFlightMismatch
			}
			flight = f
		}

		key := domain.MetricKey{CampaignID: c.ID, FlightID: req.FlightID, MetricDate: metricDate}
		m, err := tx.FindMetric(ctx, key)
		if err != nil {
			return err
		}
		if m == nil {
			m = &domain.DailyMetric{
				CampaignID: c.ID,
				FlightID:   req.FlightID,
				MetricDate: metricDate,
				Metadata:   map[string]any{},
			}
		}
		if m.Metadata == nil {
			m.Metadata = map[string]any{}
		}

		m.Impressions = clampCount(req.Impressions)
		m.Clicks = clampCount(req.Clicks)
		m.Conversions = clampCount(req.Conversions)
		m.Spend = clampAmount(req.Spend)
		m.Revenue = clampAmount(req.Revenue)
		for k, v := range req.Metadata {
			m.Metadata[k] = v
		}

		var targetPtr *float64
		if target, ok := pacing.Target(c, flight, metricDate); ok {
			targetPtr = &target
		}
		m.SpendTarget = targetPtr

		eval := anomaly.Evaluate(anomaly.Input{
			Impressions: m.Impressions,
			Clicks:      m.Clicks,
			Conversions: m.Conversions,
			Spend:       m.Spend,
			MetricDate:  metricDate,
			PeriodStart: pacing.PeriodStart(c, flight),
			SpendTarget: targetPtr,
		}, u.detector)
		m.CTR = &eval.CTR
		m.CVR = &eval.CVR
		m.AnomalyScore = &eval.AnomalyScore

		if err = tx.SaveMetric(ctx, m); err != nil {
			return err
		}
		if err = tx.UpsertExport(ctx, buildExport(m, c, flight)); err != nil {
			return err
		}
		if err = u.reconcileSignals(ctx, tx, key, eval); err != nil {
			return err
		}

		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// reconcileSignals applies the evaluator's verdict to the stored signal
// rows: unresolved rows whose condition cleared are resolved, findings
// reopen their existing row or create a fresh one. Reads and writes run
// under the campaign lock held by the surrounding transaction.
func (u *MetricUseCase) reconcileSignals(ctx context.Context, tx port.IngestStore, key domain.MetricKey, eval anomaly.Result) error {
	existing, err := tx.ListSignals(ctx, key)
	if err != nil {
		return err
	}
	byType := make(map[domain.SignalType]*domain.FraudSignal, len(existing))
	for i := range existing {
		byType[existing[i].Type] = &existing[i]
	}

	now := time.Now().UTC()

	for _, t := range eval.Resolve {
		sig, ok := byType[t]
		if !ok || sig.Resolved() {
			continue
		}
		sig.ResolvedAt = &now
		note := resolutionNoteCleared
		sig.ResolutionNote = &note
		if err = tx.SaveSignal(ctx, sig); err != nil {
			return err
		}
	}

	for _, f := range eval.Open {
		sig, ok := byType[f.Type]
		if !ok {
			sig = &domain.FraudSignal{
				CampaignID: key.CampaignID,
				FlightID:   key.FlightID,
				MetricDate: key.MetricDate,
				Type:       f.Type,
			}
		}
		sig.Severity = f.Severity
		sig.Metadata = f.Metadata
		sig.DetectedAt = now
		sig.ResolvedAt = nil
		sig.ResolutionNote = nil
		if err = tx.SaveSignal(ctx, sig); err != nil {
			return err
		}
	}
	return nil
}

// ListSignals returns a campaign's fraud signals.
func (u *MetricUseCase) ListSignals(ctx context.Context, campaignID int64, includeResolved bool) ([]domain.FraudSignal, error) {
	return u.signals.ListByCampaign(ctx, campaignID, includeResolved)
}

// ResolveSignal manually resolves a signal. Resolving an already-resolved
// signal returns the stored record unchanged.
func (u *MetricUseCase) ResolveSignal(ctx context.Context, signalID int64, note string) (*domain.FraudSignal, error) {
	sig, err := u.signals.Find(ctx, signalID)
	if err != nil {
		return nil, err
	}
	if sig == nil {
		return nil, port.ErrSignalNotFound
	}
	if sig.Resolved() {
		return sig, nil
	}
	return u.signals.Resolve(ctx, signalID, note, time.Now().UTC())
}

// ExportOverview reports export queue depth per status.
func (u *MetricUseCase) ExportOverview(ctx context.Context) (port.ExportOverview, error) {
	counts, err := u.exports.StatusCounts(ctx)
	if err != nil {
		return port.ExportOverview{}, err
	}
	return port.ExportOverview{
		Pending: counts[domain.ExportPending],
		Sent:    counts[domain.ExportSent],
		Failed:  counts[domain.ExportFailed],
	}, nil
}

// buildExport flattens the metric and its campaign/flight context into the
// warehouse snapshot queued for delivery.
func buildExport(m *domain.DailyMetric, c *domain.Campaign, f *domain.Flight) *domain.AnalyticsExport {
	payload := domain.ExportPayload{
		CampaignID:     c.ID,
		AccountID:      c.AccountID,
		MetricDate:     m.MetricDate.Format("2006-01-02"),
		Impressions:    m.Impressions,
		Clicks:         m.Clicks,
		Conversions:    m.Conversions,
		Spend:          m.Spend,
		Revenue:        m.Revenue,
		SpendTarget:    m.SpendTarget,
		CTR:            m.CTR,
		CVR:            m.CVR,
		AnomalyScore:   m.AnomalyScore,
		Currency:       c.Currency,
		CampaignStatus: c.Status,
		PacingStrategy: string(c.PacingStrategy),
		Objective:      c.Objective,
	}
	if f != nil {
		payload.FlightID = &f.ID
	}
	return &domain.AnalyticsExport{
		MetricID: m.ID,
		Payload:  payload,
		Status:   domain.ExportPending,
	}
}

func clampCount(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

func clampAmount(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
