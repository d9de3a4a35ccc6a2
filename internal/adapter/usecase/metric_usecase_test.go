package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pacewatch/internal/core/anomaly"
	"pacewatch/internal/core/domain"
	"pacewatch/internal/core/port"
	"pacewatch/internal/core/port/mocks"
)

func testDetector() anomaly.Config {
	return anomaly.Config{
		OverspendTolerance:         0.15,
		UnderspendTolerance:        0.25,
		SuspiciousCTRThreshold:     0.18,
		SuspiciousCVRThreshold:     0.45,
		DeliveryGapImpressionFloor: 100,
		NoSpendGraceDays:           2,
	}
}

func testCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:             1,
		AccountID:      10,
		Currency:       "USD",
		TotalBudget:    3100,
		StartAt:        time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndAt:          time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
		PacingStrategy: domain.PacingEven,
		Status:         "active",
	}
}

// expectTx wires the repository mock so the ingestion callback runs against
// the given store and campaign, mimicking a committed transaction.
func expectTx(repo *mocks.MockMetricRepository, store *mocks.MockIngestStore, c *domain.Campaign) {
	repo.EXPECT().
		InCampaignTx(mock.Anything, c.ID, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ int64, fn func(port.IngestStore, *domain.Campaign) error) error {
			return fn(store, c)
		})
}

// TestIngestOpensSignals ingests a hot day (overspend + suspicious CTR) and
// checks the derived fields, the export snapshot and the opened signals.
func TestIngestOpensSignals(t *testing.T) {
	repo := mocks.NewMockMetricRepository(t)
	store := mocks.NewMockIngestStore(t)
	c := testCampaign()
	expectTx(repo, store, c)

	store.EXPECT().FindMetric(mock.Anything, mock.Anything).Return(nil, nil)
	store.EXPECT().
		SaveMetric(mock.Anything, mock.AnythingOfType("*domain.DailyMetric")).
		RunAndReturn(func(_ context.Context, m *domain.DailyMetric) error {
			m.ID = 7
			return nil
		})

	var exported *domain.AnalyticsExport
	store.EXPECT().
		UpsertExport(mock.Anything, mock.AnythingOfType("*domain.AnalyticsExport")).
		Run(func(_ context.Context, rec *domain.AnalyticsExport) { exported = rec }).
		Return(nil)

	store.EXPECT().ListSignals(mock.Anything, mock.Anything).Return(nil, nil)

	var opened []domain.FraudSignal
	store.EXPECT().
		SaveSignal(mock.Anything, mock.AnythingOfType("*domain.FraudSignal")).
		Run(func(_ context.Context, s *domain.FraudSignal) { opened = append(opened, *s) }).
		Return(nil)

	svc := NewMetricUseCase(repo, nil, nil, testDetector())
	m, err := svc.Ingest(context.Background(), 1, port.IngestRequest{
		MetricDate:  time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		Impressions: 1000,
		Clicks:      300,
		Conversions: 10,
		Spend:       140,
		Revenue:     500,
	})
	require.NoError(t, err)
	require.NotNil(t, m)

	// 3100 over 31 days -> 100/day; 140 > 100 * 1.15 * 1.15
	require.NotNil(t, m.SpendTarget)
	assert.InDelta(t, 100.0, *m.SpendTarget, 0.001)
	require.NotNil(t, m.CTR)
	assert.InDelta(t, 0.30, *m.CTR, 1e-9)
	require.NotNil(t, m.AnomalyScore)
	assert.InDelta(t, 0.4, *m.AnomalyScore, 1e-9)

	require.NotNil(t, exported)
	assert.Equal(t, int64(7), exported.MetricID)
	assert.Equal(t, domain.ExportPending, exported.Status)
	assert.Equal(t, "2025-01-15", exported.Payload.MetricDate)
	assert.Equal(t, "USD", exported.Payload.Currency)

	require.Len(t, opened, 2)
	byType := map[domain.SignalType]domain.FraudSignal{}
	for _, s := range opened {
		byType[s.Type] = s
	}
	over, ok := byType[domain.SignalOverspend]
	require.True(t, ok)
	assert.Equal(t, domain.SeverityCritical, over.Severity)
	assert.Nil(t, over.ResolvedAt)
	ctr, ok := byType[domain.SignalSuspiciousCTR]
	require.True(t, ok)
	assert.Equal(t, domain.SeverityCritical, ctr.Severity)
}

// TestIngestResolvesClearedSignals re-ingests a clean day over an open
// overspend signal and expects the row to be resolved, not duplicated.
func TestIngestResolvesClearedSignals(t *testing.T) {
	repo := mocks.NewMockMetricRepository(t)
	store := mocks.NewMockIngestStore(t)
	c := testCampaign()
	expectTx(repo, store, c)

	metricDate := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	existing := &domain.DailyMetric{
		ID:         7,
		CampaignID: 1,
		MetricDate: metricDate,
		Metadata:   map[string]any{"source": "webhook"},
	}
	store.EXPECT().FindMetric(mock.Anything, mock.Anything).Return(existing, nil)
	store.EXPECT().SaveMetric(mock.Anything, mock.AnythingOfType("*domain.DailyMetric")).Return(nil)
	store.EXPECT().UpsertExport(mock.Anything, mock.AnythingOfType("*domain.AnalyticsExport")).Return(nil)

	store.EXPECT().ListSignals(mock.Anything, mock.Anything).Return([]domain.FraudSignal{{
		ID:         3,
		CampaignID: 1,
		MetricDate: metricDate,
		Type:       domain.SignalOverspend,
		Severity:   domain.SeverityCritical,
	}}, nil)

	var saved []domain.FraudSignal
	store.EXPECT().
		SaveSignal(mock.Anything, mock.AnythingOfType("*domain.FraudSignal")).
		Run(func(_ context.Context, s *domain.FraudSignal) { saved = append(saved, *s) }).
		Return(nil)

	svc := NewMetricUseCase(repo, nil, nil, testDetector())
	m, err := svc.Ingest(context.Background(), 1, port.IngestRequest{
		MetricDate:  metricDate,
		Impressions: 1000,
		Clicks:      50,
		Conversions: 5,
		Spend:       100,
		Revenue:     200,
		Metadata:    map[string]any{"restated": true},
	})
	require.NoError(t, err)

	// same row updated, metadata shallow-merged
	assert.Equal(t, int64(7), m.ID)
	assert.Equal(t, "webhook", m.Metadata["source"])
	assert.Equal(t, true, m.Metadata["restated"])

	require.Len(t, saved, 1)
	assert.Equal(t, int64(3), saved[0].ID)
	require.NotNil(t, saved[0].ResolvedAt)
	require.NotNil(t, saved[0].ResolutionNote)
	assert.Equal(t, "condition cleared", *saved[0].ResolutionNote)
}

// TestIngestClampsNegativeInputs verifies invalid counters and amounts are
// normalized to zero before persisting.
func TestIngestClampsNegativeInputs(t *testing.T) {
	repo := mocks.NewMockMetricRepository(t)
	store := mocks.NewMockIngestStore(t)
	c := testCampaign()
	expectTx(repo, store, c)

	store.EXPECT().FindMetric(mock.Anything, mock.Anything).Return(nil, nil)

	var saved *domain.DailyMetric
	store.EXPECT().
		SaveMetric(mock.Anything, mock.AnythingOfType("*domain.DailyMetric")).
		RunAndReturn(func(_ context.Context, m *domain.DailyMetric) error {
			m.ID = 8
			saved = m
			return nil
		})
	store.EXPECT().UpsertExport(mock.Anything, mock.AnythingOfType("*domain.AnalyticsExport")).Return(nil)
	store.EXPECT().ListSignals(mock.Anything, mock.Anything).Return(nil, nil)
	store.EXPECT().SaveSignal(mock.Anything, mock.AnythingOfType("*domain.FraudSignal")).Return(nil).Maybe()

	svc := NewMetricUseCase(repo, nil, nil, testDetector())
	_, err := svc.Ingest(context.Background(), 1, port.IngestRequest{
		MetricDate:  time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC),
		Impressions: -50,
		Clicks:      -1,
		Conversions: -1,
		Spend:       -12.5,
		Revenue:     -1,
	})
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Zero(t, saved.Impressions)
	assert.Zero(t, saved.Clicks)
	assert.Zero(t, saved.Conversions)
	assert.Zero(t, saved.Spend)
	assert.Zero(t, saved.Revenue)
}

// TestIngestRejectsForeignFlight aborts when the flight belongs to another
// campaign; nothing is persisted.
func TestIngestRejectsForeignFlight(t *testing.T) {
	repo := mocks.NewMockMetricRepository(t)
	store := mocks.NewMockIngestStore(t)
	c := testCampaign()
	expectTx(repo, store, c)

	flightID := int64(44)
	store.EXPECT().Flight(mock.Anything, flightID).Return(&domain.Flight{ID: flightID, CampaignID: 99}, nil)

	svc := NewMetricUseCase(repo, nil, nil, testDetector())
	_, err := svc.Ingest(context.Background(), 1, port.IngestRequest{
		FlightID:   &flightID,
		MetricDate: time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, port.ErrFlightMismatch)
}

func TestIngestRejectsZeroDate(t *testing.T) {
	svc := NewMetricUseCase(mocks.NewMockMetricRepository(t), nil, nil, testDetector())
	_, err := svc.Ingest(context.Background(), 1, port.IngestRequest{})
	assert.ErrorIs(t, err, port.ErrInvalidMetricDate)
}

// TestResolveSignalIdempotent returns the stored record unchanged when the
// signal is already resolved.
func TestResolveSignalIdempotent(t *testing.T) {
	signals := mocks.NewMockSignalRepository(t)

	resolvedAt := time.Date(2025, time.January, 20, 12, 0, 0, 0, time.UTC)
	note := "checked by ops"
	signals.EXPECT().Find(mock.Anything, int64(5)).Return(&domain.FraudSignal{
		ID:             5,
		Type:           domain.SignalSuspiciousCVR,
		ResolvedAt:     &resolvedAt,
		ResolutionNote: &note,
	}, nil)

	svc := NewMetricUseCase(nil, signals, nil, testDetector())
	sig, err := svc.ResolveSignal(context.Background(), 5, "another note")
	require.NoError(t, err)
	assert.Equal(t, resolvedAt, *sig.ResolvedAt)
	assert.Equal(t, note, *sig.ResolutionNote)
}

func TestResolveSignalNotFound(t *testing.T) {
	signals := mocks.NewMockSignalRepository(t)
	signals.EXPECT().Find(mock.Anything, int64(9)).Return(nil, nil)

	svc := NewMetricUseCase(nil, signals, nil, testDetector())
	_, err := svc.ResolveSignal(context.Background(), 9, "")
	assert.ErrorIs(t, err, port.ErrSignalNotFound)
}

func TestResolveSignalDelegates(t *testing.T) {
	signals := mocks.NewMockSignalRepository(t)
	open := &domain.FraudSignal{ID: 6, Type: domain.SignalDeliveryGap}
	signals.EXPECT().Find(mock.Anything, int64(6)).Return(open, nil)
	resolved := *open
	now := time.Now().UTC()
	resolved.ResolvedAt = &now
	signals.EXPECT().Resolve(mock.Anything, int64(6), "ops note", mock.AnythingOfType("time.Time")).Return(&resolved, nil)

	svc := NewMetricUseCase(nil, signals, nil, testDetector())
	sig, err := svc.ResolveSignal(context.Background(), 6, "ops note")
	require.NoError(t, err)
	assert.NotNil(t, sig.ResolvedAt)
}

func TestExportOverview(t *testing.T) {
	exports := mocks.NewMockExportRepository(t)
	exports.EXPECT().StatusCounts(mock.Anything).Return(map[domain.ExportStatus]int64{
		domain.ExportPending: 3,
		domain.ExportFailed:  1,
	}, nil)

	svc := NewMetricUseCase(nil, nil, exports, testDetector())
	overview, err := svc.ExportOverview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, port.ExportOverview{Pending: 3, Sent: 0, Failed: 1}, overview)
}
