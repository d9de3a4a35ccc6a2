package anomaly

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacewatch/internal/core/domain"
)

func defaults() Config {
	return Config{
		OverspendTolerance:         0.15,
		UnderspendTolerance:        0.25,
		SuspiciousCTRThreshold:     0.18,
		SuspiciousCVRThreshold:     0.45,
		DeliveryGapImpressionFloor: 100,
		NoSpendGraceDays:           2,
	}
}

func day(d int) time.Time {
	return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC)
}

func fptr(v float64) *float64 { return &v }

func findOpen(t *testing.T, res Result, typ domain.SignalType) Finding {
	t.Helper()
	for _, f := range res.Open {
		if f.Type == typ {
			return f
		}
	}
	t.Fatalf("expected %s to be opened, got %v", typ, res.Open)
	return Finding{}
}

func TestSuspiciousCTRCritical(t *testing.T) {
	// ctr 0.30 > 1.5 * 0.18 -> critical
	res := Evaluate(Input{
		Impressions: 1000,
		Clicks:      300,
		Spend:       90,
		MetricDate:  day(10),
		PeriodStart: day(1),
		SpendTarget: fptr(100),
	}, defaults())

	assert.InDelta(t, 0.30, res.CTR, 1e-9)
	f := findOpen(t, res, domain.SignalSuspiciousCTR)
	assert.Equal(t, domain.SeverityCritical, f.Severity)
}

func TestDeliveryGapWarning(t *testing.T) {
	res := Evaluate(Input{
		Impressions: 10,
		Spend:       50,
		MetricDate:  day(10),
		PeriodStart: day(1),
		SpendTarget: fptr(100),
	}, defaults())

	f := findOpen(t, res, domain.SignalDeliveryGap)
	assert.Equal(t, domain.SeverityWarning, f.Severity)
}

func TestOverspendSeverityBoundary(t *testing.T) {
	cfg := defaults()
	target := 100.0

	// just above 115 -> warning
	res := Evaluate(Input{Impressions: 1000, Spend: 120, MetricDate: day(10), PeriodStart: day(1), SpendTarget: &target}, cfg)
	f := findOpen(t, res, domain.SignalOverspend)
	assert.Equal(t, domain.SeverityWarning, f.Severity)

	// above 1.15 * 115 = 132.25 -> critical
	res = Evaluate(Input{Impressions: 1000, Spend: 140, MetricDate: day(10), PeriodStart: day(1), SpendTarget: &target}, cfg)
	f = findOpen(t, res, domain.SignalOverspend)
	assert.Equal(t, domain.SeverityCritical, f.Severity)
}

func TestUnderspendOpensAndResolves(t *testing.T) {
	cfg := defaults()
	target := 100.0

	res := Evaluate(Input{Impressions: 1000, Spend: 50, MetricDate: day(10), PeriodStart: day(1), SpendTarget: &target}, cfg)
	f := findOpen(t, res, domain.SignalUnderspend)
	assert.Equal(t, domain.SeverityWarning, f.Severity)

	res = Evaluate(Input{Impressions: 1000, Spend: 90, MetricDate: day(10), PeriodStart: day(1), SpendTarget: &target}, cfg)
	assert.Contains(t, res.Resolve, domain.SignalUnderspend)
}

func TestNoSpendRespectsGraceDays(t *testing.T) {
	cfg := defaults()

	// day 2 of the period: inside grace, no signal
	res := Evaluate(Input{MetricDate: day(3), PeriodStart: day(1), SpendTarget: fptr(10)}, cfg)
	for _, f := range res.Open {
		require.NotEqual(t, domain.SignalNoSpend, f.Type)
	}

	// day 4 of the period: past grace, zero spend flags
	res = Evaluate(Input{MetricDate: day(5), PeriodStart: day(1), SpendTarget: fptr(10)}, cfg)
	findOpen(t, res, domain.SignalNoSpend)
}

func TestNilTargetSkipsPacingSignals(t *testing.T) {
	res := Evaluate(Input{Impressions: 1000, Spend: 5000, MetricDate: day(10), PeriodStart: day(1)}, defaults())

	for _, f := range res.Open {
		assert.NotEqual(t, domain.SignalOverspend, f.Type)
		assert.NotEqual(t, domain.SignalUnderspend, f.Type)
	}
	assert.NotContains(t, res.Resolve, domain.SignalOverspend)
	assert.NotContains(t, res.Resolve, domain.SignalUnderspend)
}

func TestZeroDenominatorsYieldZeroRates(t *testing.T) {
	res := Evaluate(Input{MetricDate: day(2), PeriodStart: day(1), SpendTarget: fptr(10)}, defaults())
	assert.Zero(t, res.CTR)
	assert.Zero(t, res.CVR)
}

func TestAnomalyScoreBounded(t *testing.T) {
	// worst case opens several signals at once; score stays within [0, 1]
	// and equals openCount/5 below the cap.
	res := Evaluate(Input{
		Impressions: 10,
		Clicks:      9,
		Conversions: 9,
		Spend:       10000,
		MetricDate:  day(20),
		PeriodStart: day(1),
		SpendTarget: fptr(10),
	}, defaults())

	require.NotEmpty(t, res.Open)
	assert.GreaterOrEqual(t, res.AnomalyScore, 0.0)
	assert.LessOrEqual(t, res.AnomalyScore, 1.0)
	assert.InDelta(t, float64(len(res.Open))/5, res.AnomalyScore, 1e-9)
}
