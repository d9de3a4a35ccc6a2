package domain

import "time"

// MetricKey uniquely identifies a daily metric. FlightID is nil for
// campaign-level metrics. MetricDate is normalized to UTC midnight.
type MetricKey struct {
	CampaignID int64
	FlightID   *int64
	MetricDate time.Time
}

// DailyMetric is one day of delivery performance for a campaign or flight.
// The raw counters come from the ingestion report; SpendTarget, CTR, CVR and
// AnomalyScore are derived during ingestion and stay nil until computed.
// Re-ingestion of the same key overwrites the row rather than duplicating it.
type DailyMetric struct {
	ID          int64
	CampaignID  int64
	FlightID    *int64
	MetricDate  time.Time
	Impressions int64
	Clicks      int64
	Conversions int64
	Spend       float64
	Revenue     float64

	SpendTarget  *float64
	CTR          *float64
	CVR          *float64
	AnomalyScore *float64

	Metadata   map[string]any
	ExportedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Key returns the metric's uniqueness key.
func (m *DailyMetric) Key() MetricKey {
	return MetricKey{CampaignID: m.CampaignID, FlightID: m.FlightID, MetricDate: m.MetricDate}
}
