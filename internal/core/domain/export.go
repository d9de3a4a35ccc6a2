package domain

import "time"

// ExportStatus is the delivery state of an analytics export record.
type ExportStatus string

const (
	ExportPending ExportStatus = "pending"
	ExportSent    ExportStatus = "sent"
	ExportFailed  ExportStatus = "failed"
)

// ExportPayload is the flattened, warehouse-friendly snapshot shipped to the
// external analytics sink. It is frozen at ingestion time: every re-ingestion
// replaces it wholesale, so delivery always reflects the latest ingested
// state of the day.
type ExportPayload struct {
	CampaignID     int64    `json:"campaign_id"`
	FlightID       *int64   `json:"flight_id,omitempty"`
	AccountID      int64    `json:"account_id"`
	MetricDate     string   `json:"metric_date"`
	Impressions    int64    `json:"impressions"`
	Clicks         int64    `json:"clicks"`
	Conversions    int64    `json:"conversions"`
	Spend          float64  `json:"spend"`
	Revenue        float64  `json:"revenue"`
	SpendTarget    *float64 `json:"spend_target,omitempty"`
	CTR            *float64 `json:"ctr,omitempty"`
	CVR            *float64 `json:"cvr,omitempty"`
	AnomalyScore   *float64 `json:"anomaly_score,omitempty"`
	Currency       string   `json:"currency"`
	CampaignStatus string   `json:"campaign_status"`
	PacingStrategy string   `json:"pacing_strategy"`
	Objective      string   `json:"objective"`
}

// AnalyticsExport is the durable, one-to-one-with-a-metric representation of
// "this day's metric needs to reach the warehouse". Ingestion always resets
// it to pending; the forwarder moves it to sent or failed.
type AnalyticsExport struct {
	ID            int64
	MetricID      int64
	Payload       ExportPayload
	Status        ExportStatus
	LastAttemptAt *time.Time
	LastError     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
