package domain

import "time"

// SignalType identifies a fraud/anomaly heuristic.
type SignalType string

const (
	SignalOverspend     SignalType = "overspend"
	SignalUnderspend    SignalType = "underspend"
	SignalSuspiciousCTR SignalType = "suspicious_ctr"
	SignalSuspiciousCVR SignalType = "suspicious_cvr"
	SignalDeliveryGap   SignalType = "delivery_gap"
	SignalNoSpend       SignalType = "no_spend"
)

// Severity grades an open signal.
type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// FraudSignal is a flagged anomaly tied to one campaign/flight/day/type.
// At most one row exists per key and type: reopening re-uses the row by
// clearing ResolvedAt and refreshing DetectedAt/metadata.
type FraudSignal struct {
	ID             int64
	CampaignID     int64
	FlightID       *int64
	MetricDate     time.Time
	Type           SignalType
	Severity       Severity
	Metadata       map[string]any
	DetectedAt     time.Time
	ResolvedAt     *time.Time
	ResolutionNote *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Resolved reports whether the signal is currently resolved.
func (s *FraudSignal) Resolved() bool { return s.ResolvedAt != nil }
