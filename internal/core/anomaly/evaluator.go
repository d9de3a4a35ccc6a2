package anomaly

import (
	"time"

	"pacewatch/internal/core/domain"
)

// Config bundles the detection thresholds. Zero values are not meaningful;
// construct it from configuration defaults.
type Config struct {
	OverspendTolerance         float64
	UnderspendTolerance        float64
	SuspiciousCTRThreshold     float64
	SuspiciousCVRThreshold     float64
	DeliveryGapImpressionFloor int64
	NoSpendGraceDays           int
}

// Input is a normalized daily metric plus the context needed by the
// heuristics. SpendTarget is nil when no target was computable, which
// disables the overspend/underspend checks entirely.
type Input struct {
	Impressions int64
	Clicks      int64
	Conversions int64
	Spend       float64
	MetricDate  time.Time
	PeriodStart time.Time
	SpendTarget *float64
}

// Finding is one signal the evaluator wants opened (or refreshed).
type Finding struct {
	Type     domain.SignalType
	Severity domain.Severity
	Metadata map[string]any
}

// Result carries the signals to open, the signal types whose condition has
// cleared, and the derived metric fields.
type Result struct {
	Open         []Finding
	Resolve      []domain.SignalType
	CTR          float64
	CVR          float64
	AnomalyScore float64
}

// Evaluate runs every heuristic independently against one metric. A metric
// may open several signals at once. Types absent from both Open and Resolve
// keep whatever signal state they had before.
func Evaluate(in Input, cfg Config) Result {
	var res Result

	res.CTR = ratio(in.Clicks, in.Impressions)
	res.CVR = ratio(in.Conversions, in.Clicks)

	if in.SpendTarget != nil {
		target := *in.SpendTarget

		overLimit := target * (1 + cfg.OverspendTolerance)
		if in.Spend > overLimit {
			sev := domain.SeverityWarning
			if in.Spend > overLimit*1.15 {
				sev = domain.SeverityCritical
			}
			res.Open = append(res.Open, Finding{
				Type:     domain.SignalOverspend,
				Severity: sev,
				Metadata: map[string]any{"spend": in.Spend, "spend_target": target, "limit": overLimit},
			})
		} else {
			res.Resolve = append(res.Resolve, domain.SignalOverspend)
		}

		underLimit := target * (1 - cfg.UnderspendTolerance)
		if target > 0 && in.Spend < underLimit {
			res.Open = append(res.Open, Finding{
				Type:     domain.SignalUnderspend,
				Severity: domain.SeverityWarning,
				Metadata: map[string]any{"spend": in.Spend, "spend_target": target, "limit": underLimit},
			})
		} else {
			res.Resolve = append(res.Resolve, domain.SignalUnderspend)
		}
	}

	if res.CTR > cfg.SuspiciousCTRThreshold {
		sev := domain.SeverityWarning
		if res.CTR > cfg.SuspiciousCTRThreshold*1.5 {
			sev = domain.SeverityCritical
		}
		res.Open = append(res.Open, Finding{
			Type:     domain.SignalSuspiciousCTR,
			Severity: sev,
			Metadata: map[string]any{"ctr": res.CTR, "threshold": cfg.SuspiciousCTRThreshold},
		})
	} else {
		res.Resolve = append(res.Resolve, domain.SignalSuspiciousCTR)
	}

	if res.CVR > cfg.SuspiciousCVRThreshold {
		sev := domain.SeverityWarning
		if res.CVR > cfg.SuspiciousCVRThreshold*1.5 {
			sev = domain.SeverityCritical
		}
		res.Open = append(res.Open, Finding{
			Type:     domain.SignalSuspiciousCVR,
			Severity: sev,
			Metadata: map[string]any{"cvr": res.CVR, "threshold": cfg.SuspiciousCVRThreshold},
		})
	} else {
		res.Resolve = append(res.Resolve, domain.SignalSuspiciousCVR)
	}

	if in.Spend > 0 && in.Impressions < cfg.DeliveryGapImpressionFloor {
		res.Open = append(res.Open, Finding{
			Type:     domain.SignalDeliveryGap,
			Severity: domain.SeverityWarning,
			Metadata: map[string]any{"impressions": in.Impressions, "floor": cfg.DeliveryGapImpressionFloor, "spend": in.Spend},
		})
	} else {
		res.Resolve = append(res.Resolve, domain.SignalDeliveryGap)
	}

	daysActive := int(in.MetricDate.Sub(in.PeriodStart).Hours() / 24)
	if daysActive < 0 {
		daysActive = 0
	}
	if daysActive > cfg.NoSpendGraceDays && in.Spend == 0 {
		res.Open = append(res.Open, Finding{
			Type:     domain.SignalNoSpend,
			Severity: domain.SeverityWarning,
			Metadata: map[string]any{"days_active": daysActive, "grace_days": cfg.NoSpendGraceDays},
		})
	} else {
		res.Resolve = append(res.Resolve, domain.SignalNoSpend)
	}

	res.AnomalyScore = float64(len(res.Open)) / 5
	if res.AnomalyScore > 1 {
		res.AnomalyScore = 1
	}

	return res
}

func ratio(num, den int64) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
