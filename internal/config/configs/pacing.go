package configs

// Pacing holds the anomaly-detection thresholds. Tolerances and thresholds
// are fractions; e.g. an overspend tolerance of 0.15 flags spend above 115%
// of the day's target.
type Pacing struct {
	OverspendTolerance         float64 `env:"OVERSPEND_TOLERANCE" envDefault:"0.15"`
	UnderspendTolerance        float64 `env:"UNDERSPEND_TOLERANCE" envDefault:"0.25"`
	SuspiciousCTRThreshold     float64 `env:"SUSPICIOUS_CTR_THRESHOLD" envDefault:"0.18"`
	SuspiciousCVRThreshold     float64 `env:"SUSPICIOUS_CVR_THRESHOLD" envDefault:"0.45"`
	DeliveryGapImpressionFloor int64   `env:"DELIVERY_GAP_IMPRESSION_FLOOR" envDefault:"100"`
	NoSpendGraceDays           int     `env:"NO_SPEND_GRACE_DAYS" envDefault:"2"`
}
