package domain

import "time"

// PacingStrategy describes how a period's budget is expected to be spent
// over time.
type PacingStrategy string

const (
	PacingEven        PacingStrategy = "even"
	PacingAccelerated PacingStrategy = "accelerated"
	PacingCapped      PacingStrategy = "capped"
)

// Campaign represents an advertising campaign. Budgets are stored as
// decimal currency amounts. The pipeline treats campaigns as read-only
// context supplied by the surrounding system; only derived metric state
// is ever written back.
type Campaign struct {
	ID             int64
	AccountID      int64
	Name           string
	Currency       string
	TotalBudget    float64
	DailySpendCap  *float64
	StartAt        time.Time
	EndAt          time.Time
	PacingStrategy PacingStrategy
	Objective      string
	Status         string // active, paused, ended
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Flight is a budgeted sub-period of a campaign with its own schedule and
// optional daily spend cap. A metric belongs to at most one flight.
type Flight struct {
	ID            int64
	CampaignID    int64
	Name          string
	TotalBudget   float64
	DailySpendCap *float64
	StartAt       time.Time
	EndAt         time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
