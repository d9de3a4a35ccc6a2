package pacing

import (
	"math"
	"time"

	"pacewatch/internal/core/domain"
)

// Target computes the expected spend for one day of a campaign, or of a
// flight when one is given. An explicit daily spend cap on the active period
// wins outright; otherwise the period's total budget is spread evenly across
// its days. The second return value is false when no target is computable
// (no cap and a non-positive budget), in which case callers must leave
// pacing-related signal state untouched.
func Target(c *domain.Campaign, f *domain.Flight, metricDate time.Time) (float64, bool) {
	dailyCap, budget, start, end := periodContext(c, f)
	if dailyCap != nil {
		return *dailyCap, true
	}
	if budget <= 0 {
		return 0, false
	}

	totalDays := int64(math.Ceil(end.Sub(start).Hours() / 24))
	if totalDays < 1 {
		totalDays = 1
	}

	// 1-indexed offset of metricDate within the schedule, clamped to
	// [1, totalDays]. Even pacing does not use it beyond the clamp.
	// TODO: accelerated and capped strategies still pace evenly; front-loaded
	// curves need a product decision on the multiplier.
	daysElapsed := int64(metricDate.Sub(start).Hours()/24) + 1
	if daysElapsed < 1 {
		daysElapsed = 1
	}
	if daysElapsed > totalDays {
		daysElapsed = totalDays
	}
	_ = daysElapsed

	return budget / float64(totalDays), true
}

// periodContext picks the active period: the flight's when present, the
// campaign's otherwise.
func periodContext(c *domain.Campaign, f *domain.Flight) (dailyCap *float64, budget float64, start, end time.Time) {
	if f != nil {
		return f.DailySpendCap, f.TotalBudget, f.StartAt, f.EndAt
	}
	return c.DailySpendCap, c.TotalBudget, c.StartAt, c.EndAt
}

// PeriodStart returns the start of the active period, used for the
// days-active calculation in anomaly evaluation.
func PeriodStart(c *domain.Campaign, f *domain.Flight) time.Time {
	if f != nil {
		return f.StartAt
	}
	return c.StartAt
}
