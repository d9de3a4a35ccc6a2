package pacing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacewatch/internal/core/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTargetEvenPacing(t *testing.T) {
	// 3000 over 31 days -> ~96.77 per day regardless of which day is asked.
	c := &domain.Campaign{
		TotalBudget: 3000,
		StartAt:     date(2025, time.January, 1),
		EndAt:       date(2025, time.February, 1),
	}

	target, ok := Target(c, nil, date(2025, time.January, 15))
	require.True(t, ok)
	assert.InDelta(t, 3000.0/31, target, 0.001)

	// day offset does not change the even target
	first, _ := Target(c, nil, date(2025, time.January, 1))
	last, _ := Target(c, nil, date(2025, time.January, 31))
	assert.Equal(t, target, first)
	assert.Equal(t, target, last)
}

func TestTargetDailyCapWins(t *testing.T) {
	cap := 42.5
	c := &domain.Campaign{
		TotalBudget:   3000,
		DailySpendCap: &cap,
		StartAt:       date(2025, time.January, 1),
		EndAt:         date(2025, time.February, 1),
	}

	target, ok := Target(c, nil, date(2025, time.January, 15))
	require.True(t, ok)
	assert.Equal(t, 42.5, target)
}

func TestTargetFlightOverridesCampaign(t *testing.T) {
	c := &domain.Campaign{
		TotalBudget: 10000,
		StartAt:     date(2025, time.January, 1),
		EndAt:       date(2025, time.March, 1),
	}
	f := &domain.Flight{
		TotalBudget: 500,
		StartAt:     date(2025, time.January, 10),
		EndAt:       date(2025, time.January, 20),
	}

	target, ok := Target(c, f, date(2025, time.January, 12))
	require.True(t, ok)
	assert.InDelta(t, 50.0, target, 0.001) // 500 over 10 days
}

func TestTargetZeroLengthPeriod(t *testing.T) {
	day := date(2025, time.January, 5)
	c := &domain.Campaign{TotalBudget: 120, StartAt: day, EndAt: day}

	target, ok := Target(c, nil, day)
	require.True(t, ok)
	assert.Equal(t, 120.0, target) // totalDays floored at 1
}

func TestTargetClampsOutOfPeriodDates(t *testing.T) {
	c := &domain.Campaign{
		TotalBudget: 310,
		StartAt:     date(2025, time.January, 1),
		EndAt:       date(2025, time.February, 1),
	}

	before, ok := Target(c, nil, date(2024, time.December, 1))
	require.True(t, ok)
	after, ok2 := Target(c, nil, date(2025, time.June, 1))
	require.True(t, ok2)
	assert.Equal(t, before, after)
	assert.InDelta(t, 10.0, before, 0.001)
}

func TestTargetNotComputable(t *testing.T) {
	c := &domain.Campaign{
		TotalBudget: 0,
		StartAt:     date(2025, time.January, 1),
		EndAt:       date(2025, time.February, 1),
	}

	_, ok := Target(c, nil, date(2025, time.January, 15))
	assert.False(t, ok)
}
