package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2024, 3, 15, hour, min, 0, 0, time.UTC)
}

func TestQuoteInvalidRange(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
	}{
		{"end equals start", at(10, 0), at(10, 0)},
		{"end before start", at(14, 0), at(10, 0)},
		{"zero times", time.Time{}, time.Time{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			est := Quote(25, tc.start, tc.end)
			assert.Equal(t, 0, est.Hours)
			assert.Equal(t, 0, est.Total)
			assert.Equal(t, TierNone, est.Tier)
		})
	}
}

func TestQuoteRoundsPartialHoursUp(t *testing.T) {
	est := Quote(20, at(10, 0), at(10, 1))
	assert.Equal(t, 1, est.Hours)

	est = Quote(20, at(10, 0), at(12, 30))
	assert.Equal(t, 3, est.Hours)

	est = Quote(20, at(10, 0), at(13, 0))
	assert.Equal(t, 3, est.Hours)
}

func TestQuoteTierBoundaries(t *testing.T) {
	const rate = 25
	cases := []struct {
		hours    int
		wantRate int
		wantTier Tier
	}{
		{2, 25, TierStandard},
		{3, 25, TierStandard}, // boundary: 3h still standard
		{4, 20, TierHalfDay},  // max(18, 25-5)
		{5, 20, TierHalfDay},
		{6, 20, TierHalfDay}, // boundary: 6h still half-day
		{7, 15, TierExtended},
		{8, 15, TierExtended},
	}
	for _, tc := range cases {
		est := Quote(rate, at(8, 0), at(8+tc.hours, 0))
		assert.Equal(t, tc.hours, est.Hours, "hours for %dh", tc.hours)
		assert.Equal(t, tc.wantRate, est.EffectiveRate, "rate for %dh", tc.hours)
		assert.Equal(t, tc.wantTier, est.Tier, "tier for %dh", tc.hours)
		assert.Equal(t, tc.hours*tc.wantRate, est.Total, "total for %dh", tc.hours)
	}
}

func TestQuoteRateFloors(t *testing.T) {
	// Cheap lots never drop below the tier floor.
	est := Quote(16, at(8, 0), at(16, 0)) // 8h extended: max(15, 16-10) = 15
	assert.Equal(t, 15, est.EffectiveRate)

	est = Quote(20, at(10, 0), at(14, 0)) // 4h half-day: max(18, 20-5) = 18
	assert.Equal(t, 18, est.EffectiveRate)
	assert.Equal(t, 72, est.Total)
}

func TestQuoteWorkedExample(t *testing.T) {
	// 25/hour, 09:00-17:00: 8 billed hours at the extended rate.
	est := Quote(25, at(9, 0), at(17, 0))
	assert.Equal(t, 8, est.Hours)
	assert.Equal(t, 15, est.EffectiveRate)
	assert.Equal(t, 120, est.Total)
	assert.Equal(t, TierExtended, est.Tier)
}

func TestTierLabels(t *testing.T) {
	assert.Equal(t, "Standard Rate (1-3 hours)", TierStandard.Label())
	assert.Equal(t, "Half Day Discount (3-6 hours)", TierHalfDay.Label())
	assert.Equal(t, "Extended Stay Discount (6+ hours)", TierExtended.Label())
	assert.Equal(t, "", TierNone.Label())
}
