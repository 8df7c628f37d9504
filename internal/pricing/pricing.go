package pricing

import "time"

// Tier is the discount band applied to a billed duration.
type Tier string

const (
	TierNone     Tier = ""
	TierStandard Tier = "standard"
	TierHalfDay  Tier = "half_day"
	TierExtended Tier = "extended"
)

func (t Tier) Label() string {
	switch t {
	case TierStandard:
		return "Standard Rate (1-3 hours)"
	case TierHalfDay:
		return "Half Day Discount (3-6 hours)"
	case TierExtended:
		return "Extended Stay Discount (6+ hours)"
	default:
		return ""
	}
}

// Tier breakpoints and discounts, in billed hours and currency units.
const (
	halfDayHours     = 3
	extendedHours    = 6
	halfDayDiscount  = 5
	halfDayFloor     = 18
	extendedDiscount = 10
	extendedFloor    = 15
)

// Estimate is the priced result for one lot and time range. It is
// recomputed on every input change and never stored on its own.
type Estimate struct {
	Hours         int  `json:"total_hours"`
	EffectiveRate int  `json:"effective_rate"`
	Total         int  `json:"total_price"`
	Tier          Tier `json:"tier"`
}

// Quote converts an hourly rate and a time range into a billed duration and
// tiered total. Partial hours always round up. A range where end is not
// after start yields the zero Estimate: that is a defined "incomplete
// selection" state, not an error.
//
// Quote is the single pricing implementation; the estimator preview and the
// booking workflow both call it, so the previewed price always equals the
// billed price.
func Quote(hourlyRate int, start, end time.Time) Estimate {
	if !end.After(start) {
		return Estimate{}
	}

	d := end.Sub(start)
	hours := int(d / time.Hour)
	if d%time.Hour > 0 {
		hours++
	}

	rate := hourlyRate
	tier := TierStandard
	switch {
	case hours > extendedHours:
		rate = max(extendedFloor, hourlyRate-extendedDiscount)
		tier = TierExtended
	case hours > halfDayHours:
		rate = max(halfDayFloor, hourlyRate-halfDayDiscount)
		tier = TierHalfDay
	}

	return Estimate{
		Hours:         hours,
		EffectiveRate: rate,
		Total:         hours * rate,
		Tier:          tier,
	}
}
