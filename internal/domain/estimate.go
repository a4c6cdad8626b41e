package domain

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Dollars is a whole-dollar amount. Its string form carries a currency
// symbol and comma grouping ("$43,200").
type Dollars int64

// String formats the amount for display in labels and warning messages.
func (d Dollars) String() string {
	return "$" + humanize.Comma(int64(d))
}

// Effort and rate constants shared across estimation and consistency checks.
const (
	// HourlyRateLow and HourlyRateHigh bound the blended development rate
	// that converts estimated hours into a cost range.
	HourlyRateLow  = 80
	HourlyRateHigh = 120

	// HoursPerWeek and WeeksPerMonth convert total hours into timeline
	// labels; HoursPerMonth is their product, the capacity of one
	// full-time developer month.
	HoursPerWeek  = 40
	WeeksPerMonth = 4
	HoursPerMonth = HoursPerWeek * WeeksPerMonth
)

// Fixed fallback estimate returned when estimation nets zero or fewer hours.
const (
	MinimumEstimateHours         = 40
	MinimumTimelineLabel         = "1-2 weeks (minimum estimate)"
	MinimumCostLabel             = "$2,000-$8,000 (minimum estimate)"
	MinimumCostLow       Dollars = 2_000
	MinimumCostHigh      Dollars = 8_000
)

// EffortEstimate is the calculator stage's output: total hours, a derived
// timeline label, and a cost range at the blended rate bounds.
type EffortEstimate struct {
	// TotalHours is the floored product of base hours and the multiplier
	// stack.
	TotalHours int `json:"total_hours"`

	// TimelineLabel renders the timeline as integer weeks under two
	// months, otherwise months to one decimal.
	TimelineLabel string `json:"timeline_label"`

	// CostRangeLow and CostRangeHigh bound the cost at the low and high
	// hourly rates.
	CostRangeLow  Dollars `json:"cost_range_low"`
	CostRangeHigh Dollars `json:"cost_range_high"`

	// CostLabel is the display form of the cost range.
	CostLabel string `json:"cost_label"`

	// MinimumEstimate marks the fixed fallback produced when estimation
	// collapsed to zero hours.
	MinimumEstimate bool `json:"minimum_estimate,omitempty"`
}

// Validate checks internal consistency of the estimate fields.
func (e EffortEstimate) Validate() error {
	if e.TotalHours < 0 {
		return fmt.Errorf("%w: negative total hours %d", ErrInvalidEstimate, e.TotalHours)
	}
	if e.CostRangeLow > e.CostRangeHigh {
		return fmt.Errorf("%w: cost range inverted (%s > %s)",
			ErrInvalidEstimate, e.CostRangeLow, e.CostRangeHigh)
	}
	if e.TimelineLabel == "" {
		return fmt.Errorf("%w: missing timeline label", ErrInvalidEstimate)
	}
	if e.CostLabel == "" {
		return fmt.Errorf("%w: missing cost label", ErrInvalidEstimate)
	}
	return nil
}

// CostMidpoint returns the midpoint of the cost range, used as the budget
// stand-in when no explicit budget hint is available.
func (e EffortEstimate) CostMidpoint() Dollars {
	return (e.CostRangeLow + e.CostRangeHigh) / 2
}

// MinimumEffortEstimate returns the fixed fallback triple used when normal
// estimation nets zero or fewer hours.
func MinimumEffortEstimate() EffortEstimate {
	return EffortEstimate{
		TotalHours:      MinimumEstimateHours,
		TimelineLabel:   MinimumTimelineLabel,
		CostRangeLow:    MinimumCostLow,
		CostRangeHigh:   MinimumCostHigh,
		CostLabel:       MinimumCostLabel,
		MinimumEstimate: true,
	}
}
