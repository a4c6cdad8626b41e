// Package effort estimates project effort, timeline, and cost from a list of
// deliverable phrases. Each deliverable is classified into a complexity tier
// by keyword matching, base hours are summed, and a multiplicative stack of
// project-type and context factors is applied. The estimator is a pure
// function of its inputs: identical inputs always produce identical output.
package effort

import (
	"fmt"
	"math"
	"strings"

	"github.com/ahale/go-scoper/internal/domain"
)

// Tier is the complexity bucket assigned to a single deliverable.
type Tier string

const (
	// TierSimple covers small self-contained features like a login page.
	TierSimple Tier = "simple"

	// TierMedium covers features with moderate integration work, and is the
	// default when no keyword matches.
	TierMedium Tier = "medium"

	// TierComplex covers features with significant backend or data work.
	TierComplex Tier = "complex"

	// TierVeryComplex covers whole subsystems: multiple complex aspects, or a
	// system/platform phrase with a complex aspect.
	TierVeryComplex Tier = "very_complex"
)

// Base hours per tier.
const (
	hoursSimple      = 50
	hoursMedium      = 150
	hoursComplex     = 300
	hoursVeryComplex = 500
)

// Timeline thresholds: under 8 weeks the label is in whole weeks, otherwise
// in months rounded to one decimal.
const monthsLabelThresholdWeeks = 8

// Estimator derives effort estimates from deliverables. It is stateless and
// safe for concurrent use.
type Estimator struct{}

// NewEstimator creates an effort estimator.
func NewEstimator() *Estimator { return &Estimator{} }

// Estimate classifies every deliverable, sums base hours, applies the
// multiplier stack, and derives the timeline label and cost range. When the
// floored total collapses to zero or below, the fixed minimum estimate is
// returned instead of the normal formulas. Callers skip the estimator
// entirely for an empty deliverables list; invoked on one anyway, it also
// yields the minimum estimate.
func (e *Estimator) Estimate(deliverables []string, projectType, rawUserText string) domain.EffortEstimate {
	mvp := isMVPContext(rawUserText)

	baseHours := 0
	for _, d := range deliverables {
		_, hours := ClassifyDeliverable(d, mvp)
		baseHours += hours
	}

	totalHours := int(math.Floor(float64(baseHours) * Multiplier(projectType, rawUserText)))
	if totalHours <= 0 {
		return domain.MinimumEffortEstimate()
	}

	low := domain.Dollars(totalHours * domain.HourlyRateLow)
	high := domain.Dollars(totalHours * domain.HourlyRateHigh)

	return domain.EffortEstimate{
		TotalHours:    totalHours,
		TimelineLabel: TimelineLabel(totalHours),
		CostRangeLow:  low,
		CostRangeHigh: high,
		CostLabel:     fmt.Sprintf("%s - %s", low, high),
	}
}

// ClassifyDeliverable assigns a complexity tier and its base hours to one
// deliverable phrase. Matching is case-insensitive substring containment:
//
//   - very-complex: 2+ distinct complex keywords, or a "system"/"platform"
//     phrase with at least one complex keyword
//   - complex: at least one complex keyword
//   - medium: at least one medium keyword, and the default with no match
//   - simple: at least one simple keyword
//
// In MVP context very-complex downgrades to complex and complex to medium
// before hours are assigned.
func ClassifyDeliverable(phrase string, mvpContext bool) (Tier, int) {
	lower := strings.ToLower(phrase)

	complexMatches := countMatches(lower, complexKeywords)
	hasSystemWord := containsAny(lower, systemWords)

	switch {
	case complexMatches >= 2 || (hasSystemWord && complexMatches >= 1):
		if mvpContext {
			return TierComplex, hoursComplex
		}
		return TierVeryComplex, hoursVeryComplex
	case complexMatches >= 1:
		if mvpContext {
			return TierMedium, hoursMedium
		}
		return TierComplex, hoursComplex
	case containsAny(lower, mediumKeywords):
		return TierMedium, hoursMedium
	case containsAny(lower, simpleKeywords):
		return TierSimple, hoursSimple
	default:
		return TierMedium, hoursMedium
	}
}

// Multiplier returns the product of the project-type base factor and every
// context factor whose keyword group appears in the raw user text. The stack
// is order-independent and uncapped.
func Multiplier(projectType, rawUserText string) float64 {
	multiplier := 1.0

	if projectType != "" {
		typeLower := strings.ToLower(projectType)
		for _, tm := range typeMultipliers {
			if strings.Contains(typeLower, tm.substr) {
				multiplier = tm.factor
				break
			}
		}
	}

	if rawUserText != "" {
		rawLower := strings.ToLower(rawUserText)
		for _, cf := range contextFactors {
			if containsAny(rawLower, cf.keywords) {
				multiplier *= cf.factor
			}
		}
	}

	return multiplier
}

// TimelineLabel converts total hours into a human-readable duration at one
// developer working 40-hour weeks: whole weeks under 8 weeks, otherwise
// months rounded to one decimal.
func TimelineLabel(totalHours int) string {
	weeks := float64(totalHours) / domain.HoursPerWeek
	if weeks < monthsLabelThresholdWeeks {
		return fmt.Sprintf("%d weeks", int(weeks))
	}
	months := math.Round(weeks/domain.WeeksPerMonth*10) / 10
	return fmt.Sprintf("%.1f months", months)
}

// isMVPContext reports whether the raw user text signals a reduced-scope
// build, triggering tier downgrades.
func isMVPContext(rawUserText string) bool {
	if rawUserText == "" {
		return false
	}
	return containsAny(strings.ToLower(rawUserText), mvpKeywords)
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func countMatches(haystack string, needles []string) int {
	count := 0
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			count++
		}
	}
	return count
}
