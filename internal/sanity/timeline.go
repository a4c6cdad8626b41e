package sanity

import (
	"fmt"
	"strings"

	"github.com/ahale/go-scoper/internal/domain"
)

// Timeline-feasibility thresholds.
const (
	ecommerceMaxAggressiveMonths = 1.0 // at or under this, e-commerce scope is unrealistic
	aggressiveMonthsFloor        = 1.0 // under a month with 3+ deliverables
	tightTimelineMonths          = 2.0 // under this with many deliverables
	tightDeliverableCount        = 5
	parallelDevHoursFloor        = 800 // beyond this, short timelines imply parallel teams
	parallelDevMaxMonths         = 2.0
	overlongHoursCeiling         = 200 // small efforts with long timelines look padded
	overlongMonthsFloor          = 6.0
	timelineUnderExpectedRatio   = 0.4
	timelineOverExpectedRatio    = 2.5
)

var ecommerceScopeTokens = []string{"e-commerce", "ecommerce", "platform", "marketplace"}

// checkTimeline emits timeline-feasibility warnings in two passes: scope
// checks against the deliverable count first, then alignment against the
// estimated hours. The timeline comes from the explicit hint, the estimate's
// derived label, or (for the scope pass only) patterns recovered from the
// raw user text.
func checkTimeline(facts domain.ProjectFacts, estimate *domain.EffortEstimate, emit func(string)) {
	rawLower := strings.ToLower(facts.RawUserText)

	timeline := facts.TimelineHint
	if timeline == "" && estimate != nil {
		timeline = estimate.TimelineLabel
	}
	if timeline == "" && facts.RawUserText != "" {
		timeline = RecoverTimeline(facts.RawUserText)
	}

	if timeline != "" && facts.DeliverableCount() > 0 {
		if months, ok := ParseTimelineMonths(timeline); ok {
			checkTimelineScope(months, facts.DeliverableCount(), rawLower, emit)
		}
	}

	if estimate == nil || estimate.TotalHours == 0 {
		return
	}

	// Hours-based checks never use the recovered free-text timeline.
	timeline = facts.TimelineHint
	if timeline == "" {
		timeline = estimate.TimelineLabel
	}
	months, ok := ParseTimelineMonths(timeline)
	if !ok {
		return
	}
	checkTimelineAgainstHours(months, estimate.TotalHours, emit)
}

// checkTimelineScope flags timelines that cannot fit the requested scope,
// most specific first: e-commerce/platform projects under a month, then any
// significant project under a month, then many deliverables under two months.
func checkTimelineScope(months float64, count int, rawLower string, emit func(string)) {
	isEcommerceScope := containsAnyToken(rawLower, ecommerceScopeTokens)

	switch {
	case months <= ecommerceMaxAggressiveMonths && isEcommerceScope:
		emit(fmt.Sprintf(
			"%.1f months (about %d weeks) for an e-commerce/platform project is unrealistic. "+
				"E-commerce sites typically require 3-6 months minimum for a basic MVP, even with "+
				"existing frameworks. Consider extending timeline to at least 3 months.",
			months, int(months*domain.WeeksPerMonth)))

	case months < aggressiveMonthsFloor && count >= 3:
		suggestedWeeks := count * 2
		emit(fmt.Sprintf(
			"%.1f months (about %d weeks) for %d deliverables is extremely aggressive. "+
				"Even a simple feature typically takes 1-2 weeks minimum. Consider timeline of "+
				"at least %d weeks (%.1f months).",
			months, int(months*domain.WeeksPerMonth), count,
			suggestedWeeks, float64(suggestedWeeks)/domain.WeeksPerMonth))

	case count > tightDeliverableCount && months < tightTimelineMonths:
		emit(fmt.Sprintf(
			"%d deliverables in %.1f months is very tight. This allows only ~%.1f weeks per feature. "+
				"Realistic timeline would be %.1f-%.1f months.",
			count, months, months*domain.WeeksPerMonth/float64(count),
			float64(count*2)/domain.WeeksPerMonth, float64(count*4)/domain.WeeksPerMonth))
	}
}

// checkTimelineAgainstHours flags timelines that disagree with the estimated
// effort at one developer working 160-hour months.
func checkTimelineAgainstHours(months float64, hours int, emit func(string)) {
	expected := float64(hours) / domain.HoursPerMonth

	switch {
	case hours > parallelDevHoursFloor && months < parallelDevMaxMonths:
		emit(fmt.Sprintf(
			"%d hours would take ~%.1f months with 1 full-time developer, but timeline suggests "+
				"%.1f months. This would require %.1fx developers working in parallel, which may "+
				"not be feasible for all tasks.",
			hours, expected, months, expected/months))

	case hours < overlongHoursCeiling && months > overlongMonthsFloor:
		emit(fmt.Sprintf(
			"%d hours would take ~%.1f months, but timeline suggests %.1f months. Timeline seems "+
				"longer than necessary, unless there are external dependencies or part-time resources.",
			hours, expected, months))

	case months < expected*timelineUnderExpectedRatio:
		emit(fmt.Sprintf(
			"Timeline of %.1f months may be too aggressive for %d hours of work (expected ~%.1f months). "+
				"Consider extending timeline or increasing team size.",
			months, hours, expected))

	case months > expected*timelineOverExpectedRatio:
		emit(fmt.Sprintf(
			"Timeline of %.1f months seems longer than necessary for %d hours of work (expected ~%.1f months). "+
				"Consider if there are specific reasons for the extended timeline.",
			months, hours, expected))
	}
}

func containsAnyToken(haystack string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(haystack, t) {
			return true
		}
	}
	return false
}
