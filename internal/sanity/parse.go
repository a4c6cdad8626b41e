package sanity

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ahale/go-scoper/internal/domain"
)

// Budget strings are reduced to bare number tokens with an optional k/m
// magnitude suffix; a range averages to its arithmetic mean.
var budgetTokenRe = regexp.MustCompile(`(\d+(?:\.\d+)?)([km])?`)

// Timeline strings carry a number followed by a weeks/months unit.
var (
	timelineWeeksRe  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*weeks?`)
	timelineMonthsRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*months?`)
)

// Free-text timeline recovery patterns, tried in order.
var timelineRecoveryRes = []*regexp.Regexp{
	regexp.MustCompile(`in\s+(\d+)\s+(week|month|day)s?`),
	regexp.MustCompile(`(\d+)\s+(week|month|day)s?\s+(timeline|deadline|timeframe)`),
	regexp.MustCompile(`within\s+(\d+)\s+(week|month|day)s?`),
}

// ParseBudget extracts a dollar figure from a budget string like
// "$50,000 - $75,000", "50k-75k", or "1.2m". Currency symbols, commas, and
// spaces are stripped; k multiplies by a thousand and m by a million; when
// several numbers appear the arithmetic mean is used. Returns false when no
// number is found.
func ParseBudget(s string) (domain.Dollars, bool) {
	if s == "" {
		return 0, false
	}

	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(strings.ToLower(s))

	matches := budgetTokenRe.FindAllStringSubmatch(cleaned, -1)
	if len(matches) == 0 {
		return 0, false
	}

	var sum int64
	for _, m := range matches {
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		switch m[2] {
		case "k":
			value *= 1_000
		case "m":
			value *= 1_000_000
		}
		sum += int64(value)
	}

	return domain.Dollars(sum / int64(len(matches))), true
}

// ParseTimelineMonths extracts a duration in months from a timeline string:
// "<n> weeks" converts at 4 weeks to the month, "<n> months" is taken as-is.
// Returns false when neither unit is recognized (days are deliberately
// unparsable here).
func ParseTimelineMonths(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	lower := strings.ToLower(s)

	if m := timelineWeeksRe.FindStringSubmatch(lower); m != nil {
		weeks, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return weeks / domain.WeeksPerMonth, true
		}
	}
	if m := timelineMonthsRe.FindStringSubmatch(lower); m != nil {
		months, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return months, true
		}
	}
	return 0, false
}

// RecoverTimeline scans free text for phrases like "in 3 weeks",
// "2 month deadline", or "within 10 days" and normalizes the first match to a
// "<n> <unit>" timeline string. Returns the empty string when nothing
// matches. A recovered day count survives here but stays unparsable in
// ParseTimelineMonths, so day-only hints never drive month-based checks.
func RecoverTimeline(rawUserText string) string {
	lower := strings.ToLower(rawUserText)
	for _, re := range timelineRecoveryRes {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		return m[1] + " " + m[2] + "s"
	}
	return ""
}
