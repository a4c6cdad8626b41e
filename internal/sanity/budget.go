package sanity

import (
	"fmt"
	"strings"

	"github.com/ahale/go-scoper/internal/domain"
)

// Budget-scope thresholds.
const (
	fewDeliverables          = 3      // below this, a large budget looks oversized
	manyDeliverables         = 10     // above this, a small budget looks undersized
	highBudgetFloor          = 80_000 // oversized-budget trigger for few deliverables
	lowBudgetCeiling         = 30_000 // undersized-budget trigger for many deliverables
	minPerDeliverable        = 3_000  // per-feature floor before a warning fires
	absoluteMinimumBudget    = 10_000 // floor for any project with deliverables
	suggestedPerFeatureLow   = 10_000
	suggestedPerFeatureHigh  = 20_000
	comparisonRatePerHour    = 100 // midpoint of the $80-$120 blended rate
	budgetUnderExpectedRatio = 0.6
	budgetOverExpectedRatio  = 1.5
)

// checkBudgetScope emits budget-scope warnings in a fixed order: the massive
// platform comparison first, then static scope checks, then the
// budget-versus-estimated-hours alignment. The budget figure comes from the
// explicit hint, or failing that from the estimate's cost range midpoint.
func checkBudgetScope(facts domain.ProjectFacts, estimate *domain.EffortEstimate, emit func(string)) {
	if facts.DeliverableCount() == 0 {
		return
	}
	count := facts.DeliverableCount()
	rawLower := strings.ToLower(facts.RawUserText)

	budget, budgetKnown := ParseBudget(facts.BudgetHint)
	if !budgetKnown && estimate != nil {
		budget, budgetKnown = estimate.CostMidpoint(), true
	}

	for _, platform := range massivePlatforms {
		if !mentionsPlatform(rawLower, platform.name) {
			continue
		}
		budgetMsg := "Any realistic budget"
		if budgetKnown {
			budgetMsg = fmt.Sprintf("Current budget of %s", budget)
		}
		emit(fmt.Sprintf(
			"Building a '%s' platform requires %s in development costs and years of work by large teams. "+
				"%s is insufficient by orders of magnitude. Consider building an MVP with core features only, "+
				"or significantly increasing budget and timeline expectations.",
			platform.scaleName, platform.typicalCost, budgetMsg))
		break
	}

	if budgetKnown {
		if count < fewDeliverables && budget > highBudgetFloor {
			plural := ""
			if count > 1 {
				plural = "s"
			}
			emit(fmt.Sprintf(
				"Budget of %s seems high for only %d deliverable%s. Consider breaking down into "+
					"more specific features or verifying budget expectations.",
				budget, count, plural))
		}

		if count > manyDeliverables && budget < lowBudgetCeiling {
			emit(fmt.Sprintf(
				"Budget of %s may be insufficient for %d deliverables. Each deliverable would average %s, "+
					"which is typically too low for quality implementation. Consider increasing budget or reducing scope.",
				budget, count, budget/domain.Dollars(count)))
		}

		if count >= fewDeliverables {
			perDeliverable := float64(budget) / float64(count)
			if perDeliverable < minPerDeliverable {
				emit(fmt.Sprintf(
					"Budget of %s for %d deliverables averages %s per deliverable. This is unrealistically "+
						"low for quality software development (typical minimum: %s-%s per feature). "+
						"Budget should be %s-%s minimum.",
					budget, count, domain.Dollars(perDeliverable),
					domain.Dollars(suggestedPerFeatureLow), domain.Dollars(suggestedPerFeatureHigh),
					domain.Dollars(count*suggestedPerFeatureLow), domain.Dollars(count*suggestedPerFeatureHigh)))
			}
		}

		if budget < absoluteMinimumBudget {
			emit(fmt.Sprintf(
				"Budget of %s is extremely low for a software project with %d deliverables. Even a simple "+
					"MVP typically costs $15,000-$30,000 minimum. Please revise budget expectations or "+
					"significantly reduce scope.",
				budget, count))
		}
	}

	if budgetKnown && estimate != nil && estimate.TotalHours > 0 {
		hours := estimate.TotalHours
		expected := domain.Dollars(hours * comparisonRatePerHour)

		switch {
		case float64(budget) < float64(expected)*budgetUnderExpectedRatio:
			emit(fmt.Sprintf(
				"Estimated %d hours suggests ~%s budget, but provided budget is %s. "+
					"Budget may be insufficient for the estimated scope.",
				hours, expected, budget))
		case float64(budget) > float64(expected)*budgetOverExpectedRatio:
			emit(fmt.Sprintf(
				"Estimated %d hours suggests ~%s budget, but provided budget is %s. "+
					"Budget seems higher than necessary, or scope may be underestimated.",
				hours, expected, budget))
		}
	}
}

// mentionsPlatform reports whether the text compares the project to a
// well-known platform via "like X", "X-like", or "X clone".
func mentionsPlatform(lowerText, platform string) bool {
	return strings.Contains(lowerText, "like "+platform) ||
		strings.Contains(lowerText, platform+"-like") ||
		strings.Contains(lowerText, platform+" clone")
}
