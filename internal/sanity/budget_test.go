package sanity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahale/go-scoper/internal/domain"
)

func runBudgetCheck(facts domain.ProjectFacts, estimate *domain.EffortEstimate) []string {
	var messages []string
	checkBudgetScope(facts, estimate, func(m string) { messages = append(messages, m) })
	return messages
}

func genericDeliverables(n int) domain.StringList {
	out := make(domain.StringList, n)
	for i := range out {
		out[i] = "feature"
	}
	return out
}

func TestCheckBudgetScope_MassivePlatformComparison(t *testing.T) {
	tests := []struct {
		name        string
		rawUserText string
		wantScale   string
	}{
		{name: "like amazon", rawUserText: "I want something like Amazon for pet supplies", wantScale: "Amazon-scale"},
		{name: "uber clone", rawUserText: "an uber clone for boats", wantScale: "Uber-scale"},
		{name: "netflix-like", rawUserText: "a Netflix-like streaming service", wantScale: "Netflix-scale"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facts := domain.ProjectFacts{
				Deliverables: genericDeliverables(4),
				BudgetHint:   "$20,000",
				RawUserText:  tt.rawUserText,
			}
			messages := runBudgetCheck(facts, nil)

			require.NotEmpty(t, messages)
			assert.Contains(t, messages[0], tt.wantScale)
			assert.Contains(t, messages[0], "Current budget of $20,000")
		})
	}
}

func TestCheckBudgetScope_PlatformWarningWithoutBudget(t *testing.T) {
	facts := domain.ProjectFacts{
		Deliverables: genericDeliverables(4),
		RawUserText:  "like Facebook but for dogs",
	}
	messages := runBudgetCheck(facts, nil)

	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "Any realistic budget")
}

func TestCheckBudgetScope_OnlyFirstPlatformWarns(t *testing.T) {
	facts := domain.ProjectFacts{
		Deliverables: genericDeliverables(4),
		RawUserText:  "like amazon meets like netflix",
	}
	messages := runBudgetCheck(facts, nil)

	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "Amazon-scale")
}

func TestCheckBudgetScope_StaticChecks(t *testing.T) {
	tests := []struct {
		name         string
		deliverables int
		budgetHint   string
		wantCount    int
		wantContains []string
	}{
		{
			name:         "high budget for few deliverables",
			deliverables: 2,
			budgetHint:   "$100,000",
			wantCount:    1,
			wantContains: []string{"seems high for only 2 deliverables"},
		},
		{
			name:         "low budget for many deliverables",
			deliverables: 12,
			budgetHint:   "$24,000",
			wantCount:    2,
			wantContains: []string{"may be insufficient for 12 deliverables", "averages $2,000 per deliverable"},
		},
		{
			name:         "per-deliverable floor",
			deliverables: 5,
			budgetHint:   "$12,000",
			wantCount:    1,
			wantContains: []string{"averages $2,400 per deliverable", "Budget should be $50,000-$100,000 minimum"},
		},
		{
			name:         "absolute minimum",
			deliverables: 2,
			budgetHint:   "$5,000",
			wantCount:    1,
			wantContains: []string{"extremely low for a software project with 2 deliverables"},
		},
		{
			name:         "reasonable budget stays quiet",
			deliverables: 5,
			budgetHint:   "$60,000",
			wantCount:    0,
		},
		{
			name:         "unparsable budget skips checks",
			deliverables: 12,
			budgetHint:   "flexible",
			wantCount:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facts := domain.ProjectFacts{
				Deliverables: genericDeliverables(tt.deliverables),
				BudgetHint:   tt.budgetHint,
				RawUserText:  "a project",
			}
			messages := runBudgetCheck(facts, nil)

			require.Len(t, messages, tt.wantCount)
			for i, want := range tt.wantContains {
				assert.Contains(t, messages[i], want)
			}
		})
	}
}

func TestCheckBudgetScope_HoursMismatch(t *testing.T) {
	estimate := &domain.EffortEstimate{
		TotalHours:    500,
		TimelineLabel: "3.1 months",
		CostRangeLow:  domain.Dollars(40000),
		CostRangeHigh: domain.Dollars(60000),
		CostLabel:     "$40,000 - $60,000",
	}

	t.Run("budget under 60 percent of expected", func(t *testing.T) {
		facts := domain.ProjectFacts{
			Deliverables: genericDeliverables(4),
			BudgetHint:   "$25,000",
		}
		messages := runBudgetCheck(facts, estimate)

		require.Len(t, messages, 1)
		assert.Contains(t, messages[0], "Estimated 500 hours suggests ~$50,000 budget")
		assert.Contains(t, messages[0], "insufficient")
	})

	t.Run("budget over 150 percent of expected", func(t *testing.T) {
		facts := domain.ProjectFacts{
			Deliverables: genericDeliverables(4),
			BudgetHint:   "$90,000",
		}
		messages := runBudgetCheck(facts, estimate)

		require.Len(t, messages, 1)
		assert.Contains(t, messages[0], "higher than necessary")
	})

	t.Run("aligned budget stays quiet", func(t *testing.T) {
		facts := domain.ProjectFacts{
			Deliverables: genericDeliverables(4),
			BudgetHint:   "$50,000",
		}
		assert.Empty(t, runBudgetCheck(facts, estimate))
	})
}

func TestCheckBudgetScope_BudgetFallsBackToCostMidpoint(t *testing.T) {
	// No budget hint: the estimate midpoint is used, which by construction
	// aligns with the hours comparison, so only static checks can fire.
	estimate := &domain.EffortEstimate{
		TotalHours:    100,
		TimelineLabel: "2 weeks",
		CostRangeLow:  domain.Dollars(8000),
		CostRangeHigh: domain.Dollars(12000),
		CostLabel:     "$8,000 - $12,000",
	}
	facts := domain.ProjectFacts{Deliverables: genericDeliverables(5)}

	messages := runBudgetCheck(facts, estimate)

	// Midpoint 10,000 over 5 deliverables averages $2,000, under the floor.
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "averages $2,000 per deliverable")
}

func TestCheckBudgetScope_NoDeliverablesNoWarnings(t *testing.T) {
	facts := domain.ProjectFacts{BudgetHint: "$1,000", RawUserText: "like amazon"}
	assert.Empty(t, runBudgetCheck(facts, nil))
}
