// Package sanity cross-checks project facts and effort estimates for
// internal consistency: budget against scope, timeline against effort, and
// technology choices against a deprecation and conflict catalog. Each
// sub-check is independent; a failure inside one is contained at its
// boundary and converted into a single diagnostic warning, so siblings
// always run and the checker never raises past its API.
package sanity

import (
	"fmt"

	"github.com/ahale/go-scoper/internal/domain"
)

// subCheck is one isolated consistency check. Emitted messages are tagged
// with the sub-check's warning kind.
type subCheck struct {
	name string
	kind domain.WarningKind
	run  func(facts domain.ProjectFacts, estimate *domain.EffortEstimate, emit func(string))
}

// Checker runs the consistency sub-checks over facts and an optional
// estimate. It is stateless and safe for concurrent use.
type Checker struct {
	checks []subCheck
}

// NewChecker creates a consistency checker with the standard sub-checks in
// their fixed order: budget-scope, timeline-feasibility, tech-stack.
func NewChecker() *Checker {
	return &Checker{
		checks: []subCheck{
			{name: "budget-scope", kind: domain.WarningBudgetScope, run: checkBudgetScope},
			{name: "timeline-feasibility", kind: domain.WarningTimelineFeasibility, run: checkTimeline},
			{
				name: "tech-stack",
				kind: domain.WarningTechStack,
				run: func(facts domain.ProjectFacts, _ *domain.EffortEstimate, emit func(string)) {
					checkTechStack(facts, emit)
				},
			},
		},
	}
}

// Check runs every sub-check and returns the combined warning list, in fixed
// order: budget, timeline, tech. The estimate may be nil; checks that need it are
// skipped. Check never panics: an internal sub-check failure yields one
// diagnostic warning in that sub-check's position.
func (c *Checker) Check(facts domain.ProjectFacts, estimate *domain.EffortEstimate) domain.WarningList {
	var warnings domain.WarningList
	for _, check := range c.checks {
		warnings = append(warnings, runSubCheck(check, facts, estimate)...)
	}
	return warnings
}

// runSubCheck executes one sub-check behind a recover boundary. On panic the
// sub-check's specific warnings are discarded and replaced with a single
// diagnostic warning, leaving sibling sub-checks unaffected.
func runSubCheck(check subCheck, facts domain.ProjectFacts, estimate *domain.EffortEstimate) (warnings domain.WarningList) {
	var collected domain.WarningList

	defer func() {
		if r := recover(); r != nil {
			warnings = domain.WarningList{{
				Kind:    domain.WarningDiagnostic,
				Message: fmt.Sprintf("Consistency check %q encountered an error: %v", check.name, r),
			}}
		}
	}()

	check.run(facts, estimate, func(message string) {
		collected = append(collected, domain.Warning{Kind: check.kind, Message: message})
	})
	return collected
}
