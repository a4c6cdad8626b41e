package domain

// WarningKind identifies which consistency sub-check produced a warning.
type WarningKind string

const (
	// WarningBudgetScope flags budget-versus-scope inconsistencies.
	WarningBudgetScope WarningKind = "budget_scope"

	// WarningTimelineFeasibility flags timelines that cannot fit the
	// requested scope or estimated effort.
	WarningTimelineFeasibility WarningKind = "timeline_feasibility"

	// WarningTechStack flags deprecated, conflicting, or outdated
	// technology choices.
	WarningTechStack WarningKind = "tech_stack"

	// WarningDiagnostic is the synthetic warning emitted when a sub-check
	// fails internally.
	WarningDiagnostic WarningKind = "diagnostic"
)

// Warning is one structured consistency diagnostic.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Message string      `json:"message"`
}

// WarningList is an ordered warning collection: budget warnings first, then
// timeline, then tech, as produced by the checker.
type WarningList []Warning

// OfKind returns the warnings of the given kind, preserving order.
func (l WarningList) OfKind(kind WarningKind) WarningList {
	var out WarningList
	for _, w := range l {
		if w.Kind == kind {
			out = append(out, w)
		}
	}
	return out
}

// Messages returns just the message strings, preserving order.
func (l WarningList) Messages() []string {
	if len(l) == 0 {
		return nil
	}
	out := make([]string, len(l))
	for i, w := range l {
		out[i] = w.Message
	}
	return out
}

// Clone returns a copy that shares no backing array with the original.
func (l WarningList) Clone() WarningList {
	if l == nil {
		return nil
	}
	out := make(WarningList, len(l))
	copy(out, l)
	return out
}
