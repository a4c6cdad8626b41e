// Package domain defines the core types of the scoping pipeline: structured
// project facts, quality assessments, effort estimates, consistency
// warnings, and the immutable state snapshot carried between stages. Types
// here hold data and invariants only; stage logic lives in the dedicated
// packages that consume them.
package domain

import (
	"encoding/json"
	"strings"
)

// StringList is a []string that degrades gracefully when decoded from
// malformed JSON: a non-array value becomes empty and non-string elements
// are skipped. Structurally malformed extraction output must never fail
// decoding.
type StringList []string

// UnmarshalJSON implements tolerant decoding. It never returns an error.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		*l = nil
		return nil
	}
	if raw == nil {
		*l = nil
		return nil
	}
	out := make(StringList, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	*l = out
	return nil
}

// ProjectFacts is the structured input produced by the extraction boundary.
// Deliverables holds ordered feature phrases only, never the project type
// itself. Empty hint fields are meaningful: they signal the input was too
// vague for the extractor to commit to a value.
type ProjectFacts struct {
	// ProjectType is the overall project category, empty when unclear.
	ProjectType string `json:"project_type,omitempty"`

	// Industry is the sector the project serves, empty when unclear.
	Industry string `json:"industry,omitempty"`

	// Deliverables is the ordered list of requested feature phrases.
	Deliverables StringList `json:"deliverables,omitempty"`

	// TimelineHint is the stated or implied timeline expectation.
	TimelineHint string `json:"timeline_hint,omitempty"`

	// BudgetHint is the stated or implied budget expectation.
	BudgetHint string `json:"budget_hint,omitempty"`

	// TechHints lists technologies mentioned or clearly implied.
	TechHints StringList `json:"tech_hints,omitempty"`

	// RawUserText is the original free-form request, kept for context
	// detection in estimation and consistency checks.
	RawUserText string `json:"raw_user_text"`
}

// HasProjectType reports whether a non-blank project type is present.
func (f ProjectFacts) HasProjectType() bool {
	return strings.TrimSpace(f.ProjectType) != ""
}

// DeliverableCount returns the number of requested deliverables.
func (f ProjectFacts) DeliverableCount() int { return len(f.Deliverables) }

// Clone returns a deep copy that shares no slices with the original.
func (f ProjectFacts) Clone() ProjectFacts {
	out := f
	out.Deliverables = cloneStrings(f.Deliverables)
	out.TechHints = cloneStrings(f.TechHints)
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
