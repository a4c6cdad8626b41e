package domain

// PipelineState is the aggregate snapshot carried between pipeline stages.
// It is immutable: every stage derives a new snapshot from the previous one
// via the With* methods and never mutates a shared instance. A state is
// created at orchestrator entry from extraction output and discarded after
// the terminal stage consumes it.
type PipelineState struct {
	// Facts is the structured input the pipeline operates on.
	Facts ProjectFacts `json:"facts"`

	// Assessment is populated by the validation stage, nil before it runs.
	Assessment *QualityAssessment `json:"assessment,omitempty"`

	// Estimate is populated by the calculator stage; it stays nil on the
	// clarification-only branch and when the estimator is skipped.
	Estimate *EffortEstimate `json:"estimate,omitempty"`

	// Warnings is populated by the sanity-check stage, possibly empty.
	Warnings WarningList `json:"warnings,omitempty"`

	// Err carries an upstream error flag. Once set, purely-derived numeric
	// stages pass the state through untouched.
	Err string `json:"error,omitempty"`
}

// NewPipelineState creates the entry snapshot from extraction output.
func NewPipelineState(facts ProjectFacts) PipelineState {
	return PipelineState{Facts: facts.Clone()}
}

// HasError reports whether an earlier stage flagged an error.
func (s PipelineState) HasError() bool { return s.Err != "" }

// WithAssessment returns a new snapshot with the quality assessment set.
func (s PipelineState) WithAssessment(a QualityAssessment) PipelineState {
	out := s.clone()
	cp := a.Clone()
	out.Assessment = &cp
	return out
}

// WithEstimate returns a new snapshot with the effort estimate set.
func (s PipelineState) WithEstimate(e EffortEstimate) PipelineState {
	out := s.clone()
	cp := e
	out.Estimate = &cp
	return out
}

// WithWarnings returns a new snapshot with the warning list set.
func (s PipelineState) WithWarnings(w WarningList) PipelineState {
	out := s.clone()
	out.Warnings = w.Clone()
	return out
}

// WithError returns a new snapshot with the error flag set.
func (s PipelineState) WithError(msg string) PipelineState {
	out := s.clone()
	out.Err = msg
	return out
}

// clone copies the snapshot, including pointer fields, so derived snapshots
// never alias the originals.
func (s PipelineState) clone() PipelineState {
	out := s
	out.Facts = s.Facts.Clone()
	if s.Assessment != nil {
		cp := s.Assessment.Clone()
		out.Assessment = &cp
	}
	if s.Estimate != nil {
		cp := *s.Estimate
		out.Estimate = &cp
	}
	out.Warnings = s.Warnings.Clone()
	return out
}
