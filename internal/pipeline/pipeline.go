// Package pipeline implements the deterministic decision core as a strictly
// forward stage sequence over an immutable state snapshot: quality
// classification, consistency checking, completeness routing, and effort
// estimation. Every stage is a pure function from snapshot to snapshot, so a
// run is idempotent and runs over separate inputs share nothing.
//
// The extraction and generation collaborators sit outside this package at the
// pipeline's input and output edges; nothing here performs I/O.
package pipeline

import (
	"github.com/ahale/go-scoper/internal/domain"
	"github.com/ahale/go-scoper/internal/effort"
	"github.com/ahale/go-scoper/internal/quality"
	"github.com/ahale/go-scoper/internal/sanity"
)

// Runner wires the pure stage components into the forward sequence. It is
// stateless and safe for concurrent use across independent runs.
type Runner struct {
	classifier *quality.Classifier
	estimator  *effort.Estimator
	checker    *sanity.Checker
}

// NewRunner creates a runner with the standard stage components.
func NewRunner() *Runner {
	return &Runner{
		classifier: quality.NewClassifier(),
		estimator:  effort.NewEstimator(),
		checker:    sanity.NewChecker(),
	}
}

// Validate classifies input quality and records the assessment on a new
// snapshot. It runs even when an upstream error flag is set; classification
// never assumes numeric fields are present.
func (r *Runner) Validate(state domain.PipelineState) domain.PipelineState {
	assessment := r.classifier.Classify(state.Facts)
	return state.WithAssessment(assessment)
}

// SanityCheck runs the consistency checker over the current snapshot and
// records the resulting warning list. It runs before the routing decision,
// so the estimate is typically still absent and estimate-dependent checks
// are skipped.
func (r *Runner) SanityCheck(state domain.PipelineState) domain.PipelineState {
	warnings := r.checker.Check(state.Facts, state.Estimate)
	return state.WithWarnings(warnings)
}

// Calculate derives the effort estimate. It passes the snapshot through
// untouched when an upstream error flag is set, and skips estimation when
// there are no deliverables; neither case is an error.
func (r *Runner) Calculate(state domain.PipelineState) domain.PipelineState {
	if state.HasError() {
		return state
	}
	if state.Facts.DeliverableCount() == 0 {
		return state
	}
	estimate := r.estimator.Estimate(state.Facts.Deliverables, state.Facts.ProjectType, state.Facts.RawUserText)
	return state.WithEstimate(estimate)
}

// RouteFor returns the terminal branch for a validated snapshot: the
// proposal branch when the assessment marks the input complete, otherwise
// clarification-only.
func RouteFor(state domain.PipelineState) domain.Route {
	if state.Assessment != nil && state.Assessment.IsComplete {
		return domain.RouteProposal
	}
	return domain.RouteClarification
}

// Run executes the full stage sequence: validation, consistency checks, the
// routing decision, then estimation on the proposal branch only. The
// clarification-only branch bypasses the estimator entirely.
func (r *Runner) Run(state domain.PipelineState) domain.PipelineState {
	state = r.Validate(state)
	state = r.SanityCheck(state)
	if RouteFor(state) == domain.RouteProposal {
		state = r.Calculate(state)
	}
	return state
}

// BuildResult assembles the terminal output from the final snapshot. On the
// clarification-only route the assessment's ordered questions are exposed
// verbatim; the narrative field is left for the generation boundary to fill.
func BuildResult(requestID string, state domain.PipelineState) domain.ProposalResult {
	result := domain.ProposalResult{
		RequestID: requestID,
		Route:     RouteFor(state),
		Facts:     state.Facts,
		Warnings:  state.Warnings,
		Err:       state.Err,
	}
	if state.Assessment != nil {
		result.Assessment = *state.Assessment
	}
	if state.Estimate != nil {
		result.Estimate = state.Estimate
	}
	if result.Route == domain.RouteClarification {
		result.ClarifyingQuestions = result.Assessment.ClarifyingQuestions
	}
	return result
}
