// Package workflow contains the Temporal workflow that drives one scoping
// run: extraction activity, the pure decision pipeline executed inline, and
// the narrative generation activity on the proposal branch. Workflow code
// must stay deterministic; everything nondeterministic lives in activities.
package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/ahale/go-scoper/internal/domain"
	"github.com/ahale/go-scoper/internal/extraction"
	"github.com/ahale/go-scoper/internal/generation"
	"github.com/ahale/go-scoper/internal/pipeline"
)

// Activity names as registered on the worker.
const (
	ExtractFactsActivity      = "ExtractFacts"
	GenerateNarrativeActivity = "GenerateNarrative"
)

// TaskQueue is the queue the scoping worker polls.
const TaskQueue = "scoper-proposals"

// ProposalWorkflow runs one proposal request to its terminal result. The
// decision core is pure and runs inline; only the extraction and generation
// boundaries execute as activities. A collaborator failure never fails the
// run: it degrades to an error-flagged result so every request, however
// malformed, produces a terminal snapshot.
func ProposalWorkflow(
	ctx workflow.Context,
	req domain.ProposalRequest,
) (*domain.ProposalResult, error) {
	// Version gate enables safe evolution and backward compatibility.
	const currentVersion = 1
	_ = workflow.GetVersion(ctx, "proposal.v", workflow.DefaultVersion, currentVersion)

	// Validate request early to fail fast on invalid input.
	if err := req.Validate(); err != nil {
		return nil, temporal.NewNonRetryableApplicationError(
			"invalid proposal request",
			"Validation",
			err,
		)
	}

	// Standard timeouts and retry policy for the collaborator activities.
	ao := workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		HeartbeatTimeout:    30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, ao)

	logger := workflow.GetLogger(ctx)
	logger.Info("Starting proposal workflow", "request_id", req.ID)

	state := runExtraction(ctx, req)
	state = pipeline.NewRunner().Run(state)
	result := pipeline.BuildResult(req.ID, state)

	switch result.Route {
	case domain.RouteClarification:
		// Deterministic rendering; no model call for clarification-only.
		result.Narrative = generation.ClarificationText(result.ClarifyingQuestions)
	case domain.RouteProposal:
		runGeneration(ctx, &result)
	}

	logger.Info("Proposal workflow complete",
		"request_id", req.ID,
		"route", result.Route,
		"warnings", len(result.Warnings),
		"has_error", result.Err != "")

	return &result, nil
}

// runExtraction executes the extraction activity and builds the pipeline
// entry snapshot. On failure the snapshot carries only the raw text and an
// error flag; downstream stages degrade accordingly.
func runExtraction(ctx workflow.Context, req domain.ProposalRequest) domain.PipelineState {
	var out extraction.ExtractFactsOutput
	input := extraction.ExtractFactsInput{RequestID: req.ID, UserInput: req.UserInput}

	err := workflow.ExecuteActivity(ctx, ExtractFactsActivity, input).Get(ctx, &out)
	if err != nil {
		workflow.GetLogger(ctx).Error("Extraction failed, continuing with error state",
			"request_id", req.ID,
			"error", err)
		facts := domain.ProjectFacts{RawUserText: req.UserInput}
		return domain.NewPipelineState(facts).
			WithError(domain.NewStageError("extraction", err.Error()).Error())
	}
	return domain.NewPipelineState(out.Facts)
}

// runGeneration executes the narrative activity for the proposal route,
// recording a failure on the result instead of failing the workflow; the
// structured scoping data stands on its own.
func runGeneration(ctx workflow.Context, result *domain.ProposalResult) {
	var out generation.GenerateNarrativeOutput
	input := generation.GenerateNarrativeInput{Result: *result}

	err := workflow.ExecuteActivity(ctx, GenerateNarrativeActivity, input).Get(ctx, &out)
	if err != nil {
		workflow.GetLogger(ctx).Error("Narrative generation failed",
			"request_id", result.RequestID,
			"error", err)
		if result.Err == "" {
			result.Err = domain.NewStageError("generation", err.Error()).Error()
		}
		return
	}
	result.Narrative = out.Narrative
}
