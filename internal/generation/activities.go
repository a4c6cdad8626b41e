package generation

import (
	"context"

	"github.com/ahale/go-scoper/internal/domain"
	pkgactivity "github.com/ahale/go-scoper/pkg/activity"
)

// GenerateNarrativeInput carries the terminal scoping result into the
// activity.
type GenerateNarrativeInput struct {
	Result domain.ProposalResult `json:"result"`
}

// GenerateNarrativeOutput carries the proposal prose back to the workflow.
type GenerateNarrativeOutput struct {
	Narrative string `json:"narrative"`
}

// Activities exposes the generation boundary as a Temporal activity.
type Activities struct {
	pkgactivity.BaseActivities
	generator Generator
}

// NewActivities creates generation activities around the given generator.
func NewActivities(base pkgactivity.BaseActivities, generator Generator) *Activities {
	return &Activities{BaseActivities: base, generator: generator}
}

// GenerateNarrative invokes the generation collaborator for the proposal
// route. Failures surface to the workflow, which records them on the result
// rather than failing the run; the structured scoping data is still useful
// without prose.
func (a *Activities) GenerateNarrative(ctx context.Context, input GenerateNarrativeInput) (*GenerateNarrativeOutput, error) {
	wfCtx := a.GetWorkflowContext(ctx)
	pkgactivity.SafeLog(ctx, "Starting GenerateNarrative activity",
		"workflow_id", wfCtx.WorkflowID,
		"activity_id", wfCtx.ActivityID,
		"request_id", input.Result.RequestID,
		"warnings", len(input.Result.Warnings))

	narrative, err := a.generator.GenerateNarrative(ctx, input.Result)
	if err != nil {
		pkgactivity.SafeLogError(ctx, "GenerateNarrative failed",
			"request_id", input.Result.RequestID,
			"error", err)
		return nil, err
	}

	pkgactivity.SafeLog(ctx, "GenerateNarrative completed",
		"request_id", input.Result.RequestID,
		"narrative_chars", len(narrative))

	return &GenerateNarrativeOutput{Narrative: narrative}, nil
}
