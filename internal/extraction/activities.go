package extraction

import (
	"context"
	"errors"

	"go.temporal.io/sdk/temporal"

	"github.com/ahale/go-scoper/internal/domain"
	pkgactivity "github.com/ahale/go-scoper/pkg/activity"
)

// ExtractFactsInput carries one extraction request into the activity.
type ExtractFactsInput struct {
	RequestID string `json:"request_id"`
	UserInput string `json:"user_input"`
}

// ExtractFactsOutput carries the structured facts back to the workflow.
type ExtractFactsOutput struct {
	Facts domain.ProjectFacts `json:"facts"`
}

// Activities exposes the extraction boundary as a Temporal activity.
type Activities struct {
	pkgactivity.BaseActivities
	extractor Extractor
}

// NewActivities creates extraction activities around the given extractor.
func NewActivities(base pkgactivity.BaseActivities, extractor Extractor) *Activities {
	return &Activities{BaseActivities: base, extractor: extractor}
}

// ExtractFacts invokes the extraction collaborator. Malformed model replies
// are non-retryable: retrying the same prompt on a parse failure mostly
// burns tokens, and the workflow degrades to an error-flagged state instead.
// Transport errors stay retryable under the workflow's retry policy.
func (a *Activities) ExtractFacts(ctx context.Context, input ExtractFactsInput) (*ExtractFactsOutput, error) {
	wfCtx := a.GetWorkflowContext(ctx)
	pkgactivity.SafeLog(ctx, "Starting ExtractFacts activity",
		"workflow_id", wfCtx.WorkflowID,
		"activity_id", wfCtx.ActivityID,
		"request_id", input.RequestID,
		"input_chars", len(input.UserInput))

	facts, err := a.extractor.ExtractFacts(ctx, input.UserInput)
	if err != nil {
		pkgactivity.SafeLogError(ctx, "ExtractFacts failed",
			"request_id", input.RequestID,
			"error", err)
		switch {
		case isMalformed(err):
			return nil, nonRetryable("ExtractFacts", err, "unparsable model response")
		default:
			return nil, err
		}
	}

	pkgactivity.SafeLog(ctx, "ExtractFacts completed",
		"request_id", input.RequestID,
		"deliverables", facts.DeliverableCount(),
		"has_project_type", facts.HasProjectType())

	return &ExtractFactsOutput{Facts: facts}, nil
}

func isMalformed(err error) bool {
	return errors.Is(err, ErrMalformedResponse) || errors.Is(err, ErrEmptyResponse)
}

func nonRetryable(tag string, cause error, msg string) error {
	return temporal.NewNonRetryableApplicationError(msg, tag, cause)
}
