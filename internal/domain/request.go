package domain

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// validate is the package-level validator instance used for struct validation.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Route identifies the terminal branch a pipeline run took.
type Route string

const (
	// RouteProposal indicates the input was complete enough to estimate and
	// hand off to narrative generation.
	RouteProposal Route = "proposal"

	// RouteClarification indicates the input was too vague; only clarifying
	// questions are produced.
	RouteClarification Route = "clarification_only"
)

// ProposalRequest initiates a scoping run over free-form user text.
type ProposalRequest struct {
	// ID uniquely identifies this request using UUID format.
	ID string `json:"id" validate:"required,uuid"`

	// UserInput is the raw project description to scope (3-4000 chars).
	UserInput string `json:"user_input" validate:"required,min=3,max=4000"`

	// RequestedAt records when the request was created.
	RequestedAt time.Time `json:"requested_at" validate:"required"`
}

// NewProposalRequest creates a request with a generated ID and current time.
//
// WARNING: Do not call this inside workflow code; it uses nondeterministic
// operations (uuid.New and time.Now). Use MakeProposalRequest there.
func NewProposalRequest(userInput string) (*ProposalRequest, error) {
	return MakeProposalRequest(uuid.New().String(), time.Now(), userInput)
}

// MakeProposalRequest creates a request with caller-provided ID and timestamp,
// safe for deterministic workflow contexts.
func MakeProposalRequest(id string, requestedAt time.Time, userInput string) (*ProposalRequest, error) {
	req := &ProposalRequest{
		ID:          id,
		UserInput:   userInput,
		RequestedAt: requestedAt,
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	return req, nil
}

// Validate checks if the request meets all requirements.
func (r *ProposalRequest) Validate() error { return validate.Struct(r) }

// ProposalResult is the terminal output of a pipeline run, exposed as plain
// structured data to the generation boundary. No markup or prose formatting
// is imposed here.
type ProposalResult struct {
	// RequestID links the result to its originating request.
	RequestID string `json:"request_id" validate:"required,uuid"`

	// Route records which terminal branch produced this result.
	Route Route `json:"route" validate:"required,oneof=proposal clarification_only"`

	// Facts echoes the structured input the pipeline operated on.
	Facts ProjectFacts `json:"facts"`

	// Assessment is the input quality classification.
	Assessment QualityAssessment `json:"assessment"`

	// Estimate is present on the proposal route, nil when estimation was
	// skipped.
	Estimate *EffortEstimate `json:"estimate,omitempty"`

	// Warnings is the ordered consistency warning list, possibly empty.
	Warnings WarningList `json:"warnings,omitempty"`

	// ClarifyingQuestions is the verbatim ordered question list on the
	// clarification-only route.
	ClarifyingQuestions []string `json:"clarifying_questions,omitempty"`

	// Narrative is the collaborator-produced proposal prose, empty on the
	// clarification-only route or when generation failed.
	Narrative string `json:"narrative,omitempty"`

	// Err carries the error flag from the terminal snapshot, if any stage
	// set one.
	Err string `json:"error,omitempty"`
}

// Validate checks structural integrity of the result.
func (r *ProposalResult) Validate() error { return validate.Struct(r) }
