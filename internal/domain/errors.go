package domain

import "errors"

// Common errors returned by domain operations.
var (
	// ErrInvalidRequest indicates that a proposal request contains invalid data.
	ErrInvalidRequest = errors.New("invalid proposal request")

	// ErrInvalidAssessment indicates a quality assessment that violates the
	// completeness invariant or carries an unknown tier.
	ErrInvalidAssessment = errors.New("invalid quality assessment")

	// ErrInvalidEstimate indicates an effort estimate with inconsistent fields.
	ErrInvalidEstimate = errors.New("invalid effort estimate")
)

// StageError records a failure attributed to a specific pipeline stage. It is
// carried through the state as a flag rather than raised: no core stage may
// terminate the pipeline abnormally.
type StageError struct {
	Stage   string // Stage that failed (e.g. "extraction", "generation").
	Message string // Human-readable failure description.
}

// Error returns a formatted description of the stage failure.
func (e StageError) Error() string {
	return "stage '" + e.Stage + "' failed: " + e.Message
}

// NewStageError creates a stage error with the given attribution.
func NewStageError(stage, message string) StageError {
	return StageError{Stage: stage, Message: message}
}
