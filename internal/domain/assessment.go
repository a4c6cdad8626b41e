package domain

import "fmt"

// QualityTier classifies how complete and clear the structured input is.
type QualityTier string

const (
	// QualityHigh indicates a project type plus three or more deliverables.
	QualityHigh QualityTier = "high"

	// QualityMedium indicates a project type with one or two deliverables.
	QualityMedium QualityTier = "medium"

	// QualityLow indicates input too vague to estimate; clarification is
	// required before proceeding.
	QualityLow QualityTier = "low"
)

// IsValidQualityTier reports whether the tier is one of the known values.
func IsValidQualityTier(t QualityTier) bool {
	switch t {
	case QualityHigh, QualityMedium, QualityLow:
		return true
	default:
		return false
	}
}

// QualityAssessment is the validation stage's verdict on the input. The
// completeness flag drives branch routing and is redundant with the tier by
// invariant: IsComplete holds exactly when the tier is not low.
type QualityAssessment struct {
	// Tier is the completeness classification.
	Tier QualityTier `json:"tier"`

	// IsComplete reports whether the input can proceed to estimation.
	IsComplete bool `json:"is_complete"`

	// MissingFields names the absent inputs that forced a low tier.
	MissingFields []string `json:"missing_fields,omitempty"`

	// ClarifyingQuestions is the ordered question list presented verbatim
	// on the clarification-only route.
	ClarifyingQuestions []string `json:"clarifying_questions,omitempty"`
}

// Validate checks the tier value and the completeness invariant.
func (a QualityAssessment) Validate() error {
	if !IsValidQualityTier(a.Tier) {
		return fmt.Errorf("%w: unknown tier %q", ErrInvalidAssessment, a.Tier)
	}
	if a.IsComplete != (a.Tier != QualityLow) {
		return fmt.Errorf("%w: completeness flag %t contradicts tier %q",
			ErrInvalidAssessment, a.IsComplete, a.Tier)
	}
	return nil
}

// Clone returns a deep copy that shares no slices with the original.
func (a QualityAssessment) Clone() QualityAssessment {
	out := a
	out.MissingFields = cloneStrings(a.MissingFields)
	out.ClarifyingQuestions = cloneStrings(a.ClarifyingQuestions)
	return out
}
