// Package quality classifies how complete and clear the extracted project
// facts are. The resulting tier drives pipeline routing: high and medium
// quality proceed to estimation, low quality is diverted to clarifying
// questions. Classification looks at input clarity, not exhaustiveness;
// missing budget, timeline, or tech hints never lower the tier.
package quality

import "github.com/ahale/go-scoper/internal/domain"

// Clarifying question text, one per missing field, emitted in a fixed order.
const (
	questionProjectType  = "What type of project are you looking to build? (e.g., mobile app, website, e-commerce platform, etc.)"
	questionDeliverables = "Could you describe what you want this project to do? What are the main features or functionalities?"
	questionIndustry     = "What industry or domain is this for? This will help us understand your needs better."
)

// Deliverable count thresholds for the quality tiers.
const (
	highTierMinDeliverables = 3
)

// Classifier scores the completeness of project facts. It is stateless and
// safe for concurrent use.
type Classifier struct{}

// NewClassifier creates a quality classifier.
func NewClassifier() *Classifier { return &Classifier{} }

// Classify derives a quality assessment from the facts:
//
//   - high: project type present and 3+ deliverables
//   - medium: project type present and 1-2 deliverables
//   - low: project type or deliverables missing
//
// On a low tier the assessment names the missing fields and carries one
// clarifying question per field, plus an industry question when both the
// project type and the industry are absent. Malformed input never raises;
// the facts type already degrades a non-list deliverables field to empty.
func (c *Classifier) Classify(facts domain.ProjectFacts) domain.QualityAssessment {
	hasType := facts.HasProjectType()
	count := facts.DeliverableCount()

	var tier domain.QualityTier
	switch {
	case hasType && count >= highTierMinDeliverables:
		tier = domain.QualityHigh
	case hasType && count >= 1:
		tier = domain.QualityMedium
	default:
		tier = domain.QualityLow
	}

	assessment := domain.QualityAssessment{
		Tier:       tier,
		IsComplete: tier != domain.QualityLow,
	}
	if tier != domain.QualityLow {
		return assessment
	}

	if !hasType {
		assessment.MissingFields = append(assessment.MissingFields, "project_type")
		assessment.ClarifyingQuestions = append(assessment.ClarifyingQuestions, questionProjectType)
	}
	if count == 0 {
		assessment.MissingFields = append(assessment.MissingFields, "deliverables")
		assessment.ClarifyingQuestions = append(assessment.ClarifyingQuestions, questionDeliverables)
	}
	if !hasType && facts.Industry == "" {
		assessment.ClarifyingQuestions = append(assessment.ClarifyingQuestions, questionIndustry)
	}

	return assessment
}
