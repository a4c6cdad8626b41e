package extraction

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ahale/go-scoper/internal/domain"
)

// factsPayload mirrors the JSON shape the extraction prompt requests.
// StringList fields tolerate non-array values by degrading to empty.
type factsPayload struct {
	ProjectType   string            `json:"project_type"`
	Industry      string            `json:"industry"`
	Deliverables  domain.StringList `json:"deliverables"`
	TimelineHints string            `json:"timeline_hints"`
	BudgetHints   string            `json:"budget_hints"`
	TechHints     domain.StringList `json:"tech_hints"`
}

// ParseFactsResponse parses a model reply into project facts. Replies are
// often wrapped in prose or markdown fences, so the content is first trimmed
// to the outermost brace pair before JSON decoding. The caller is expected
// to fill RawUserText.
func ParseFactsResponse(content string) (domain.ProjectFacts, error) {
	trimmed := trimToJSONObject(content)
	if trimmed == "" {
		return domain.ProjectFacts{}, fmt.Errorf("%w: no JSON object found", ErrMalformedResponse)
	}

	var payload factsPayload
	if err := json.Unmarshal([]byte(trimmed), &payload); err != nil {
		return domain.ProjectFacts{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return domain.ProjectFacts{
		ProjectType:  payload.ProjectType,
		Industry:     payload.Industry,
		Deliverables: payload.Deliverables,
		TimelineHint: payload.TimelineHints,
		BudgetHint:   payload.BudgetHints,
		TechHints:    payload.TechHints,
	}, nil
}

// trimToJSONObject cuts the content down to the span between the first '{'
// and the last '}'. Returns the input unchanged when no brace pair exists so
// the JSON decoder produces the real error.
func trimToJSONObject(content string) string {
	content = strings.TrimSpace(content)
	first := strings.Index(content, "{")
	last := strings.LastIndex(content, "}")
	if first == -1 || last == -1 || last < first {
		return content
	}
	return content[first : last+1]
}
