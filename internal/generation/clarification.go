package generation

import (
	"fmt"
	"strings"
)

const (
	clarificationIntro = "To create an accurate proposal, I need more details:"
	clarificationOutro = "Please provide this information and I'll generate a comprehensive proposal."

	// noQuestionsFallback covers the degenerate case of a clarification
	// route with no questions to ask.
	noQuestionsFallback = "Please provide more information about your project requirements."
)

// ClarificationText renders the ordered clarifying questions as a numbered
// plain-text request. It is deterministic and needs no model call, so the
// clarification-only terminal never touches the generation boundary.
func ClarificationText(questions []string) string {
	if len(questions) == 0 {
		return noQuestionsFallback
	}

	var b strings.Builder
	b.WriteString(clarificationIntro)
	b.WriteString("\n\n")
	for i, q := range questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	b.WriteString("\n")
	b.WriteString(clarificationOutro)
	return b.String()
}
