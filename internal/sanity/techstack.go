package sanity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ahale/go-scoper/internal/domain"
)

// checkTechStack emits technology warnings from the combined tech hints and
// raw user text: deprecated technologies first, then conflicting framework
// choices, then outdated versions. Each table is evaluated in declaration
// order so the warning sequence is deterministic.
func checkTechStack(facts domain.ProjectFacts, emit func(string)) {
	if len(facts.TechHints) == 0 && facts.RawUserText == "" {
		return
	}

	parts := make([]string, 0, len(facts.TechHints)+1)
	for _, hint := range facts.TechHints {
		parts = append(parts, strings.ToLower(hint))
	}
	parts = append(parts, strings.ToLower(facts.RawUserText))
	techText := strings.Join(parts, " ")

	for _, dep := range deprecatedTechs {
		if strings.Contains(techText, dep.token) {
			emit(fmt.Sprintf(
				"'%s' is outdated/deprecated. Consider using %s instead for better performance, "+
					"security, and maintainability.",
				dep.displayName, dep.alternative))
		}
	}

	for _, group := range conflictGroups {
		foundA := matchingTokens(techText, group.groupA)
		foundB := matchingTokens(techText, group.groupB)
		if len(foundA) == 0 || len(foundB) == 0 {
			continue
		}
		emit(fmt.Sprintf(
			"Multiple %s detected (%s and %s). This may indicate confusion in requirements. "+
				"Typically, projects use one primary framework for %s. Please clarify which "+
				"framework should be used.",
			group.category, strings.Join(foundA, ", "), strings.Join(foundB, ", "), group.category))
	}

	for _, check := range versionChecks {
		m := check.pattern.FindStringSubmatch(techText)
		if m == nil {
			continue
		}
		version, err := strconv.Atoi(m[1])
		if err != nil || version >= check.minVersion {
			continue
		}
		emit(fmt.Sprintf(
			"%s %d is outdated. Consider upgrading to %s for better features, performance, and security.",
			check.displayName, version, check.recommended))
	}
}

// matchingTokens returns the tokens from the group present in the text,
// preserving group order.
func matchingTokens(text string, group []string) []string {
	var found []string
	for _, token := range group {
		if strings.Contains(text, token) {
			found = append(found, token)
		}
	}
	return found
}
