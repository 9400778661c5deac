// internal/ai/classify.go
package ai

import (
	"strings"

	"runcoach/running-app/internal/domain"
)

// ClassifyFitnessLevel resolves the single-token classification task.
// The candidate text is trimmed and upper-cased, then matched exactly
// against the three valid levels. Any non-match (extra words, empty string,
// unexpected token) resolves to FitnessLevelNone: the caller can re-prompt
// the user, so classification failure is non-fatal.
func ClassifyFitnessLevel(candidate string) domain.FitnessLevel {
	switch strings.ToUpper(strings.TrimSpace(candidate)) {
	case "BEGINNER":
		return domain.FitnessLevelBeginner
	case "INTERMEDIATE":
		return domain.FitnessLevelIntermediate
	case "ADVANCED":
		return domain.FitnessLevelAdvanced
	default:
		return domain.FitnessLevelNone
	}
}
