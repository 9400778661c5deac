// internal/ai/sanitize.go
package ai

import "strings"

// Sanitize strips Markdown code-fence wrappers the model sometimes puts
// around its JSON output, then trims surrounding whitespace. This is the
// only repair the pipeline performs before structural parsing; the function
// does no other content inspection and is idempotent.
func Sanitize(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
