package intent

import (
	"regexp"
	"strings"
)

// markAsCompletePattern is the phrase template behind "mark X as complete",
// so the object of "mark" may sit between the two halves.
var markAsCompletePattern = regexp.MustCompile(`(?i)mark\s+(?:.+?\s+)?as\s+(?:complete|done|finished)`)

// IsCompletionIntent reports whether text asks for a task to be marked done.
// Matching is plain substring containment on the lowercased text, plus the
// "mark ... as complete" template.
func (d *Detector) IsCompletionIntent(text string) bool {
	if containsAny(strings.ToLower(text), d.completionPhrases) {
		return true
	}
	return markAsCompletePattern.MatchString(text)
}
