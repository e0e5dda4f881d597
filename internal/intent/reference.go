package intent

import (
	"regexp"
	"strconv"
	"strings"
)

// Reference points at one task, either by id or by a descriptive phrase.
// At most one of the two is set.
type Reference struct {
	ID          *int64
	Description string
}

// HasID reports whether the reference carries a numeric id.
func (r Reference) HasID() bool {
	return r.ID != nil
}

// HasDescription reports whether the reference carries a phrase.
func (r Reference) HasDescription() bool {
	return r.ID == nil && r.Description != ""
}

// IsEmpty reports whether nothing could be extracted.
func (r Reference) IsEmpty() bool {
	return !r.HasID() && !r.HasDescription()
}

// taskIDPattern covers "task #5", "task 5", "#5", "task id 5" and "task number 5".
// The leftmost match wins.
var taskIDPattern = regexp.MustCompile(`(?i)task\s+#?(\d+)|#(\d+)|task\s+id\s+(\d+)|task\s+number\s+(\d+)`)

// malformedHashRef matches captured phrases such as "#abc" or "task #abc".
var malformedHashRef = regexp.MustCompile(`(?i)^(?:task\s*)?#`)

// descriptionRules are tried in order; the first capture that survives filtering wins.
var descriptionRules = compileRules(
	`mark\s+(.*?)\s+as\s+(?:complete|completed|done|finished)`,
	`completed\s+(.*?)(?:\.|\?|$)`,
	`finished\s+(.*?)(?:\.|\?|$)`,
	`done\s+with\s+(.*?)(?:\.|\?|$)`,
	`resolved\s+(.*?)(?:\.|\?|$)`,
	`addressed\s+(.*?)(?:\.|\?|$)`,
	`fixed\s+(.*?)(?:\.|\?|$)`,
	`taken\s+care\s+of\s+(.*?)(?:\.|\?|$)`,
)

// ExtractReference pulls a task id or description out of text. An id always
// wins over a description. It never fails; an empty Reference means nothing
// usable was found.
func (d *Detector) ExtractReference(text string) Reference {
	if id, ok := extractTaskID(text); ok {
		return Reference{ID: &id}
	}

	for _, rule := range descriptionRules {
		m := rule.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		desc := strings.TrimSpace(m[1])
		if desc == "" || malformedHashRef.MatchString(desc) {
			continue
		}
		return Reference{Description: desc}
	}

	return Reference{}
}

func extractTaskID(text string) (int64, bool) {
	for _, m := range taskIDPattern.FindAllStringSubmatch(text, -1) {
		for _, group := range m[1:] {
			if group == "" {
				continue
			}
			id, err := strconv.ParseInt(group, 10, 64)
			if err != nil {
				continue
			}
			return id, true
		}
	}
	return 0, false
}

func compileRules(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile("(?i)" + p)
	}
	return out
}
