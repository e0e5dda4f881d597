package intent

import (
	"regexp"
	"strconv"
	"time"

	"nurse-manager/pkg/datemath"
)

// Schedule is what the extractor found in a copilot exchange.
type Schedule struct {
	Date time.Time
	// DateInferred is true when no date expression was found and Date is the
	// extraction time.
	DateInferred bool
	Names        []string
}

type dateRule struct {
	unit    datemath.Unit
	pattern *regexp.Regexp
}

// dateRules are evaluated in order, first match wins.
var dateRules = []dateRule{
	{unit: datemath.UnitMonth, pattern: regexp.MustCompile(`(?i)\b(in|after|next|following)\s+(\d+)\s+months?\b`)},
	{unit: datemath.UnitWeek, pattern: regexp.MustCompile(`(?i)\b(in|after|next|following)\s+(\d+)\s+weeks?\b`)},
	{unit: datemath.UnitDay, pattern: regexp.MustCompile(`(?i)\b(in|after|next|following)\s+(\d+)\s+days?\b`)},
}

var namePattern = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\b`)

// ExtractSchedule resolves the event date and the people mentioned in a
// prompt and its response.
func (d *Detector) ExtractSchedule(prompt, response string) Schedule {
	now := d.now()

	sched := Schedule{
		Date:         now,
		DateInferred: true,
		Names:        d.extractNames(prompt, response),
	}

	if date, ok := resolveDate(now, prompt, response); ok {
		sched.Date = date
		sched.DateInferred = false
	}

	return sched
}

func resolveDate(now time.Time, texts ...string) (time.Time, bool) {
	for _, rule := range dateRules {
		for _, text := range texts {
			m := rule.pattern.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			n, err := strconv.Atoi(m[2])
			if err != nil {
				continue
			}
			return datemath.Shift(now, n, rule.unit), true
		}
	}
	return time.Time{}, false
}

func (d *Detector) extractNames(texts ...string) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, text := range texts {
		for _, m := range namePattern.FindAllStringSubmatch(text, -1) {
			name := m[1]
			if _, stop := d.stopWords[name]; stop {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}
