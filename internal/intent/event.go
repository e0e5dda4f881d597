package intent

import (
	"regexp"
	"strings"

	"nurse-manager/internal/model"
)

const genericTitle = "AI-created reminder"

var (
	checkInPattern  = regexp.MustCompile(`(?i)\bcheck(\s+in)?\s+with\b`)
	followUpPattern = regexp.MustCompile(`(?i)\bfollow(\s*|-*)up\b`)
	remindPattern   = regexp.MustCompile(`(?i)\bremind(\s+me)?\b`)

	remindMeObject  = regexp.MustCompile(`(?i)\bremind\s+me\s+(?:about|to|of)\s+(.+?)(?:\.|\?|$)`)
	remindYouObject = regexp.MustCompile(`(?i)\bremind\s+you\s+(?:about|to|of)\s+(.+?)(?:\.|\?|$)`)
)

// titleInput is what a title rule sees.
type titleInput struct {
	prompt   string
	response string
	combined string
	names    []string
}

type titleRule struct {
	name  string
	apply func(in titleInput, systemName string) (string, bool)
}

var titleRules = []titleRule{
	{
		name: "check-in",
		apply: func(in titleInput, _ string) (string, bool) {
			if len(in.names) == 0 || !checkInPattern.MatchString(in.combined) {
				return "", false
			}
			return "Check in with " + strings.Join(in.names, ", "), true
		},
	},
	{
		name: "follow-up",
		apply: func(in titleInput, _ string) (string, bool) {
			if len(in.names) == 0 || !followUpPattern.MatchString(in.combined) {
				return "", false
			}
			return "Follow up with " + strings.Join(in.names, ", "), true
		},
	},
	{
		name: "remind",
		apply: func(in titleInput, systemName string) (string, bool) {
			if !remindPattern.MatchString(in.combined) {
				return "", false
			}
			if m := remindMeObject.FindStringSubmatch(in.prompt); m != nil {
				if obj := strings.TrimSpace(m[1]); obj != "" {
					return "Reminder: " + obj, true
				}
			}
			if m := remindYouObject.FindStringSubmatch(in.response); m != nil {
				if obj := strings.TrimSpace(m[1]); obj != "" {
					return "Reminder: " + obj, true
				}
			}
			return "Reminder from " + systemName, true
		},
	},
}

type priorityRule struct {
	priority model.Priority
	pattern  *regexp.Regexp
}

// priorityRules are evaluated in order; high is checked before low.
var priorityRules = []priorityRule{
	{priority: model.PriorityHigh, pattern: regexp.MustCompile(`(?i)\b(?:important|urgent|critical|high\s+priority)\b`)},
	{priority: model.PriorityLow, pattern: regexp.MustCompile(`(?i)\b(?:low\s+priority|whenever|not\s+urgent)\b`)},
}

// BuildEvent synthesizes a calendar event from a copilot exchange. The result
// has no owner or id; the caller sets UserID before persisting it.
func (d *Detector) BuildEvent(prompt, response string) model.CalendarEvent {
	sched := d.ExtractSchedule(prompt, response)

	in := titleInput{
		prompt:   prompt,
		response: response,
		combined: prompt + " " + response,
		names:    sched.Names,
	}

	return model.CalendarEvent{
		Title:        d.deriveTitle(in),
		Description:  prompt,
		EventDate:    sched.Date,
		Reminder:     true,
		ReminderSent: false,
		Priority:     derivePriority(in.combined),
		RelatedTo:    strings.Join(sched.Names, ", "),
	}
}

func (d *Detector) deriveTitle(in titleInput) string {
	for _, rule := range titleRules {
		if title, ok := rule.apply(in, d.systemName); ok {
			return title
		}
	}
	return genericTitle
}

func derivePriority(text string) model.Priority {
	for _, rule := range priorityRules {
		if rule.pattern.MatchString(text) {
			return rule.priority
		}
	}
	return model.PriorityMedium
}
