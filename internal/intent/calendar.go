package intent

import "strings"

// IsCalendarIntent reports whether a copilot exchange should produce a calendar
// event. Either a request keyword in the prompt or a confirmation phrase in the
// response is enough.
//
// NOTE: the OR favours recall. A prompt that merely mentions "calendar" counts
// as a request.
func (d *Detector) IsCalendarIntent(prompt, response string) bool {
	requested := containsAny(strings.ToLower(prompt), d.calendarKeywords)
	confirmed := containsAny(strings.ToLower(response), d.calendarConfirmations)
	return requested || confirmed
}
