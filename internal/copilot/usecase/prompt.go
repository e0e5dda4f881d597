package usecase

import (
	"context"
	"fmt"
	"strings"

	"nurse-manager/internal/copilot"
	"nurse-manager/internal/model"
	"nurse-manager/pkg/llmprovider"
)

type focus string

const (
	focusWellness   focus = "staff wellness"
	focusStaffing   focus = "staffing"
	focusCompliance focus = "compliance"
	focusTasks      focus = "tasks"
	focusMetrics    focus = "metrics"
	focusFinancial  focus = "financial"
	focusGeneral    focus = "general"
)

// focusRules is evaluated in order; the first rule with a matching keyword wins.
var focusRules = []struct {
	focus    focus
	keywords []string
}{
	{focusWellness, []string{"burnout", "stress", "wellness"}},
	{focusStaffing, []string{"schedule", "staffing", "shift"}},
	{focusCompliance, []string{"compliance", "report", "regulation"}},
	{focusTasks, []string{"follow", "task", "todo"}},
	{focusMetrics, []string{"metric", "performance", "quality"}},
	{focusFinancial, []string{"budget", "cost", "financial"}},
}

func detectFocus(prompt string) focus {
	lower := strings.ToLower(prompt)
	for _, rule := range focusRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.focus
			}
		}
	}
	return focusGeneral
}

const instructions = `Answer the user's query as their knowledgeable healthcare management assistant.
You have access to the previous conversation history; use it when the user refers to earlier messages.

CALENDAR INSTRUCTIONS: when the user asks for a reminder or calendar entry, state the date it is set for
and use this exact phrasing: "I've added this to your calendar". The system creates the entry from your reply.

Format guidelines:
- Use HTML (<p>, <ul>, <li>, <strong>, <em>, <h3>)
- Break answers into short sections with <strong> headings
- Highlight important numbers and include specific recommendations`

// buildRequest assembles the system prompt from the dashboard data plus the
// most recent history.
func (uc *implUseCase) buildRequest(ctx context.Context, prompt string, history []model.Message) *llmprovider.Request {
	var b strings.Builder
	fmt.Fprintf(&b, "You are %s, an AI assistant for nurse managers. Respond in a helpful, direct manner with actionable insights.\n\n", uc.cfg.SystemName)
	b.WriteString("Base your response on this current hospital information:\n")
	uc.writeContext(ctx, &b)
	fmt.Fprintf(&b, "\nThe user's query relates to %s.\n\n", detectFocus(prompt))
	b.WriteString(instructions)

	if len(history) > copilot.HistoryLimit {
		history = history[len(history)-copilot.HistoryLimit:]
	}
	msgs := make([]llmprovider.Message, 0, len(history)+1)
	for _, m := range history {
		role := llmprovider.RoleAssistant
		if m.Role == model.MessageRoleUser {
			role = llmprovider.RoleUser
		}
		msgs = append(msgs, llmprovider.Message{Role: role, Text: m.Content})
	}
	msgs = append(msgs, llmprovider.Message{Role: llmprovider.RoleUser, Text: prompt})

	return &llmprovider.Request{
		SystemInstruction: b.String(),
		Messages:          msgs,
		Temperature:       uc.cfg.Temperature,
		MaxTokens:         uc.cfg.MaxTokens,
	}
}

func (uc *implUseCase) writeContext(ctx context.Context, b *strings.Builder) {
	today := uc.now()

	b.WriteString("STAFFING DATA:\n")
	fmt.Fprintf(b, "- Total nurses: %d\n", len(uc.roster.Nurses()))
	if uc.roster.Contains(today) {
		s := uc.roster.StaffingForDay(today)
		fmt.Fprintf(b, "- Day staffing today: %d/%d\n", s.Day, s.DayRequired)
		fmt.Fprintf(b, "- Night staffing today: %d/%d\n", s.Night, s.NightRequired)
	}
	atRisk := uc.roster.AtRisk()
	names := make([]string, len(atRisk))
	for i, n := range atRisk {
		names[i] = fmt.Sprintf("%s (%s, %d consecutive shifts)", n.Name, n.Unit, n.ConsecutiveShifts)
	}
	fmt.Fprintf(b, "- High burnout risk: %d nurses: %s\n", len(atRisk), strings.Join(names, "; "))

	b.WriteString("\nUNITS:\n")
	for _, u := range uc.roster.Units() {
		fmt.Fprintf(b, "- %s: %d beds, requires %d day / %d night nurses\n", u.Name, u.Beds, u.RequiredNursesDay, u.RequiredNursesNight)
	}

	b.WriteString("\nFOLLOW-UP TASKS:\n")
	pending, err := uc.tasks.Pending(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "uc.writeContext.Pending: %v", err)
	}
	for _, t := range pending.Items {
		fmt.Fprintf(b, "- #%d %s (%s priority, %s)\n", t.ID, t.Description, t.Priority, t.Status)
	}

	b.WriteString("\nCOMPLIANCE REPORTS:\n")
	for _, r := range uc.roster.ComplianceReports() {
		fmt.Fprintf(b, "- %s: due %s, %d%% complete\n", r.Name, r.DueDate.Format("2006-01-02"), r.PercentComplete)
	}
}
