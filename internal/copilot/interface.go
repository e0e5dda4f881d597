package copilot

import (
	"context"
	"time"

	"nurse-manager/internal/calendar"
	"nurse-manager/internal/followup"
	"nurse-manager/internal/model"
	"nurse-manager/internal/roster"
	"nurse-manager/pkg/llmprovider"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Ask(ctx context.Context, input AskInput) (AskOutput, error)
	Conversations(ctx context.Context, userID int64) ([]model.Conversation, error)
	Conversation(ctx context.Context, userID, conversationID int64) (ConversationOutput, error)
}

// Generator produces free-form answers. *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Tasks is the follow-up surface the copilot drives.
type Tasks interface {
	ProcessCompletionRequest(ctx context.Context, input followup.CompletionInput) (followup.CompletionResult, error)
	Pending(ctx context.Context) (followup.PendingOutput, error)
}

// Calendar turns an exchange into a reminder.
type Calendar interface {
	ProcessConversation(ctx context.Context, input calendar.ProcessConversationInput) (calendar.ProcessConversationOutput, error)
}

// Roster is the read-only hospital data. *roster.Provider satisfies it.
type Roster interface {
	Answer(kind roster.AnswerKind) string
	Nurses() []roster.Nurse
	Units() []roster.Unit
	AtRisk() []roster.Nurse
	ComplianceReports() []roster.ComplianceReport
	Contains(date time.Time) bool
	StaffingForDay(date time.Time) roster.DayStaffing
}
