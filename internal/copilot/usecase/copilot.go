package usecase

import (
	"context"
	"fmt"
	"html"
	"strings"

	"nurse-manager/internal/calendar"
	"nurse-manager/internal/copilot"
	"nurse-manager/internal/copilot/repository"
	"nurse-manager/internal/followup"
	"nurse-manager/internal/model"
	"nurse-manager/internal/roster"
)

const (
	sourceTask    = "task"
	sourceCanned  = "canned"
	sourceLLM     = "llm"
	sourceDefault = "default"
)

const actionTakenFormat = `<p><strong>Action Taken:</strong> %s</p>
<p>The task has been marked as complete and logged in the system.</p>`

// Ask answers one prompt. Task completion runs first; if it does not apply the
// canned routes are tried, then the model, then the default answer. Calendar
// processing runs last and never fails the request.
func (uc *implUseCase) Ask(ctx context.Context, input copilot.AskInput) (copilot.AskOutput, error) {
	prompt := strings.TrimSpace(input.Prompt)
	if prompt == "" {
		return copilot.AskOutput{}, copilot.ErrPromptRequired
	}

	conv, history, err := uc.openConversation(ctx, input.UserID, input.ConversationID, prompt)
	if err != nil {
		return copilot.AskOutput{}, err
	}
	out := copilot.AskOutput{ConversationID: conv.ID}

	result, err := uc.tasks.ProcessCompletionRequest(ctx, followup.CompletionInput{
		Prompt:      prompt,
		CompletedBy: input.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Ask.ProcessCompletionRequest: %v", err)
		return copilot.AskOutput{}, err
	}

	if result.Success {
		out.Response = fmt.Sprintf(actionTakenFormat, html.EscapeString(result.Message))
		out.Source = sourceTask
		if result.Task != nil {
			id := result.Task.ID
			out.TaskID = &id
		}
	} else {
		out.Response, out.Source = uc.answer(ctx, prompt, history)
	}

	if err := uc.record(ctx, conv.ID, input.UserID, prompt, out.Response); err != nil {
		return copilot.AskOutput{}, err
	}

	ev, err := uc.calendar.ProcessConversation(ctx, calendar.ProcessConversationInput{
		UserID:   input.UserID,
		Prompt:   prompt,
		Response: out.Response,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Ask.ProcessConversation (non-fatal): %v", err)
	} else {
		out.EventCreated = ev.Created
	}

	return out, nil
}

// answer picks the canned route for prompt, falling back to the model.
func (uc *implUseCase) answer(ctx context.Context, prompt string, history []model.Message) (string, string) {
	lower := strings.ToLower(prompt)
	switch {
	case strings.Contains(lower, "follow up"):
		return uc.roster.Answer(roster.AnswerFollowUps), sourceCanned
	case strings.Contains(lower, "burnout"), strings.Contains(lower, "risk"):
		return uc.roster.Answer(roster.AnswerBurnout), sourceCanned
	case strings.Contains(lower, "priorities"), strings.Contains(lower, "top"):
		return uc.roster.Answer(roster.AnswerPriorities), sourceCanned
	}

	if uc.llm == nil {
		return uc.roster.Answer(roster.AnswerDefault), sourceDefault
	}

	resp, err := uc.llm.GenerateContent(ctx, uc.buildRequest(ctx, prompt, history))
	if err != nil {
		uc.l.Warnf(ctx, "uc.answer.GenerateContent: %v", err)
		return uc.roster.Answer(roster.AnswerDefault), sourceDefault
	}
	return resp.Text, sourceLLM
}

// openConversation loads conversationID with its history, or creates a new
// conversation titled after prompt.
func (uc *implUseCase) openConversation(ctx context.Context, userID int64, conversationID *int64, prompt string) (model.Conversation, []model.Message, error) {
	if conversationID != nil {
		conv, err := uc.ownedConversation(ctx, userID, *conversationID)
		if err != nil {
			return model.Conversation{}, nil, err
		}
		history, err := uc.repo.ListMessages(ctx, conv.ID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.openConversation.ListMessages: %v", err)
			return model.Conversation{}, nil, err
		}
		return conv, history, nil
	}

	conv, err := uc.repo.CreateConversation(ctx, repository.CreateConversationOptions{
		UserID: userID,
		Title:  conversationTitle(prompt),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.openConversation.CreateConversation: %v", err)
		return model.Conversation{}, nil, err
	}
	return conv, nil, nil
}

// record stores both turns and the flat prompt log, then bumps the conversation.
func (uc *implUseCase) record(ctx context.Context, conversationID, userID int64, prompt, response string) error {
	for _, m := range []repository.CreateMessageOptions{
		{ConversationID: conversationID, Role: model.MessageRoleUser, Content: prompt},
		{ConversationID: conversationID, Role: model.MessageRoleAssistant, Content: response},
	} {
		if _, err := uc.repo.CreateMessage(ctx, m); err != nil {
			uc.l.Errorf(ctx, "uc.record.CreateMessage: %v", err)
			return err
		}
	}

	if _, err := uc.repo.CreatePromptLog(ctx, repository.CreatePromptLogOptions{
		UserID:   userID,
		Prompt:   prompt,
		Response: response,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.record.CreatePromptLog: %v", err)
		return err
	}

	if err := uc.repo.TouchConversation(ctx, conversationID); err != nil {
		uc.l.Errorf(ctx, "uc.record.TouchConversation: %v", err)
		return err
	}
	return nil
}

func conversationTitle(prompt string) string {
	r := []rune(prompt)
	if len(r) <= copilot.TitleLength {
		return prompt
	}
	return string(r[:copilot.TitleLength]) + "..."
}
