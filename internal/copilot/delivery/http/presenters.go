package http

import (
	"nurse-manager/internal/copilot"
	"nurse-manager/internal/model"
	"nurse-manager/pkg/response"
)

type askReq struct {
	Prompt         string `json:"prompt"          binding:"required,max=4000"`
	ConversationID *int64 `json:"conversation_id" binding:"omitempty,min=1"`
}

func (r askReq) toInput(userID int64) copilot.AskInput {
	return copilot.AskInput{UserID: userID, Prompt: r.Prompt, ConversationID: r.ConversationID}
}

type askResp struct {
	Response       string `json:"response"`
	ConversationID int64  `json:"conversation_id"`
	Source         string `json:"source"`
	TaskID         *int64 `json:"task_id,omitempty"`
	EventCreated   bool   `json:"event_created"`
}

func (h *handler) newAskResp(o copilot.AskOutput) askResp {
	return askResp{
		Response:       o.Response,
		ConversationID: o.ConversationID,
		Source:         o.Source,
		TaskID:         o.TaskID,
		EventCreated:   o.EventCreated,
	}
}

type conversationResp struct {
	ID        int64             `json:"id"`
	Title     string            `json:"title"`
	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func newConversationResp(c model.Conversation) conversationResp {
	return conversationResp{
		ID:        c.ID,
		Title:     c.Title,
		CreatedAt: response.DateTime(c.CreatedAt),
		UpdatedAt: response.DateTime(c.UpdatedAt),
	}
}

type listResp struct {
	Conversations []conversationResp `json:"conversations"`
}

func (h *handler) newListResp(convs []model.Conversation) listResp {
	out := listResp{Conversations: make([]conversationResp, len(convs))}
	for i, c := range convs {
		out.Conversations[i] = newConversationResp(c)
	}
	return out
}

type messageResp struct {
	ID        int64             `json:"id"`
	Role      string            `json:"role"`
	Content   string            `json:"content"`
	CreatedAt response.DateTime `json:"created_at"`
}

type detailResp struct {
	Conversation conversationResp `json:"conversation"`
	Messages     []messageResp    `json:"messages"`
}

func (h *handler) newDetailResp(o copilot.ConversationOutput) detailResp {
	out := detailResp{
		Conversation: newConversationResp(o.Conversation),
		Messages:     make([]messageResp, len(o.Messages)),
	}
	for i, m := range o.Messages {
		out.Messages[i] = messageResp{
			ID:        m.ID,
			Role:      string(m.Role),
			Content:   m.Content,
			CreatedAt: response.DateTime(m.CreatedAt),
		}
	}
	return out
}
