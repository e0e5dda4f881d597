package llmprovider

import (
	"context"
	"strings"

	"nurse-manager/pkg/gemini"
	"nurse-manager/pkg/openai"
)

// OpenAIAdapter adapts any chat completions client to Provider.
type OpenAIAdapter struct {
	name   string
	client openai.IOpenAI
}

// NewOpenAIAdapter creates an adapter reported under name (openai, deepseek, qwen, ollama).
func NewOpenAIAdapter(name string, client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]openai.Message, 0, len(req.Messages)+1)
	if req.SystemInstruction != "" {
		msgs = append(msgs, openai.Message{Role: "system", Content: req.SystemInstruction})
	}
	for _, m := range req.Messages {
		msgs = append(msgs, openai.Message{Role: m.Role, Content: m.Text})
	}

	resp, err := a.client.CreateChatCompletion(ctx, &openai.Request{
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	out := &Response{
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) > 0 {
		out.Text = resp.Choices[0].Message.Content
	}
	if resp.Model != "" {
		out.ModelName = resp.Model
	}
	return out, nil
}

func (a *OpenAIAdapter) Name() string  { return a.name }
func (a *OpenAIAdapter) Model() string { return a.client.Model() }

// GeminiAdapter adapts pkg/gemini to Provider.
type GeminiAdapter struct {
	client gemini.IGemini
}

func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	greq := &gemini.Request{
		Messages:    make([]gemini.Content, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != "" {
		greq.SystemInstruction = &gemini.Content{Parts: []gemini.Part{{Text: req.SystemInstruction}}}
	}
	for i, m := range req.Messages {
		greq.Messages[i] = gemini.Content{Role: geminiRole(m.Role), Parts: []gemini.Part{{Text: m.Text}}}
	}

	resp, err := a.client.GenerateContent(ctx, greq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text(),
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CandidatesTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (a *GeminiAdapter) Name() string  { return "gemini" }
func (a *GeminiAdapter) Model() string { return a.client.Model() }

func geminiRole(role string) string {
	if strings.EqualFold(role, RoleAssistant) {
		return gemini.RoleModel
	}
	return gemini.RoleUser
}
