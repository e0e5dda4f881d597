package llmprovider

import (
	"context"
	"testing"

	"nurse-manager/pkg/gemini"
	"nurse-manager/pkg/openai"
)

type fakeOpenAI struct {
	got *openai.Request
}

func (f *fakeOpenAI) CreateChatCompletion(ctx context.Context, req *openai.Request) (*openai.Response, error) {
	f.got = req
	return &openai.Response{
		Choices: []openai.Choice{{Message: openai.Message{Role: "assistant", Content: "hi"}}},
		Usage:   openai.Usage{PromptTokens: 3, CompletionTokens: 1, TotalTokens: 4},
	}, nil
}

func (f *fakeOpenAI) Model() string { return "deepseek-chat" }

type fakeGemini struct {
	got *gemini.Request
}

func (f *fakeGemini) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	f.got = req
	return &gemini.Response{
		Content: gemini.Content{Role: gemini.RoleModel, Parts: []gemini.Part{{Text: "hello"}}},
		Usage:   &gemini.Usage{PromptTokens: 2, CandidatesTokens: 1, TotalTokens: 3},
	}, nil
}

func (f *fakeGemini) Model() string { return "gemini-2.5-flash" }

func TestAdapters(t *testing.T) {
	req := &Request{
		SystemInstruction: "You are a nurse manager assistant.",
		Messages: []Message{
			{Role: RoleUser, Text: "Hi"},
			{Role: RoleAssistant, Text: "Hello"},
			{Role: RoleUser, Text: "Who is on nights?"},
		},
	}

	t.Run("openai", func(t *testing.T) {
		client := &fakeOpenAI{}
		resp, err := NewOpenAIAdapter("deepseek", client).GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatal(err)
		}
		if len(client.got.Messages) != 4 || client.got.Messages[0].Role != "system" || client.got.Messages[2].Role != "assistant" {
			t.Errorf("messages = %+v", client.got.Messages)
		}
		if resp.Text != "hi" || resp.ProviderName != "deepseek" || resp.Usage.TotalTokens != 4 {
			t.Errorf("resp = %+v", resp)
		}
	})

	t.Run("gemini", func(t *testing.T) {
		client := &fakeGemini{}
		resp, err := NewGeminiAdapter(client).GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatal(err)
		}
		if client.got.SystemInstruction == nil || client.got.SystemInstruction.Parts[0].Text != req.SystemInstruction {
			t.Errorf("system instruction = %+v", client.got.SystemInstruction)
		}
		if len(client.got.Messages) != 3 || client.got.Messages[1].Role != gemini.RoleModel {
			t.Errorf("messages = %+v", client.got.Messages)
		}
		if resp.Text != "hello" || resp.Usage.OutputTokens != 1 {
			t.Errorf("resp = %+v", resp)
		}
	})
}
