package llmprovider

import (
	"context"
	"strings"
)

// Message roles understood by every adapter.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Provider is a single text generation backend.
type Provider interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	// Name returns the provider name (e.g. "openai", "gemini")
	Name() string
	Model() string
}

// Request is a provider-neutral generation request.
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
}

// Message is one conversation turn.
type Message struct {
	Role string
	Text string
}

// Response is a provider-neutral generation result.
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// IsEmpty reports whether the provider produced no usable text.
func (r *Response) IsEmpty() bool {
	return r == nil || strings.TrimSpace(r.Text) == ""
}
