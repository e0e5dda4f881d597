package openai

import "context"

// IOpenAI is a chat completions client. Implementations are safe for concurrent use.
type IOpenAI interface {
	CreateChatCompletion(ctx context.Context, req *Request) (*Response, error)
	// Model returns the default model
	Model() string
}

// New creates a new client with the given configuration
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &openAIImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}, nil
}
