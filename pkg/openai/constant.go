package openai

import "time"

const (
	// DefaultBaseURL is the OpenAI API endpoint. Any server speaking the
	// chat completions protocol (DeepSeek, Qwen, Ollama) can be used instead.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is used when Config.Model is empty.
	DefaultModel = "gpt-4o-mini"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	chatCompletionsPath = "/chat/completions"
)
