package copilot

import "errors"

var (
	ErrPromptRequired       = errors.New("prompt is required")
	ErrConversationNotFound = errors.New("conversation not found")
)
