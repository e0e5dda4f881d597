package gemini

import "time"

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultAPIURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 30 * time.Second

	apiKeyHeader = "x-goog-api-key"
)

// Gemini only knows two conversation roles; system text goes in SystemInstruction.
const (
	RoleUser  = "user"
	RoleModel = "model"
)
