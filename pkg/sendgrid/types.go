package sendgrid

import (
	"errors"
	"net/http"
)

var (
	ErrMissingAPIKey  = errors.New("sendgrid: api key is required")
	ErrMissingFrom    = errors.New("sendgrid: from address is required")
	ErrNoRecipients   = errors.New("sendgrid: at least one recipient is required")
	ErrMissingSubject = errors.New("sendgrid: subject is required")
	ErrMissingBody    = errors.New("sendgrid: text or html content is required")
)

// Config holds the client settings.
type Config struct {
	APIKey     string
	BaseURL    string
	From       Address
	HTTPClient *http.Client
}

// Validate checks required fields and applies defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.From.Email == "" {
		return ErrMissingFrom
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: defaultTimeout}
	}
	return nil
}

// Address is an email address with an optional display name.
type Address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Attachment is a base64 encoded file.
type Attachment struct {
	Content     string `json:"content"`
	Filename    string `json:"filename"`
	Type        string `json:"type,omitempty"`
	Disposition string `json:"disposition,omitempty"`
}

// Message is one email. From overrides the configured sender when set.
type Message struct {
	To          []string
	From        *Address
	ReplyTo     string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
}

// Validate checks the fields SendGrid rejects.
func (m Message) Validate() error {
	if len(m.To) == 0 {
		return ErrNoRecipients
	}
	if m.Subject == "" {
		return ErrMissingSubject
	}
	if m.Text == "" && m.HTML == "" {
		return ErrMissingBody
	}
	return nil
}

// --- wire format of POST /v3/mail/send ---

type mailRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             Address           `json:"from"`
	ReplyTo          *Address          `json:"reply_to,omitempty"`
	Subject          string            `json:"subject"`
	Content          []content         `json:"content"`
	Attachments      []Attachment      `json:"attachments,omitempty"`
}

type personalization struct {
	To []Address `json:"to"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type errorResponse struct {
	Errors []struct {
		Message string `json:"message"`
		Field   string `json:"field"`
	} `json:"errors"`
}
