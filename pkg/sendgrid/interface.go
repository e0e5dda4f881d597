package sendgrid

import "context"

// ISendGrid sends transactional email through the SendGrid v3 API.
// Implementations are safe for concurrent use.
type ISendGrid interface {
	Send(ctx context.Context, msg Message) error
}

// New creates a SendGrid client with the given configuration.
func New(cfg Config) (ISendGrid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newSendGridImpl(cfg), nil
}
