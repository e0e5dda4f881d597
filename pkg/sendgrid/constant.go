package sendgrid

import "time"

const (
	DefaultBaseURL = "https://api.sendgrid.com"
	sendPath       = "/v3/mail/send"
	defaultTimeout = 15 * time.Second
)
