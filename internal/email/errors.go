package email

import "errors"

var (
	ErrNotConfigured    = errors.New("email delivery is not configured")
	ErrDeliveryFailed   = errors.New("failed to send email")
	ErrMissingFields    = errors.New("missing required fields")
	ErrInvalidAlertType = errors.New("alert_type must be one of: Critical, Important, Informational")
)
