package usecase

import (
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"nurse-manager/pkg/log"
	"nurse-manager/pkg/sendgrid"
)

// Config controls the notification layout.
type Config struct {
	Brand  string
	Footer string
}

type implUseCase struct {
	l      log.Logger
	sender sendgrid.ISendGrid
	cfg    Config
	html   *htmltemplate.Template
	text   *texttemplate.Template
}

// New creates the email use case. sender may be nil when SendGrid is not
// configured; every send then fails with ErrNotConfigured.
func New(l log.Logger, sender sendgrid.ISendGrid, cfg Config) (*implUseCase, error) {
	if cfg.Brand == "" {
		cfg.Brand = defaultBrand
	}

	html, text, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("email: parse templates: %w", err)
	}

	return &implUseCase{
		l:      l,
		sender: sender,
		cfg:    cfg,
		html:   html,
		text:   text,
	}, nil
}
