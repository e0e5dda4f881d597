package http

import (
	"nurse-manager/internal/email"
	"nurse-manager/pkg/log"
)

type handler struct {
	l  log.Logger
	uc email.UseCase
}

// New creates a new HTTP handler for outbound email.
func New(l log.Logger, uc email.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
