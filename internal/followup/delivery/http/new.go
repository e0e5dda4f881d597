package http

import (
	"nurse-manager/internal/followup"
	"nurse-manager/pkg/log"
)

type handler struct {
	l  log.Logger
	uc followup.UseCase
}

// New creates a new HTTP handler for the followup domain.
func New(l log.Logger, uc followup.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
