package http

import (
	"nurse-manager/internal/calendar"
	"nurse-manager/pkg/log"
)

type handler struct {
	l  log.Logger
	uc calendar.UseCase
}

// New creates a new HTTP handler for calendar events.
func New(l log.Logger, uc calendar.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
