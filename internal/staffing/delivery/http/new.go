package http

import (
	"time"

	"nurse-manager/internal/staffing"
	"nurse-manager/pkg/log"
)

type handler struct {
	l   log.Logger
	uc  staffing.UseCase
	now func() time.Time
}

// New creates a new HTTP handler for staffing and compliance.
func New(l log.Logger, uc staffing.UseCase) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		now: time.Now,
	}
}
