package http

import (
	"nurse-manager/internal/copilot"
	"nurse-manager/pkg/log"
)

type handler struct {
	l             log.Logger
	uc            copilot.UseCase
	defaultUserID int64
}

// New creates a new HTTP handler for the copilot. defaultUserID is used when
// the request carries no authenticated user.
func New(l log.Logger, uc copilot.UseCase, defaultUserID int64) *handler {
	return &handler{l: l, uc: uc, defaultUserID: defaultUserID}
}
