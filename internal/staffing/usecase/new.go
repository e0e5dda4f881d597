package usecase

import (
	"time"

	"nurse-manager/internal/staffing"
	"nurse-manager/pkg/log"
)

type implUseCase struct {
	l      log.Logger
	roster staffing.Roster
	now    func() time.Time
}

// New creates a new staffing use case.
func New(l log.Logger, roster staffing.Roster) *implUseCase {
	return &implUseCase{
		l:      l,
		roster: roster,
		now:    time.Now,
	}
}
