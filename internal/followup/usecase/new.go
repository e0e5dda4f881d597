package usecase

import (
	"time"

	"nurse-manager/internal/followup"
	"nurse-manager/internal/followup/repository"
	"nurse-manager/pkg/log"
)

// implUseCase is the private implementation of followup.UseCase.
type implUseCase struct {
	repo     repository.Repository
	detector followup.Detector
	samples  followup.SampleSource
	l        log.Logger
	now      func() time.Time
}

// New creates a new followup UseCase implementation. samples may be nil.
func New(l log.Logger, repo repository.Repository, detector followup.Detector, samples followup.SampleSource) *implUseCase {
	return &implUseCase{
		repo:     repo,
		detector: detector,
		samples:  samples,
		l:        l,
		now:      time.Now,
	}
}
