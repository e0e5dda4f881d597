package usecase

import (
	"nurse-manager/internal/auth/repository"
	"nurse-manager/pkg/encrypter"
	"nurse-manager/pkg/log"
	"nurse-manager/pkg/scope"
)

type implUseCase struct {
	repo   repository.Repository
	tokens scope.Manager
	enc    encrypter.Encrypter
	l      log.Logger
}

// New creates a new auth UseCase implementation.
func New(l log.Logger, repo repository.Repository, tokens scope.Manager, enc encrypter.Encrypter) *implUseCase {
	return &implUseCase{
		repo:   repo,
		tokens: tokens,
		enc:    enc,
		l:      l,
	}
}
