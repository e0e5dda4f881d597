package usecase

import (
	"time"

	"nurse-manager/internal/copilot"
	"nurse-manager/internal/copilot/repository"
	"nurse-manager/pkg/log"
)

const (
	defaultSystemName  = "Nuvanta"
	defaultTemperature = 0.5
	defaultMaxTokens   = 750
)

// Config tunes the model call.
type Config struct {
	SystemName  string
	Temperature float64
	MaxTokens   int
}

type implUseCase struct {
	repo     repository.Repository
	tasks    copilot.Tasks
	calendar copilot.Calendar
	roster   copilot.Roster
	llm      copilot.Generator
	cfg      Config
	l        log.Logger
	now      func() time.Time
}

// New creates a new copilot UseCase implementation. llm may be nil, in which
// case prompts outside the canned routes get the default answer.
func New(l log.Logger, repo repository.Repository, tasks copilot.Tasks, cal copilot.Calendar, rosterData copilot.Roster, llm copilot.Generator, cfg Config) *implUseCase {
	if cfg.SystemName == "" {
		cfg.SystemName = defaultSystemName
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = defaultTemperature
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	return &implUseCase{
		repo:     repo,
		tasks:    tasks,
		calendar: cal,
		roster:   rosterData,
		llm:      llm,
		cfg:      cfg,
		l:        l,
		now:      time.Now,
	}
}
