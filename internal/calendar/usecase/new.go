package usecase

import (
	"time"

	"nurse-manager/internal/calendar"
	"nurse-manager/internal/calendar/repository"
	"nurse-manager/pkg/datemath"
	"nurse-manager/pkg/log"
)

// MirrorConfig controls how stored events are copied to Google Calendar.
type MirrorConfig struct {
	CalendarID      string
	Timezone        string
	ReminderMinutes int64
}

type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	detector calendar.Detector
	parser   *datemath.Parser
	mirror   calendar.Mirror
	mcfg     MirrorConfig
	now      func() time.Time
}

// New creates the calendar use case. mirror may be nil, which disables mirroring.
func New(
	l log.Logger,
	repo repository.Repository,
	detector calendar.Detector,
	parser *datemath.Parser,
	mirror calendar.Mirror,
	mcfg MirrorConfig,
) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		detector: detector,
		parser:   parser,
		mirror:   mirror,
		mcfg:     mcfg,
		now:      time.Now,
	}
}
