package intent

import (
	"time"
)

const defaultSystemName = "Nuvanta"

// Detector runs the copilot text heuristics. It is safe for concurrent use;
// all state is fixed at construction.
type Detector struct {
	now        func() time.Time
	systemName string

	completionPhrases     []string
	calendarKeywords      []string
	calendarConfirmations []string
	stopWords             map[string]struct{}
}

// Option configures a Detector.
type Option func(*Detector)

// WithClock overrides the time source used when resolving relative dates.
func WithClock(now func() time.Time) Option {
	return func(d *Detector) {
		if now != nil {
			d.now = now
		}
	}
}

// WithSystemName sets the name used in generic reminder titles.
func WithSystemName(name string) Option {
	return func(d *Detector) {
		if name != "" {
			d.systemName = name
		}
	}
}

// WithCatalogue replaces the embedded phrase catalogue.
func WithCatalogue(cat Catalogue) Option {
	return func(d *Detector) {
		d.applyCatalogue(cat)
	}
}

// New builds a Detector from the embedded catalogue and the given options.
func New(opts ...Option) *Detector {
	d := &Detector{
		now:        time.Now,
		systemName: defaultSystemName,
	}
	d.applyCatalogue(DefaultCatalogue())
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SystemName returns the configured assistant name.
func (d *Detector) SystemName() string {
	return d.systemName
}

func (d *Detector) applyCatalogue(cat Catalogue) {
	d.completionPhrases = lowerAll(cat.CompletionPhrases)
	d.calendarKeywords = lowerAll(cat.CalendarKeywords)
	d.calendarConfirmations = lowerAll(cat.CalendarConfirmations)

	d.stopWords = make(map[string]struct{}, len(cat.NameStopWords))
	for _, w := range cat.NameStopWords {
		d.stopWords[w] = struct{}{}
	}
}
