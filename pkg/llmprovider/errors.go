package llmprovider

import (
	"errors"
	"fmt"
)

var (
	ErrAllProvidersFailed    = errors.New("all providers failed")
	ErrNoProvidersConfigured = errors.New("no providers configured")
	ErrEmptyResponse         = errors.New("provider returned an empty response")
)

// ProviderError is the final failure of one provider after its retries.
// Manager joins one per provider under ErrAllProvidersFailed.
type ProviderError struct {
	Provider string
	Attempts int
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s failed after %d attempt(s): %v", e.Provider, e.Attempts, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
