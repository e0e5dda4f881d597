package llmprovider

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"nurse-manager/pkg/log"
)

type mockProvider struct {
	name      string
	fail      int // number of calls that fail before succeeding; -1 fails forever
	text      string
	callCount int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.fail < 0 || m.callCount <= m.fail {
		return nil, errors.New("mock provider error")
	}
	return &Response{Text: m.text, ProviderName: m.name, ModelName: m.name + "-model", Usage: &Usage{InputTokens: 10, OutputTokens: 5}}, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.name + "-model" }

func TestManagerGenerateContent(t *testing.T) {
	req := &Request{Messages: []Message{{Role: RoleUser, Text: "Who is at risk?"}}}

	t.Run("primary succeeds", func(t *testing.T) {
		primary := &mockProvider{name: "primary", text: "ok"}
		secondary := &mockProvider{name: "secondary", text: "backup"}
		m := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 1}, log.NewNop())

		resp, err := m.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.ProviderName != "primary" || secondary.callCount != 0 {
			t.Errorf("provider = %s, secondary calls = %d", resp.ProviderName, secondary.callCount)
		}
	})

	t.Run("fallback to secondary", func(t *testing.T) {
		primary := &mockProvider{name: "primary", fail: -1}
		secondary := &mockProvider{name: "secondary", text: "backup"}
		m := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 2}, log.NewNop())

		resp, err := m.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "backup" || primary.callCount != 2 {
			t.Errorf("text = %q, primary calls = %d", resp.Text, primary.callCount)
		}
	})

	t.Run("fallback disabled", func(t *testing.T) {
		primary := &mockProvider{name: "primary", fail: -1}
		secondary := &mockProvider{name: "secondary", text: "backup"}
		m := NewManager([]Provider{primary, secondary}, &Config{RetryAttempts: 1}, log.NewNop())

		_, err := m.GenerateContent(context.Background(), req)
		if !errors.Is(err, ErrAllProvidersFailed) || secondary.callCount != 0 {
			t.Errorf("err = %v, secondary calls = %d", err, secondary.callCount)
		}
	})

	t.Run("every provider failure is reported", func(t *testing.T) {
		a := &mockProvider{name: "a", fail: -1}
		b := &mockProvider{name: "b", fail: -1}
		m := NewManager([]Provider{a, b}, &Config{FallbackEnabled: true, RetryAttempts: 2}, log.NewNop())

		_, err := m.GenerateContent(context.Background(), req)
		if !errors.Is(err, ErrAllProvidersFailed) {
			t.Fatalf("err = %v", err)
		}
		var pe *ProviderError
		if !errors.As(err, &pe) || pe.Provider != "a" || pe.Attempts != 2 {
			t.Errorf("first provider error = %+v", pe)
		}
		if !strings.Contains(err.Error(), "provider b failed after 2 attempt(s)") {
			t.Errorf("err = %v", err)
		}
	})

	t.Run("retry then succeed", func(t *testing.T) {
		p := &mockProvider{name: "flaky", fail: 2, text: "third time"}
		m := NewManager([]Provider{p}, &Config{RetryAttempts: 3, RetryDelay: time.Millisecond}, log.NewNop())

		resp, err := m.GenerateContent(context.Background(), req)
		if err != nil || resp.Text != "third time" || p.callCount != 3 {
			t.Errorf("resp = %+v, err = %v, calls = %d", resp, err, p.callCount)
		}
	})

	t.Run("empty text counts as failure", func(t *testing.T) {
		empty := &mockProvider{name: "empty", text: "   "}
		good := &mockProvider{name: "good", text: "answer"}
		m := NewManager([]Provider{empty, good}, &Config{FallbackEnabled: true}, log.NewNop())

		resp, err := m.GenerateContent(context.Background(), req)
		if err != nil || resp.ProviderName != "good" {
			t.Errorf("resp = %+v, err = %v", resp, err)
		}
	})

	t.Run("no providers", func(t *testing.T) {
		m := NewManager(nil, nil, log.NewNop())
		if _, err := m.GenerateContent(context.Background(), req); !errors.Is(err, ErrNoProvidersConfigured) {
			t.Errorf("err = %v", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		p := &mockProvider{name: "p", text: "x"}
		m := NewManager([]Provider{p}, &Config{FallbackEnabled: true}, log.NewNop())
		if _, err := m.GenerateContent(ctx, req); !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v", err)
		}
	})
}
