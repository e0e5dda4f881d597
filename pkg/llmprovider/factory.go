package llmprovider

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"nurse-manager/config"
	"nurse-manager/pkg/gemini"
	"nurse-manager/pkg/log"
	"nurse-manager/pkg/openai"
)

// Default endpoints for the OpenAI-compatible providers.
var compatibleBaseURLs = map[string]string{
	"openai":   openai.DefaultBaseURL,
	"deepseek": "https://api.deepseek.com/v1",
	"qwen":     "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
	"ollama":   "http://localhost:11434/v1",
}

// NewManagerFromConfig builds a Manager from cfg. It returns ErrNoProvidersConfigured
// when nothing is enabled, which callers treat as "run without a model".
func NewManagerFromConfig(cfg *config.LLMConfig, l log.Logger) (*Manager, error) {
	providers, err := InitializeProviders(cfg, l)
	if err != nil {
		return nil, err
	}
	return NewManager(providers, &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      parseDuration(cfg.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.MaxTotalTimeout, 0),
	}, l), nil
}

// InitializeProviders creates Provider instances sorted by priority, skipping
// disabled providers and those that fail to initialize.
func InitializeProviders(cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var (
		providers  []Provider
		initErrors []string
	)
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			msg := fmt.Sprintf("provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, msg)
			l.Warnf(context.Background(), "llmprovider.InitializeProviders: skipping %s", msg)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}
	return providers, nil
}

func createProvider(cfg config.ProviderConfig) (Provider, error) {
	name := strings.ToLower(cfg.Name)
	if cfg.APIKey == "" && name != "ollama" {
		return nil, fmt.Errorf("API key is required")
	}

	timeout := parseDuration(cfg.Timeout, 0)

	switch name {
	case "gemini":
		gcfg := gemini.Config{APIKey: cfg.APIKey, Model: cfg.Model, APIURL: cfg.BaseURL}
		if timeout > 0 {
			gcfg.HTTPClient = &http.Client{Timeout: timeout}
		}
		client, err := gemini.New(gcfg)
		if err != nil {
			return nil, err
		}
		return NewGeminiAdapter(client), nil

	case "openai", "deepseek", "qwen", "ollama":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = compatibleBaseURLs[name]
		}
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = "ollama"
		}
		ocfg := openai.Config{APIKey: apiKey, Model: cfg.Model, BaseURL: baseURL}
		if timeout > 0 {
			ocfg.HTTPClient = &http.Client{Timeout: timeout}
		}
		client, err := openai.New(ocfg)
		if err != nil {
			return nil, err
		}
		return NewOpenAIAdapter(name, client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
