package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type openAIImpl struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func (c *openAIImpl) Model() string {
	return c.model
}

// CreateChatCompletion sends req to the chat completions endpoint.
// An empty req.Model uses the configured model.
func (c *openAIImpl) CreateChatCompletion(ctx context.Context, req *Request) (*Response, error) {
	body := *req
	if body.Model == "" {
		body.Model = c.model
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatCompletionsPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if err := json.Unmarshal(raw, &errResp); err != nil || errResp.Error.Message == "" {
			return nil, fmt.Errorf("openai: API error %d: %s", resp.StatusCode, string(raw))
		}
		return nil, fmt.Errorf("openai: API error %d: %s", resp.StatusCode, errResp.Error.Message)
	}

	var result Response
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("openai: failed to parse response: %w", err)
	}
	return &result, nil
}
