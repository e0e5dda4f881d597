package sendgrid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type sendGridImpl struct {
	apiKey     string
	baseURL    string
	from       Address
	httpClient *http.Client
}

func newSendGridImpl(cfg Config) *sendGridImpl {
	return &sendGridImpl{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		from:       cfg.From,
		httpClient: cfg.HTTPClient,
	}
}

// Send delivers msg. SendGrid answers 202 Accepted on success.
func (s *sendGridImpl) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(s.transformMessage(msg))
	if err != nil {
		return fmt.Errorf("sendgrid: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+sendPath, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("sendgrid: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("sendgrid: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sendgrid: API error %d: %s", resp.StatusCode, apiErrorMessage(raw))
	}
	return nil
}

// transformMessage converts msg to the v3 wire format. Plain text must precede HTML.
func (s *sendGridImpl) transformMessage(msg Message) mailRequest {
	to := make([]Address, len(msg.To))
	for i, addr := range msg.To {
		to[i] = Address{Email: addr}
	}

	req := mailRequest{
		Personalizations: []personalization{{To: to}},
		From:             s.from,
		Subject:          msg.Subject,
		Attachments:      msg.Attachments,
	}
	if msg.From != nil {
		req.From = *msg.From
	}
	if msg.ReplyTo != "" {
		req.ReplyTo = &Address{Email: msg.ReplyTo}
	}
	if msg.Text != "" {
		req.Content = append(req.Content, content{Type: "text/plain", Value: msg.Text})
	}
	if msg.HTML != "" {
		req.Content = append(req.Content, content{Type: "text/html", Value: msg.HTML})
	}
	return req
}

func apiErrorMessage(raw []byte) string {
	var er errorResponse
	if err := json.Unmarshal(raw, &er); err != nil || len(er.Errors) == 0 {
		return string(raw)
	}
	msgs := make([]string, len(er.Errors))
	for i, e := range er.Errors {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}
