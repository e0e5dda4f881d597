package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

var ErrNoToken = errors.New("gcalendar: desktop credentials need an OAuth token, run cmd/gcal-auth")

// Client wraps the Google Calendar API service.
type Client struct {
	service    *calendar.Service
	calendarID string
}

// New creates a client from the credentials file named in cfg.
// Both service-account keys and OAuth desktop-app credentials are accepted.
func New(ctx context.Context, cfg Config) (*Client, error) {
	data, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: read credentials: %w", err)
	}
	return NewFromJSON(ctx, data, cfg)
}

// NewFromJSON is New with the credentials already in memory.
func NewFromJSON(ctx context.Context, credentials []byte, cfg Config) (*Client, error) {
	if jwtCfg, err := google.JWTConfigFromJSON(credentials, calendar.CalendarScope); err == nil {
		return newService(ctx, cfg.CalendarID, option.WithTokenSource(jwtCfg.TokenSource(ctx)))
	}

	oauthCfg, err := OAuthConfigFromJSON(credentials)
	if err != nil {
		return nil, err
	}

	tok, err := LoadToken(cfg.TokenPath)
	if err != nil {
		return nil, err
	}
	return newService(ctx, cfg.CalendarID, option.WithTokenSource(oauthCfg.TokenSource(ctx, tok)))
}

// NewFromHTTP creates a client that sends every call through httpClient.
func NewFromHTTP(ctx context.Context, httpClient *http.Client, calendarID string) (*Client, error) {
	return newService(ctx, calendarID, option.WithHTTPClient(httpClient))
}

func newService(ctx context.Context, calendarID string, opts ...option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: create service: %w", err)
	}
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}
	return &Client{service: svc, calendarID: calendarID}, nil
}

// OAuthConfigFromJSON parses OAuth desktop-app ("installed") credentials.
func OAuthConfigFromJSON(credentials []byte) (*oauth2.Config, error) {
	var creds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if err := json.Unmarshal(credentials, &creds); err != nil || creds.Installed.ClientID == "" {
		return nil, fmt.Errorf("gcalendar: unsupported credentials format")
	}

	cfg := &oauth2.Config{
		ClientID:     creds.Installed.ClientID,
		ClientSecret: creds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     google.Endpoint,
	}
	if len(creds.Installed.RedirectURIs) > 0 {
		cfg.RedirectURL = creds.Installed.RedirectURIs[0]
	}
	return cfg, nil
}

// LoadToken reads an OAuth token saved by SaveToken.
func LoadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrNoToken
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("gcalendar: parse token: %w", err)
	}
	return &tok, nil
}

// SaveToken writes tok to path with owner-only permissions.
func SaveToken(path string, tok *oauth2.Token) error {
	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func (c *Client) calendarOr(id string) string {
	if id == "" {
		return c.calendarID
	}
	return id
}

// InsertEvent creates a timed event.
func (c *Client) InsertEvent(ctx context.Context, req InsertRequest) (Event, error) {
	ev := &calendar.Event{
		Summary:     req.Title,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.Start.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.End.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}
	if req.ReminderMinutes > 0 {
		ev.Reminders = &calendar.EventReminders{
			Overrides:       []*calendar.EventReminder{{Method: "popup", Minutes: req.ReminderMinutes}},
			ForceSendFields: []string{"UseDefault"},
		}
	}

	created, err := c.service.Events.Insert(c.calendarOr(req.CalendarID), ev).Context(ctx).Do()
	if err != nil {
		return Event{}, fmt.Errorf("gcalendar: insert event: %w", err)
	}

	return Event{
		ID:          created.Id,
		Title:       created.Summary,
		Description: created.Description,
		Link:        created.HtmlLink,
		Start:       req.Start,
		End:         req.End,
	}, nil
}

// ListEvents returns single events between From and To ordered by start time.
func (c *Client) ListEvents(ctx context.Context, req ListRequest) ([]Event, error) {
	call := c.service.Events.List(c.calendarOr(req.CalendarID)).
		Context(ctx).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(req.From.Format(time.RFC3339)).
		TimeMax(req.To.Format(time.RFC3339))
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	res, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("gcalendar: list events: %w", err)
	}

	out := make([]Event, 0, len(res.Items))
	for _, item := range res.Items {
		out = append(out, Event{
			ID:          item.Id,
			Title:       item.Summary,
			Description: item.Description,
			Link:        item.HtmlLink,
			Start:       parseEventTime(item.Start),
			End:         parseEventTime(item.End),
		})
	}
	return out, nil
}

// DeleteEvent removes an event by its Google id.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if err := c.service.Events.Delete(c.calendarOr(calendarID), eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("gcalendar: delete event: %w", err)
	}
	return nil
}

// parseEventTime handles both timed and all-day events.
func parseEventTime(t *calendar.EventDateTime) time.Time {
	if t == nil {
		return time.Time{}
	}
	if t.DateTime != "" {
		if v, err := time.Parse(time.RFC3339, t.DateTime); err == nil {
			return v
		}
	}
	if t.Date != "" {
		if v, err := time.Parse("2006-01-02", t.Date); err == nil {
			return v
		}
	}
	return time.Time{}
}
