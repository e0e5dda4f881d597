package sendgrid_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nurse-manager/pkg/sendgrid"
)

func TestNew(t *testing.T) {
	if _, err := sendgrid.New(sendgrid.Config{From: sendgrid.Address{Email: "a@b.c"}}); !errors.Is(err, sendgrid.ErrMissingAPIKey) {
		t.Errorf("err = %v, want ErrMissingAPIKey", err)
	}
	if _, err := sendgrid.New(sendgrid.Config{APIKey: "k"}); !errors.Is(err, sendgrid.ErrMissingFrom) {
		t.Errorf("err = %v, want ErrMissingFrom", err)
	}
}

func TestSend(t *testing.T) {
	var (
		gotAuth string
		gotBody map[string]any
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v3/mail/send" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		if strings.Contains(gotBody["subject"].(string), "reject") {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"errors":[{"message":"The from address does not match a verified Sender Identity.","field":"from"}]}`))
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer ts.Close()

	client, err := sendgrid.New(sendgrid.Config{
		APIKey:     "sg-key",
		BaseURL:    ts.URL,
		From:       sendgrid.Address{Email: "nuvanta@healthcare.org", Name: "Nuvanta"},
		HTTPClient: ts.Client(),
	})
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	t.Run("accepted", func(t *testing.T) {
		err := client.Send(ctx, sendgrid.Message{
			To:      []string{"sarah.chen@healthcare.org", "james.wilson@healthcare.org"},
			Subject: "Schedule Update",
			Text:    "plain",
			HTML:    "<p>html</p>",
		})
		if err != nil {
			t.Fatalf("Send: %v", err)
		}
		if gotAuth != "Bearer sg-key" {
			t.Errorf("Authorization = %q", gotAuth)
		}

		contents := gotBody["content"].([]any)
		if len(contents) != 2 || contents[0].(map[string]any)["type"] != "text/plain" {
			t.Errorf("content = %v", contents)
		}
		to := gotBody["personalizations"].([]any)[0].(map[string]any)["to"].([]any)
		if len(to) != 2 {
			t.Errorf("to = %v", to)
		}
		if gotBody["from"].(map[string]any)["email"] != "nuvanta@healthcare.org" {
			t.Errorf("from = %v", gotBody["from"])
		}
	})

	t.Run("api error", func(t *testing.T) {
		err := client.Send(ctx, sendgrid.Message{To: []string{"x@y.z"}, Subject: "reject me", Text: "t"})
		if err == nil || !strings.Contains(err.Error(), "verified Sender Identity") {
			t.Errorf("err = %v", err)
		}
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name string
			msg  sendgrid.Message
			want error
		}{
			{"no recipients", sendgrid.Message{Subject: "s", Text: "t"}, sendgrid.ErrNoRecipients},
			{"no subject", sendgrid.Message{To: []string{"a@b.c"}, Text: "t"}, sendgrid.ErrMissingSubject},
			{"no body", sendgrid.Message{To: []string{"a@b.c"}, Subject: "s"}, sendgrid.ErrMissingBody},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if err := client.Send(ctx, tt.msg); !errors.Is(err, tt.want) {
					t.Errorf("err = %v, want %v", err, tt.want)
				}
			})
		}
	})
}
