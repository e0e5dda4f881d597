package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"nurse-manager/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	plus7 := time.FixedZone("ICT", 7*3600)

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"utc midnight", time.Date(2025, 5, 17, 0, 0, 0, 0, time.UTC), `"2025-05-17"`},
		{"keeps own zone", time.Date(2025, 5, 17, 1, 0, 0, 0, plus7), `"2025-05-17"`},
		{"zero", time.Time{}, `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(response.Date(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if string(b) != tt.want {
				t.Errorf("got %s, want %s", b, tt.want)
			}
		})
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	plus7 := time.FixedZone("ICT", 7*3600)

	b, err := json.Marshal(response.DateTime(time.Date(2025, 5, 17, 9, 30, 0, 0, plus7)))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2025-05-17T02:30:00Z"` {
		t.Errorf("got %s", b)
	}

	b, _ = json.Marshal(struct {
		At response.DateTime `json:"at"`
	}{})
	if string(b) != `{"at":null}` {
		t.Errorf("zero = %s", b)
	}
}

func TestParseDate(t *testing.T) {
	d, err := response.ParseDate("2025-05-01")
	if err != nil {
		t.Fatal(err)
	}
	if !d.Equal(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ParseDate = %v", d)
	}
	if _, err := response.ParseDate("05/01/2025"); err == nil {
		t.Error("expected error for non ISO date")
	}
}
