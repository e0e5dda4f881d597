package datemath_test

import (
	"testing"
	"time"

	"nurse-manager/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("America/Chicago")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{
			name:     "Today",
			relative: "today",
			want:     startOfBase,
		},
		{
			name:     "Tomorrow",
			relative: "tomorrow",
			want:     startOfBase.AddDate(0, 0, 1),
		},
		{
			name:     "Yesterday",
			relative: "yesterday",
			want:     startOfBase.AddDate(0, 0, -1),
		},
		{
			name:     "In 3 days",
			relative: "in 3 days",
			want:     startOfBase.AddDate(0, 0, 3),
		},
		{
			name:     "In 2 weeks",
			relative: "in 2 weeks",
			want:     startOfBase.AddDate(0, 0, 14),
		},
		{
			name:     "In 1 month",
			relative: "in 1 month",
			want:     startOfBase.AddDate(0, 1, 0),
		},
		{
			name:     "After 4 days",
			relative: "after 4 days",
			want:     startOfBase.AddDate(0, 0, 4),
		},
		{
			name:     "Mixed case and spacing",
			relative: "  In  2   Weeks ",
			want:     startOfBase.AddDate(0, 0, 14),
		},
		{
			name:     "Now keeps time of day",
			relative: "now",
			want:     baseTime,
		},
		{
			name:     "Invalid duration pattern",
			relative: "in a few days",
			want:     baseTime,
			wantErr:  true,
		},
		{
			name:     "Next Monday (from Wed)",
			relative: "next monday",
			want:     startOfBase.AddDate(0, 0, 5), // Wed(3) to Mon(1) is +5 days
		},
		{
			name:     "Next Wednesday (from Wed)",
			relative: "next wednesday",
			want:     startOfBase.AddDate(0, 0, 7), // 1 week later
		},
		{
			name:     "Unknown fallback",
			relative: "some random day",
			want:     startOfBase, // falls back to startOfDay(base)
		},
		{
			name:     "Invalid Next Weekday",
			relative: "next funday",
			want:     baseTime, // Error returns baseTime
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	want := time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)

	got := parser.EndOfDay(base)
	if !got.Equal(want) {
		t.Errorf("EndOfDay() got = %v, want %v", got, want)
	}
}

func TestShift(t *testing.T) {
	base := time.Date(2024, 1, 31, 9, 15, 0, 0, time.UTC)

	tests := []struct {
		name   string
		amount int
		unit   datemath.Unit
		want   time.Time
	}{
		{name: "days", amount: 3, unit: datemath.UnitDay, want: time.Date(2024, 2, 3, 9, 15, 0, 0, time.UTC)},
		{name: "weeks", amount: 2, unit: datemath.UnitWeek, want: time.Date(2024, 2, 14, 9, 15, 0, 0, time.UTC)},
		{name: "month overflow normalises", amount: 1, unit: datemath.UnitMonth, want: time.Date(2024, 3, 2, 9, 15, 0, 0, time.UTC)},
		{name: "unknown unit", amount: 5, unit: datemath.Unit("year"), want: base},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := datemath.Shift(base, tt.amount, tt.unit); !got.Equal(tt.want) {
				t.Errorf("Shift() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseUnit(t *testing.T) {
	for in, want := range map[string]datemath.Unit{
		"day":    datemath.UnitDay,
		"Days":   datemath.UnitDay,
		"weeks":  datemath.UnitWeek,
		"MONTHS": datemath.UnitMonth,
	} {
		got, ok := datemath.ParseUnit(in)
		if !ok || got != want {
			t.Errorf("ParseUnit(%q) = %q, %v", in, got, ok)
		}
	}

	if _, ok := datemath.ParseUnit("fortnight"); ok {
		t.Errorf("expected fortnight to be rejected")
	}
}
