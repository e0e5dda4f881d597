package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"nurse-manager/internal/roster"
	"nurse-manager/internal/staffing"
	"nurse-manager/pkg/log"
)

func newUseCase(now time.Time) *implUseCase {
	uc := New(log.NewNop(), roster.New(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)))
	uc.now = func() time.Time { return now }
	return uc
}

func TestSnapshotAndBurnout(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 17, 6, 30, 0, 0, time.UTC)
	uc := newUseCase(now)

	snap, _ := uc.Snapshot(ctx)
	if snap.Total != 26 || snap.DayShift != 14 || snap.NightShift != 12 || snap.Status != statusFullyStaffed {
		t.Errorf("Snapshot = %+v", snap)
	}

	b, _ := uc.Burnout(ctx)
	if b.Count != 2 || len(b.Staff) != 2 || !b.LastUpdated.Equal(now) {
		t.Errorf("Burnout = %+v", b)
	}
}

func TestDaySchedule(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(time.Now())

	t.Run("in month", func(t *testing.T) {
		out, err := uc.DaySchedule(ctx, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatal(err)
		}
		if out.Staffing.Day != len(out.DayNurses) || out.Staffing.Night != len(out.NightNurses) {
			t.Errorf("counts mismatch: %+v", out.Staffing)
		}
		if len(out.Units) != 4 {
			t.Errorf("units = %d", len(out.Units))
		}
	})

	t.Run("outside month", func(t *testing.T) {
		_, err := uc.DaySchedule(ctx, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
		if !errors.Is(err, staffing.ErrDateOutsideSchedule) {
			t.Errorf("err = %v", err)
		}
	})
}

func TestForecast(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(time.Now())
	from := time.Date(2025, 5, 17, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		days    int
		wantLen int
		wantErr error
	}{
		{"default", 0, staffing.ForecastDays, nil},
		{"week", 7, 7, nil},
		{"negative", -1, 0, staffing.ErrInvalidForecastDays},
		{"too long", 40, 0, staffing.ErrInvalidForecastDays},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.Forecast(ctx, from, tt.days)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if len(got) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestCompliance(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		now          time.Time
		wantDaysLeft int
	}{
		{"three days before due", time.Date(2023, 6, 13, 9, 0, 0, 0, time.UTC), 3},
		{"past due", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := newUseCase(tt.now).Compliance(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if out.Description != "Quarterly report due Friday" || out.PercentComplete != 65 {
				t.Errorf("out = %+v", out)
			}
			if out.DaysLeft != tt.wantDaysLeft {
				t.Errorf("DaysLeft = %d, want %d", out.DaysLeft, tt.wantDaysLeft)
			}
			if len(out.Reports) != 4 {
				t.Errorf("reports = %d", len(out.Reports))
			}
		})
	}
}
