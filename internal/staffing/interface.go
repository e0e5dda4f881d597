package staffing

import (
	"context"
	"time"

	"nurse-manager/internal/model"
	"nurse-manager/internal/roster"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Snapshot(ctx context.Context) (SnapshotOutput, error)
	Burnout(ctx context.Context) (BurnoutOutput, error)
	DaySchedule(ctx context.Context, date time.Time) (DayScheduleOutput, error)
	Understaffed(ctx context.Context) ([]roster.Shortage, error)
	Forecast(ctx context.Context, from time.Time, days int) ([]roster.DayStaffing, error)
	Compliance(ctx context.Context) (ComplianceOutput, error)
}

// Roster is the read-only staff data the use case reports on.
type Roster interface {
	Month() time.Time
	Contains(date time.Time) bool
	Nurses() []roster.Nurse
	Nurse(id int64) (roster.Nurse, bool)
	AtRisk() []roster.Nurse
	NursesOn(date time.Time, shift roster.Shift) []int64
	StaffingForDay(date time.Time) roster.DayStaffing
	StaffingByUnit(date time.Time) []roster.UnitStaffing
	UnderstaffedShifts() []roster.Shortage
	Forecast(from time.Time, days int) []roster.DayStaffing
	ComplianceReports() []roster.ComplianceReport
	Report(name string) (roster.ComplianceReport, bool)
	SampleTasks() []model.Task
}
