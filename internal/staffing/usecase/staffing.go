package usecase

import (
	"context"
	"time"

	"nurse-manager/internal/roster"
	"nurse-manager/internal/staffing"
)

const (
	statusFullyStaffed = "Fully staffed today"
	statusUnderstaffed = "Understaffed today"
)

func (uc *implUseCase) Snapshot(ctx context.Context) (staffing.SnapshotOutput, error) {
	var out staffing.SnapshotOutput
	for _, n := range uc.roster.Nurses() {
		out.Total++
		if n.Shift == roster.ShiftDay {
			out.DayShift++
		} else {
			out.NightShift++
		}
	}
	out.OnDuty = out.Total

	out.Status = statusFullyStaffed
	if out.DayShift < roster.RequiredDayNurses || out.NightShift < roster.RequiredNightNurses {
		out.Status = statusUnderstaffed
	}
	return out, nil
}

func (uc *implUseCase) Burnout(ctx context.Context) (staffing.BurnoutOutput, error) {
	staff := uc.roster.AtRisk()
	return staffing.BurnoutOutput{
		Count:       len(staff),
		Staff:       staff,
		LastUpdated: uc.now(),
	}, nil
}

func (uc *implUseCase) DaySchedule(ctx context.Context, date time.Time) (staffing.DayScheduleOutput, error) {
	if !uc.roster.Contains(date) {
		uc.l.Warnf(ctx, "uc.DaySchedule: %s outside %s", date.Format("2006-01-02"), uc.roster.Month().Format("2006-01"))
		return staffing.DayScheduleOutput{}, staffing.ErrDateOutsideSchedule
	}

	return staffing.DayScheduleOutput{
		Staffing:    uc.roster.StaffingForDay(date),
		Units:       uc.roster.StaffingByUnit(date),
		DayNurses:   uc.nurses(uc.roster.NursesOn(date, roster.ShiftDay)),
		NightNurses: uc.nurses(uc.roster.NursesOn(date, roster.ShiftNight)),
	}, nil
}

func (uc *implUseCase) Understaffed(ctx context.Context) ([]roster.Shortage, error) {
	return uc.roster.UnderstaffedShifts(), nil
}

func (uc *implUseCase) Forecast(ctx context.Context, from time.Time, days int) ([]roster.DayStaffing, error) {
	if days == 0 {
		days = staffing.ForecastDays
	}
	if days < 1 || days > 31 {
		return nil, staffing.ErrInvalidForecastDays
	}
	return uc.roster.Forecast(from, days), nil
}

func (uc *implUseCase) Compliance(ctx context.Context) (staffing.ComplianceOutput, error) {
	report, ok := uc.roster.Report(roster.QuarterlyReportName)
	if !ok {
		uc.l.Errorf(ctx, "uc.Compliance.Report: %s missing", roster.QuarterlyReportName)
		return staffing.ComplianceOutput{}, staffing.ErrReportNotFound
	}

	return staffing.ComplianceOutput{
		Description:     "Quarterly report due " + report.DueDate.Weekday().String(),
		PercentComplete: report.PercentComplete,
		DaysLeft:        daysUntil(uc.now(), report.DueDate),
		LastEdited:      report.LastEdited,
		Reports:         uc.roster.ComplianceReports(),
	}, nil
}

func (uc *implUseCase) nurses(ids []int64) []roster.Nurse {
	out := make([]roster.Nurse, 0, len(ids))
	for _, id := range ids {
		if n, ok := uc.roster.Nurse(id); ok {
			out = append(out, n)
		}
	}
	return out
}

// daysUntil counts whole calendar days from now to due, never negative.
func daysUntil(now, due time.Time) int {
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	return max(0, int(to.Sub(from).Hours()/24))
}
