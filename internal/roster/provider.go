package roster

import (
	"time"

	"nurse-manager/internal/model"
)

// Provider serves the static roster data and the monthly schedule derived from it.
// It is read-only and safe for concurrent use.
type Provider struct {
	month    time.Time
	schedule []Assignment
	byDate   map[string][]Assignment
}

// New builds the provider for the month containing month.
func New(month time.Time) *Provider {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	schedule := generateSchedule(first)

	byDate := make(map[string][]Assignment)
	for _, a := range schedule {
		k := a.Date.Format(dateKey)
		byDate[k] = append(byDate[k], a)
	}

	return &Provider{
		month:    first,
		schedule: schedule,
		byDate:   byDate,
	}
}

// Month returns the first day of the scheduled month.
func (p *Provider) Month() time.Time {
	return p.month
}

// Contains reports whether date falls inside the scheduled month.
func (p *Provider) Contains(date time.Time) bool {
	return date.Year() == p.month.Year() && date.Month() == p.month.Month()
}

func (p *Provider) Nurses() []Nurse {
	return append([]Nurse(nil), nurses...)
}

func (p *Provider) Units() []Unit {
	return append([]Unit(nil), units...)
}

// Nurse looks a nurse up by id.
func (p *Provider) Nurse(id int64) (Nurse, bool) {
	for _, n := range nurses {
		if n.ID == id {
			return n, true
		}
	}
	return Nurse{}, false
}

// AtRisk returns the nurses with a high burnout rating.
func (p *Provider) AtRisk() []Nurse {
	var out []Nurse
	for _, n := range nurses {
		if n.BurnoutRisk == BurnoutHigh {
			out = append(out, n)
		}
	}
	return out
}

// SampleTasks returns the fallback follow-up tasks.
func (p *Provider) SampleTasks() []model.Task {
	return append([]model.Task(nil), sampleTasks...)
}

func (p *Provider) ComplianceReports() []ComplianceReport {
	return append([]ComplianceReport(nil), complianceReports...)
}

// Report finds a compliance report by name.
func (p *Provider) Report(name string) (ComplianceReport, bool) {
	for _, r := range complianceReports {
		if r.Name == name {
			return r, true
		}
	}
	return ComplianceReport{}, false
}

// Answer returns a canned copilot answer. Unknown kinds get the default answer.
func (p *Provider) Answer(kind AnswerKind) string {
	if a, ok := answers[kind]; ok {
		return a
	}
	return answers[AnswerDefault]
}

func (p *Provider) Schedule() []Assignment {
	return append([]Assignment(nil), p.schedule...)
}

// NursesOn returns the ids of the nurses scheduled on date for shift.
func (p *Provider) NursesOn(date time.Time, shift Shift) []int64 {
	var ids []int64
	for _, a := range p.byDate[date.Format(dateKey)] {
		if a.Shift == shift {
			ids = append(ids, a.NurseID)
		}
	}
	return ids
}

// StaffingForDay counts the scheduled nurses of date against the fixed requirement.
func (p *Provider) StaffingForDay(date time.Time) DayStaffing {
	day := len(p.NursesOn(date, ShiftDay))
	night := len(p.NursesOn(date, ShiftNight))
	return DayStaffing{
		Date:          truncateDay(date),
		Day:           day,
		Night:         night,
		DayRequired:   RequiredDayNurses,
		NightRequired: RequiredNightNurses,
		DayShortage:   shortage(RequiredDayNurses, day),
		NightShortage: shortage(RequiredNightNurses, night),
	}
}

// StaffingByUnit breaks the staffing of date down per unit, in unit order.
func (p *Provider) StaffingByUnit(date time.Time) []UnitStaffing {
	idx := make(map[string]int, len(units))
	out := make([]UnitStaffing, len(units))
	for i, u := range units {
		idx[u.Name] = i
		out[i] = UnitStaffing{Unit: u.Name, RequiredDay: u.RequiredNursesDay, RequiredNight: u.RequiredNursesNight}
	}

	for _, a := range p.byDate[date.Format(dateKey)] {
		n, ok := p.Nurse(a.NurseID)
		if !ok {
			continue
		}
		i, ok := idx[n.Unit]
		if !ok {
			continue
		}
		if a.Shift == ShiftDay {
			out[i].DayStaff++
		} else {
			out[i].NightStaff++
		}
	}

	for i := range out {
		out[i].DayShortage = shortage(out[i].RequiredDay, out[i].DayStaff)
		out[i].NightShortage = shortage(out[i].RequiredNight, out[i].NightStaff)
	}
	return out
}

// UnderstaffedShifts lists every understaffed shift of the month in date order,
// day shift before night shift.
func (p *Provider) UnderstaffedShifts() []Shortage {
	var out []Shortage
	end := p.month.AddDate(0, 1, 0)
	for d := p.month; d.Before(end); d = d.AddDate(0, 0, 1) {
		s := p.StaffingForDay(d)
		if s.DayShortage > 0 {
			out = append(out, Shortage{Date: d, Shift: ShiftDay, Shortage: s.DayShortage})
		}
		if s.NightShortage > 0 {
			out = append(out, Shortage{Date: d, Shift: ShiftNight, Shortage: s.NightShortage})
		}
	}
	return out
}

// Forecast returns the staffing of days consecutive dates starting at from.
func (p *Provider) Forecast(from time.Time, days int) []DayStaffing {
	out := make([]DayStaffing, 0, days)
	for i := 0; i < days; i++ {
		out = append(out, p.StaffingForDay(from.AddDate(0, 0, i)))
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
