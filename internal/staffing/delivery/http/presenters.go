package http

import (
	"nurse-manager/internal/roster"
	"nurse-manager/internal/staffing"
	"nurse-manager/pkg/response"
)

type snapshotResp struct {
	Status     string `json:"status"`
	OnDuty     int    `json:"on_duty"`
	Total      int    `json:"total"`
	DayShift   int    `json:"day_shift"`
	NightShift int    `json:"night_shift"`
}

func (h *handler) newSnapshotResp(o staffing.SnapshotOutput) snapshotResp {
	return snapshotResp{
		Status:     o.Status,
		OnDuty:     o.OnDuty,
		Total:      o.Total,
		DayShift:   o.DayShift,
		NightShift: o.NightShift,
	}
}

type nurseResp struct {
	ID                int64         `json:"id"`
	Name              string        `json:"name"`
	Unit              string        `json:"unit"`
	Shift             string        `json:"shift"`
	BurnoutRisk       string        `json:"burnout_risk"`
	ConsecutiveShifts int           `json:"consecutive_shifts"`
	LastBreak         response.Date `json:"last_break"`
}

func newNurseResps(in []roster.Nurse) []nurseResp {
	out := make([]nurseResp, len(in))
	for i, n := range in {
		out[i] = nurseResp{
			ID:                n.ID,
			Name:              n.Name,
			Unit:              n.Unit,
			Shift:             string(n.Shift),
			BurnoutRisk:       string(n.BurnoutRisk),
			ConsecutiveShifts: n.ConsecutiveShifts,
			LastBreak:         response.Date(n.LastBreak),
		}
	}
	return out
}

type burnoutResp struct {
	Count       int               `json:"count"`
	Staff       []nurseResp       `json:"staff"`
	LastUpdated response.DateTime `json:"last_updated"`
}

func (h *handler) newBurnoutResp(o staffing.BurnoutOutput) burnoutResp {
	return burnoutResp{
		Count:       o.Count,
		Staff:       newNurseResps(o.Staff),
		LastUpdated: response.DateTime(o.LastUpdated),
	}
}

type dayStaffingResp struct {
	Date          response.Date `json:"date"`
	Day           int           `json:"day"`
	Night         int           `json:"night"`
	DayRequired   int           `json:"day_required"`
	NightRequired int           `json:"night_required"`
	DayShortage   int           `json:"day_shortage"`
	NightShortage int           `json:"night_shortage"`
}

func newDayStaffingResp(s roster.DayStaffing) dayStaffingResp {
	return dayStaffingResp{
		Date:          response.Date(s.Date),
		Day:           s.Day,
		Night:         s.Night,
		DayRequired:   s.DayRequired,
		NightRequired: s.NightRequired,
		DayShortage:   s.DayShortage,
		NightShortage: s.NightShortage,
	}
}

type unitStaffingResp struct {
	Unit          string `json:"unit"`
	DayStaff      int    `json:"day_staff"`
	NightStaff    int    `json:"night_staff"`
	RequiredDay   int    `json:"required_day"`
	RequiredNight int    `json:"required_night"`
	DayShortage   int    `json:"day_shortage"`
	NightShortage int    `json:"night_shortage"`
}

type dayScheduleResp struct {
	Staffing    dayStaffingResp    `json:"staffing"`
	Units       []unitStaffingResp `json:"units"`
	DayNurses   []nurseResp        `json:"day_nurses"`
	NightNurses []nurseResp        `json:"night_nurses"`
}

func (h *handler) newDayScheduleResp(o staffing.DayScheduleOutput) dayScheduleResp {
	units := make([]unitStaffingResp, len(o.Units))
	for i, u := range o.Units {
		units[i] = unitStaffingResp{
			Unit:          u.Unit,
			DayStaff:      u.DayStaff,
			NightStaff:    u.NightStaff,
			RequiredDay:   u.RequiredDay,
			RequiredNight: u.RequiredNight,
			DayShortage:   u.DayShortage,
			NightShortage: u.NightShortage,
		}
	}
	return dayScheduleResp{
		Staffing:    newDayStaffingResp(o.Staffing),
		Units:       units,
		DayNurses:   newNurseResps(o.DayNurses),
		NightNurses: newNurseResps(o.NightNurses),
	}
}

type shortageResp struct {
	Date     response.Date `json:"date"`
	Shift    string        `json:"shift"`
	Shortage int           `json:"shortage"`
}

type understaffedResp struct {
	Count  int            `json:"count"`
	Shifts []shortageResp `json:"shifts"`
}

func (h *handler) newUnderstaffedResp(in []roster.Shortage) understaffedResp {
	shifts := make([]shortageResp, len(in))
	for i, s := range in {
		shifts[i] = shortageResp{Date: response.Date(s.Date), Shift: string(s.Shift), Shortage: s.Shortage}
	}
	return understaffedResp{Count: len(shifts), Shifts: shifts}
}

type forecastResp struct {
	Days []dayStaffingResp `json:"days"`
}

func (h *handler) newForecastResp(in []roster.DayStaffing) forecastResp {
	days := make([]dayStaffingResp, len(in))
	for i, d := range in {
		days[i] = newDayStaffingResp(d)
	}
	return forecastResp{Days: days}
}

type reportResp struct {
	ID              int64         `json:"id"`
	Name            string        `json:"name"`
	DueDate         response.Date `json:"due_date"`
	PercentComplete int           `json:"percent_complete"`
	LastEdited      response.Date `json:"last_edited"`
}

type complianceResp struct {
	Description     string        `json:"description"`
	PercentComplete int           `json:"percent_complete"`
	DaysLeft        int           `json:"days_left"`
	LastEdited      response.Date `json:"last_edited"`
	Reports         []reportResp  `json:"reports"`
}

func (h *handler) newComplianceResp(o staffing.ComplianceOutput) complianceResp {
	reports := make([]reportResp, len(o.Reports))
	for i, r := range o.Reports {
		reports[i] = reportResp{
			ID:              r.ID,
			Name:            r.Name,
			DueDate:         response.Date(r.DueDate),
			PercentComplete: r.PercentComplete,
			LastEdited:      response.Date(r.LastEdited),
		}
	}
	return complianceResp{
		Description:     o.Description,
		PercentComplete: o.PercentComplete,
		DaysLeft:        o.DaysLeft,
		LastEdited:      response.Date(o.LastEdited),
		Reports:         reports,
	}
}
