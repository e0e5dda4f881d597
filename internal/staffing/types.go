package staffing

import (
	"time"

	"nurse-manager/internal/roster"
)

// ForecastDays is the default length of a staffing forecast.
const ForecastDays = 5

// --- UseCase Outputs ---

type SnapshotOutput struct {
	Status     string
	OnDuty     int
	Total      int
	DayShift   int
	NightShift int
}

type BurnoutOutput struct {
	Count       int
	Staff       []roster.Nurse
	LastUpdated time.Time
}

type DayScheduleOutput struct {
	Staffing    roster.DayStaffing
	Units       []roster.UnitStaffing
	DayNurses   []roster.Nurse
	NightNurses []roster.Nurse
}

type ComplianceOutput struct {
	Description     string
	PercentComplete int
	DaysLeft        int
	LastEdited      time.Time
	Reports         []roster.ComplianceReport
}
