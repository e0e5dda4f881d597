package roster

import "time"

// Shift is a 12 hour nursing shift.
type Shift string

const (
	ShiftDay   Shift = "day"
	ShiftNight Shift = "night"
)

// BurnoutRisk is the manager-assessed burnout level of a nurse.
type BurnoutRisk string

const (
	BurnoutLow    BurnoutRisk = "low"
	BurnoutMedium BurnoutRisk = "medium"
	BurnoutHigh   BurnoutRisk = "high"
)

// Required headcount per shift across all units.
const (
	RequiredDayNurses   = 14
	RequiredNightNurses = 12
)

type Nurse struct {
	ID                int64
	Name              string
	Unit              string
	Shift             Shift
	BurnoutRisk       BurnoutRisk
	ConsecutiveShifts int
	LastBreak         time.Time
}

type Unit struct {
	ID                  int64
	Name                string
	Beds                int
	RequiredNursesDay   int
	RequiredNursesNight int
}

type ComplianceReport struct {
	ID              int64
	Name            string
	DueDate         time.Time
	PercentComplete int
	LastEdited      time.Time
}

// Assignment places one nurse on one shift of one date.
type Assignment struct {
	NurseID int64
	Date    time.Time
	Shift   Shift
}

// DayStaffing is the scheduled headcount of a date against the requirement.
type DayStaffing struct {
	Date          time.Time
	Day           int
	Night         int
	DayRequired   int
	NightRequired int
	DayShortage   int
	NightShortage int
}

// UnitStaffing is DayStaffing broken down per unit.
type UnitStaffing struct {
	Unit          string
	DayStaff      int
	NightStaff    int
	RequiredDay   int
	RequiredNight int
	DayShortage   int
	NightShortage int
}

// Shortage is one understaffed shift.
type Shortage struct {
	Date     time.Time
	Shift    Shift
	Shortage int
}

// AnswerKind selects one of the canned copilot answers.
type AnswerKind string

const (
	AnswerFollowUps  AnswerKind = "follow_ups"
	AnswerBurnout    AnswerKind = "burnout"
	AnswerPriorities AnswerKind = "priorities"
	AnswerDefault    AnswerKind = "default"
)
