package roster

import (
	"time"

	"nurse-manager/internal/model"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

var nurses = []Nurse{
	// Day shift (14)
	{ID: 1, Name: "Sarah Chen", Unit: "Medical-Surgical", Shift: ShiftDay, BurnoutRisk: BurnoutHigh, ConsecutiveShifts: 6, LastBreak: date("2023-06-01")},
	{ID: 2, Name: "James Wilson", Unit: "Medical-Surgical", Shift: ShiftDay, BurnoutRisk: BurnoutLow, ConsecutiveShifts: 2, LastBreak: date("2023-06-10")},
	{ID: 3, Name: "Emily Johnson", Unit: "Medical-Surgical", Shift: ShiftDay, BurnoutRisk: BurnoutLow, ConsecutiveShifts: 1, LastBreak: date("2023-06-11")},
	{ID: 4, Name: "David Lee", Unit: "Medical-Surgical", Shift: ShiftDay, BurnoutRisk: BurnoutLow, ConsecutiveShifts: 3, LastBreak: date("2023-06-09")},
	{ID: 5, Name: "Lisa Patel", Unit: "Medical-Surgical", Shift: ShiftDay, BurnoutRisk: BurnoutLow, ConsecutiveShifts: 2, LastBreak: date("2023-06-10")},
	{ID: 6, Name: "Robert Kim", Unit: "Intensive Care", Shift: ShiftDay, BurnoutRisk: BurnoutLow, ConsecutiveShifts: 1, LastBreak: date("2023-06-11")},
	{ID: 7, Name: "Jennifer Lopez", Unit: "Intensive Care", Shift: ShiftDay, BurnoutRisk: BurnoutLow, ConsecutiveShifts: 2, LastBreak: date("2023-06-10")},
	{ID: 8, Name: "Michael Johnson", Unit: "Intensive Care", Shift: ShiftDay, BurnoutRisk: BurnoutHigh, ConsecutiveShifts: 4, LastBreak: date("2023-06-08")},
	{ID: 9, Name: "Nancy Garcia", Unit: "Emergency", Shift: ShiftDay, BurnoutRisk: BurnoutLow, ConsecutiveShifts: 1, LastBreak: date("2023-06-11")},
	{ID: 10, Name: "Thomas Brown", Unit: "Emergency", Shift: ShiftDay, BurnoutRisk: BurnoutLow, ConsecutiveShifts: 2, LastBreak: date("2023-06-10")},
	{ID: 11, Name: "Sandra Martinez", Unit: "Emergency", Shift: ShiftDay, BurnoutRisk: BurnoutMedium, ConsecutiveShifts: 3, LastBreak: date("2023-06-09")},
	{ID: 12, Name: "Kevin Smith", Unit: "Emergency", Shift: ShiftDay, BurnoutRisk: BurnoutLow, ConsecutiveShifts: 1, LastBreak: date("2023-06-11")},
	{ID: 13, Name: "Maria Gonzalez", Unit: "Maternity", Shift: ShiftDay, BurnoutRisk: BurnoutLow, ConsecutiveShifts: 2, LastBreak: date("2023-06-10")},
	{ID: 14, Name: "William Davis", Unit: "Maternity", Shift: ShiftDay, BurnoutRisk: BurnoutLow, ConsecutiveShifts: 1, LastBreak: date("2023-06-11")},

	// Night shift (12)
	{ID: 15, Name: "Patricia White", Unit: "Medical-Surgical", Shift: ShiftNight, BurnoutRisk: BurnoutLow, ConsecutiveShifts: 1, LastBreak: date("2023-06-11")},
	{ID: 16, Name: "Richard Taylor", Unit: "Medical-Surgical", Shift: ShiftNight, BurnoutRisk: BurnoutLow, ConsecutiveShifts: 2, LastBreak: date("2023-06-10")},
	{ID: 17, Name: "Elizabeth Thomas", Unit: "Medical-Surgical", Shift: ShiftNight, BurnoutRisk: BurnoutMedium, ConsecutiveShifts: 3, LastBreak: date("2023-06-09")},
	{ID: 18, Name: "Joseph Harris", Unit: "Intensive Care", Shift: ShiftNight, BurnoutRisk: BurnoutLow, ConsecutiveShifts: 1, LastBreak: date("2023-06-11")},
	{ID: 19, Name: "Susan Jackson", Unit: "Intensive Care", Shift: ShiftNight, BurnoutRisk: BurnoutLow, ConsecutiveShifts: 2, LastBreak: date("2023-06-10")},
	{ID: 20, Name: "Daniel Moore", Unit: "Intensive Care", Shift: ShiftNight, BurnoutRisk: BurnoutLow, ConsecutiveShifts: 1, LastBreak: date("2023-06-11")},
	{ID: 21, Name: "Carol Martin", Unit: "Emergency", Shift: ShiftNight, BurnoutRisk: BurnoutLow, ConsecutiveShifts: 1, LastBreak: date("2023-06-11")},
	{ID: 22, Name: "Mark Thompson", Unit: "Emergency", Shift: ShiftNight, BurnoutRisk: BurnoutLow, ConsecutiveShifts: 2, LastBreak: date("2023-06-10")},
	{ID: 23, Name: "Michelle Walker", Unit: "Emergency", Shift: ShiftNight, BurnoutRisk: BurnoutLow, ConsecutiveShifts: 1, LastBreak: date("2023-06-11")},
	{ID: 24, Name: "George Young", Unit: "Maternity", Shift: ShiftNight, BurnoutRisk: BurnoutLow, ConsecutiveShifts: 1, LastBreak: date("2023-06-11")},
	{ID: 25, Name: "Karen Allen", Unit: "Maternity", Shift: ShiftNight, BurnoutRisk: BurnoutLow, ConsecutiveShifts: 2, LastBreak: date("2023-06-10")},
	{ID: 26, Name: "Edward King", Unit: "Maternity", Shift: ShiftNight, BurnoutRisk: BurnoutLow, ConsecutiveShifts: 1, LastBreak: date("2023-06-11")},
}

var units = []Unit{
	{ID: 1, Name: "Medical-Surgical", Beds: 12, RequiredNursesDay: 6, RequiredNursesNight: 4},
	{ID: 2, Name: "Intensive Care", Beds: 8, RequiredNursesDay: 3, RequiredNursesNight: 3},
	{ID: 3, Name: "Emergency", Beds: 10, RequiredNursesDay: 4, RequiredNursesNight: 3},
	{ID: 4, Name: "Maternity", Beds: 10, RequiredNursesDay: 2, RequiredNursesNight: 3},
}

// sampleTasks carry their list position as id.
var sampleTasks = []model.Task{
	{ID: 1, Description: "Equipment request for Room 202", CreatedAt: date("2023-06-10"), Status: model.TaskStatusOverdue, Priority: model.PriorityHigh},
	{ID: 2, Description: "Patient complaint follow-up", CreatedAt: date("2023-06-10"), Status: model.TaskStatusOverdue, Priority: model.PriorityMedium},
	{ID: 3, Description: "Schedule adjustment request", CreatedAt: date("2023-06-10"), Status: model.TaskStatusOverdue, Priority: model.PriorityMedium},
	{ID: 4, Description: "Staff training registration", CreatedAt: date("2023-06-12"), Status: model.TaskStatusPending, Priority: model.PriorityLow},
	{ID: 5, Description: "Inventory check for supplies", CreatedAt: date("2023-06-12"), Status: model.TaskStatusPending, Priority: model.PriorityMedium},
}

var complianceReports = []ComplianceReport{
	{ID: 1, Name: QuarterlyReportName, DueDate: date("2023-06-16"), PercentComplete: 65, LastEdited: date("2023-06-12")},
	{ID: 2, Name: "Monthly patient satisfaction survey", DueDate: date("2023-06-30"), PercentComplete: 20, LastEdited: date("2023-06-05")},
	{ID: 3, Name: "Annual safety compliance audit", DueDate: date("2023-07-15"), PercentComplete: 10, LastEdited: date("2023-06-01")},
	{ID: 4, Name: "Weekly medication error report", DueDate: date("2023-06-14"), PercentComplete: 90, LastEdited: date("2023-06-12")},
}

// QuarterlyReportName is the report surfaced on the compliance card.
const QuarterlyReportName = "Quarterly staff performance report"
