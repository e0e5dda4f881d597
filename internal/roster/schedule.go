package roster

import "time"

const dateKey = "2006-01-02"

// generateSchedule rotates every nurse through the month. A nurse always works
// the weekday equal to id%7 and additionally joins an alternating group whose
// phase is id%3 for day shifts and id%4 for night shifts.
func generateSchedule(month time.Time) []Assignment {
	var out []Assignment
	start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	for d, i := start, int64(0); d.Before(end); d, i = d.AddDate(0, 0, 1), i+1 {
		weekday := int64(d.Weekday())
		for _, n := range nurses {
			phase := int64(3)
			if n.Shift == ShiftNight {
				phase = 4
			}
			if n.ID%7 == weekday || (n.ID%2 == i%2 && i%phase == n.ID%phase) {
				out = append(out, Assignment{NurseID: n.ID, Date: d, Shift: n.Shift})
			}
		}
	}
	return out
}

func shortage(required, scheduled int) int {
	return max(0, required-scheduled)
}
