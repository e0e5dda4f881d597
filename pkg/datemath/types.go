package datemath

import "time"

// Unit is a calendar unit for relative offsets.
type Unit string

const (
	UnitDay   Unit = "day"
	UnitWeek  Unit = "week"
	UnitMonth Unit = "month"
)

// Shift moves base forward by amount units, keeping the wall-clock time.
// Months are calendar months and normalise like time.AddDate (Jan 31 + 1 month = Mar 2/3).
func Shift(base time.Time, amount int, unit Unit) time.Time {
	switch unit {
	case UnitDay:
		return base.AddDate(0, 0, amount)
	case UnitWeek:
		return base.AddDate(0, 0, amount*7)
	case UnitMonth:
		return base.AddDate(0, amount, 0)
	}
	return base
}

// ParseUnit maps "day", "days", "Week", ... to a Unit.
func ParseUnit(s string) (Unit, bool) {
	switch u := Unit(trimPlural(s)); u {
	case UnitDay, UnitWeek, UnitMonth:
		return u, true
	}
	return "", false
}
