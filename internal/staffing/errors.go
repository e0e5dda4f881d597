package staffing

import "errors"

var (
	ErrDateOutsideSchedule = errors.New("date is outside the scheduled month")
	ErrInvalidForecastDays = errors.New("forecast days must be between 1 and 31")
	ErrReportNotFound      = errors.New("compliance report not found")
)
