package util

import "time"

// DayKey formats t as a calendar day in loc.
func DayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DateFormat)
}

// ShiftDay moves a YYYY-MM-DD key by n calendar days. Invalid keys are
// returned unchanged.
func ShiftDay(day string, n int) string {
	t, err := time.Parse(DateFormat, day)
	if err != nil {
		return day
	}
	return t.AddDate(0, 0, n).Format(DateFormat)
}
