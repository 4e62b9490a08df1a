package report

import "time"

// DayWindow returns the half-open window [midnight today, midnight tomorrow)
// in loc, derived from now at call time so it stays correct across the day
// boundary without a restart.
func DayWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	year, month, day := now.In(loc).Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// MonthWindow returns the half-open window [first of this month, first of
// next month) in loc. The upper bound is exclusive, matching the daily
// window convention.
func MonthWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	year, month, _ := now.In(loc).Date()
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}
