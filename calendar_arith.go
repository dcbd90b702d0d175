package timepred

import "time"

// nthWeekdayOfMonth returns the nth occurrence of weekday within the
// given month, or ok=false if that occurrence doesn't exist (e.g. a
// 5th Friday in a month that only has four).
func nthWeekdayOfMonth(year int, month time.Month, weekday Weekday, n int) (t time.Time, ok bool) {
	target := time.Weekday(weekday.goWeekday())

	if n > 0 {
		d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		for d.Weekday() != target {
			d = d.AddDate(0, 0, 1)
		}
		d = d.AddDate(0, 0, (n-1)*7)
		if d.Month() != month {
			return time.Time{}, false
		}
		return d, true
	}

	// n < 0: count back from the end of the month (n == -1 is "last").
	d := lastDayOfMonth(year, month)
	for d.Weekday() != target {
		d = d.AddDate(0, 0, -1)
	}
	d = d.AddDate(0, 0, (n+1)*7)
	if d.Month() != month {
		return time.Time{}, false
	}
	return d, true
}
