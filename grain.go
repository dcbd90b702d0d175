package timepred

import "time"

// Grain is a calendar granularity, totally ordered by width.
type Grain int

const (
	Second Grain = iota
	Minute
	Hour
	Day
	Week
	Month
	Quarter
	Year
)

func (g Grain) String() string {
	names := map[Grain]string{
		Second:  "second",
		Minute:  "minute",
		Hour:    "hour",
		Day:     "day",
		Week:    "week",
		Month:   "month",
		Quarter: "quarter",
		Year:    "year",
	}
	return names[g]
}

// minGrain returns the finer (numerically smaller) of two grains,
// matching Intersect's "grain = min(a.grain, b.grain)" rule, where
// "min" means the finer of the two — the narrower, more specific grain.
func minGrain(a, b Grain) Grain {
	if a < b {
		return a
	}
	return b
}

// Add shifts t by n units of g. Second/Minute/Hour are wall-clock
// durations on the UTC instant; Day and Week are calendar-day shifts;
// Month, Quarter, and Year preserve day-of-month where possible and
// clamp to the target month's last day otherwise.
func (g Grain) Add(t time.Time, n int) time.Time {
	switch g {
	case Second:
		return t.Add(time.Duration(n) * time.Second)
	case Minute:
		return t.Add(time.Duration(n) * time.Minute)
	case Hour:
		return t.Add(time.Duration(n) * time.Hour)
	case Day:
		return t.AddDate(0, 0, n)
	case Week:
		return t.AddDate(0, 0, 7*n)
	case Month:
		return addMonths(t, n)
	case Quarter:
		return addMonths(t, 3*n)
	case Year:
		return addMonths(t, 12*n)
	default:
		return t
	}
}

// addMonths shifts t by n months, preserving day-of-month where
// possible and clamping to the last valid day of the target month
// otherwise (e.g. Jan 31 + 1 month clamps to Feb 28/29).
func addMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	nsec := t.Nanosecond()
	loc := t.Location()

	totalMonths := int(month) - 1 + n
	targetYear := year + totalMonths/12
	targetMonth := totalMonths % 12
	if targetMonth < 0 {
		targetMonth += 12
		targetYear--
	}
	targetMonth++ // back to 1-12

	last := daysInMonth(targetYear, time.Month(targetMonth))
	if day > last {
		day = last
	}
	return time.Date(targetYear, time.Month(targetMonth), day, hour, min, sec, nsec, loc)
}

// daysInMonth returns the number of days in the given Gregorian month.
func daysInMonth(year int, month time.Month) int {
	firstOfNext := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
	lastOfThis := firstOfNext.AddDate(0, 0, -1)
	return lastOfThis.Day()
}

// lastDayOfMonth returns the date of the last day of the given month,
// at midnight UTC.
func lastDayOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, daysInMonth(year, month), 0, 0, 0, 0, time.UTC)
}

// isoWeekday returns the ISO 8601 weekday number for t (Monday=1,
// Sunday=7).
func isoWeekday(t time.Time) int {
	dow := t.Weekday()
	return (int(dow)+6)%7 + 1
}
