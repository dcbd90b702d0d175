package timepred

import "time"

// TimeObject is a half-open calendar interval: a start instant (always
// UTC), a grain recording its natural width (or, when End is set, the
// finest granularity that contributed to it), and an optional explicit
// end overriding the implicit width.
type TimeObject struct {
	Start time.Time
	Grain Grain
	End   *time.Time
}

// NewTimeObject builds a TimeObject with no explicit end; its width is
// exactly one unit of grain.
func NewTimeObject(start time.Time, grain Grain) TimeObject {
	return TimeObject{Start: start.UTC(), Grain: grain}
}

// NewInterval builds a TimeObject with an explicit end.
func NewInterval(start time.Time, grain Grain, end time.Time) TimeObject {
	e := end.UTC()
	return TimeObject{Start: start.UTC(), Grain: grain, End: &e}
}

// EndOf returns t.End if present, otherwise the instant one grain unit
// after t.Start.
func EndOf(t TimeObject) time.Time {
	if t.End != nil {
		return *t.End
	}
	return t.Grain.Add(t.Start, 1)
}

// Round truncates t down to the start of the grain g containing it,
// toward the epoch. The result has no explicit end.
//
// Week rounds to the Monday of the ISO week containing t (by rounding
// to Day first). Quarter rounds to the first month of the quarter
// containing t, then to the first of that month.
func Round(t time.Time, g Grain) time.Time {
	t = t.UTC()
	switch g {
	case Second:
		return t.Truncate(time.Second)
	case Minute:
		return t.Truncate(time.Minute)
	case Hour:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, time.UTC)
	case Day:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	case Week:
		d := Round(t, Day)
		offset := isoWeekday(d) - 1
		return d.AddDate(0, 0, -offset)
	case Month:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	case Quarter:
		m := Round(t, Month)
		back := (int(m.Month()) - 1) % 3
		return m.AddDate(0, -back, 0)
	case Year:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		return t
	}
}

// RoundTo returns a TimeObject at grain g whose start is Round(t, g).
func RoundTo(t time.Time, g Grain) TimeObject {
	return NewTimeObject(Round(t, g), g)
}

// StartsBeforeEndOf reports whether a starts before b ends.
func StartsBeforeEndOf(a, b TimeObject) bool {
	return a.Start.Before(EndOf(b))
}

// Intersect returns the overlap of a and b, and whether they overlap
// at all. The result's grain is the finer of the two inputs' grains,
// and it always carries an explicit end: it starts at the later of the
// two starts and ends at the earlier of the two ends. This makes
// intersecting a coarser implicit-width TimeObject with a finer
// explicit interval yield the finer interval.
func Intersect(a, b TimeObject) (TimeObject, bool) {
	if a.Start.After(b.Start) {
		a, b = b, a
	}
	aEnd := EndOf(a)
	if !aEnd.After(b.Start) {
		return TimeObject{}, false
	}

	grain := minGrain(a.Grain, b.Grain)
	start := b.Start
	bEnd := EndOf(b)

	var end time.Time
	switch {
	case aEnd.Before(bEnd):
		end = aEnd
	case aEnd.Equal(bEnd) && a.End != nil:
		end = aEnd
	default:
		end = bEnd
	}

	return NewInterval(start, grain, end), true
}

// IntervalKind selects whether Interval's second endpoint is the start
// of t2 (Open) or the end of t2 (Closed).
type IntervalKind int

const (
	Closed IntervalKind = iota
	Open
)

// Interval builds the TimeObject spanning from t1's start to either
// t2's start (Open) or t2's end (Closed).
func Interval(kind IntervalKind, t1, t2 TimeObject) TimeObject {
	grain := minGrain(t1.Grain, t2.Grain)
	var end time.Time
	if kind == Open {
		end = t2.Start
	} else {
		end = EndOf(t2)
	}
	return NewInterval(t1.Start, grain, end)
}
