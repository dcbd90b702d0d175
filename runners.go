package timepred

import "time"

// Field runners read and construct calendar fields in the query's own
// zone (ctx.TzSeries), converting back to UTC only when a TimeObject
// is built — TimeObject.Start's "always UTC" invariant is a storage
// detail, not a claim that matching itself ignores the zone. "4pm" and
// "Tuesday" are statements about a civil calendar, and the civil
// calendar is the one the caller's zone sees.

// localRound mirrors Round but preserves t's Location instead of
// forcing UTC, since it's used mid-computation on a zone-converted
// reference rather than on a value already destined for storage.
func localRound(t time.Time, g Grain) time.Time {
	switch g {
	case Second:
		return t.Truncate(time.Second)
	case Minute:
		return t.Truncate(time.Minute)
	case Hour:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	case Day:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	case Month:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	case Year:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	default:
		return t
	}
}

// mod returns a non-negative remainder, unlike Go's %, which can be
// negative for a negative dividend.
func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// periodicRunner builds a runnerFn for a field whose matches recur
// every stepN units of stepGrain, where anchorOf computes — from the
// reference expressed in ctx.TzSeries's zone — the first match whose
// end is after that local instant (the match containing it, if there
// is one). Because that anchor is itself future-qualifying, stepping
// backward from it by one period is always the most recent past match.
func periodicRunner(grain, stepGrain Grain, stepN int, anchorOf func(localRef time.Time) time.Time) runnerFn {
	return func(ref TimeObject, ctx TimeContext) (LazySeq, LazySeq) {
		localRef := ctx.TzSeries.In(ref.Start)
		anchor := anchorOf(localRef)

		future := func(yield func(TimeObject) bool) {
			t := anchor
			for !t.After(EndOf(ctx.Max)) {
				if !yield(NewTimeObject(t, grain)) {
					return
				}
				t = stepGrain.Add(t, stepN)
			}
		}
		past := func(yield func(TimeObject) bool) {
			t := stepGrain.Add(anchor, -stepN)
			for t.After(ctx.Min.Start) {
				if !yield(NewTimeObject(t, grain)) {
					return
				}
				t = stepGrain.Add(t, -stepN)
			}
		}
		return past, future
	}
}

// runSecond matches second-of-minute = n (0-59), recurring every minute.
func runSecond(n int) runnerFn {
	return periodicRunner(Second, Minute, 1, func(localRef time.Time) time.Time {
		rt := localRound(localRef, Second)
		delta := mod(n-rt.Second(), 60)
		return Second.Add(rt, delta)
	})
}

// runMinute matches minute-of-hour = n (0-59), recurring every hour.
func runMinute(n int) runnerFn {
	return periodicRunner(Minute, Hour, 1, func(localRef time.Time) time.Time {
		rt := localRound(localRef, Minute)
		delta := mod(n-rt.Minute(), 60)
		return Minute.Add(rt, delta)
	})
}

// runHour matches the hour field, disambiguated against an optional
// AMPM field per §4.4: an unqualified 12-hour literal with no AMPM
// recurs every 12 hours (it names both halves of the day); anything
// else — a 24-hour literal, or a 12-hour literal paired with AMPM —
// recurs once a day.
func runHour(hf HourField, ampm *AMPMValue) runnerFn {
	step := 24
	if hf.Is12h && hf.Value <= 12 && ampm == nil {
		step = 12
	}
	canonical := hf.Value
	if ampm != nil {
		if *ampm == AM {
			canonical = hf.Value % 12
		} else {
			canonical = (hf.Value % 12) + 12
		}
	}
	return periodicRunner(Hour, Hour, step, func(localRef time.Time) time.Time {
		rt := localRound(localRef, Hour)
		delta := mod(canonical-rt.Hour(), step)
		return Hour.Add(rt, delta)
	})
}

// shiftInterval moves an explicit-end TimeObject by hours, preserving
// its width.
func shiftInterval(t TimeObject, hours int) TimeObject {
	start := Hour.Add(t.Start, hours)
	end := Hour.Add(EndOf(t), hours)
	return NewInterval(start, t.Grain, end)
}

// runAMPMAlone matches a bare AMPM field (no Hour constraint),
// producing the explicit 12-hour interval for that half of the day,
// recurring once every 24 hours. The first interval in each direction
// is intersected with the reference's local calendar day and is dropped
// when it does not overlap that day; later intervals are not clipped.
func runAMPMAlone(v AMPMValue) runnerFn {
	n := 0
	if v == PM {
		n = 12
	}
	return func(ref TimeObject, ctx TimeContext) (LazySeq, LazySeq) {
		localRef := ctx.TzSeries.In(ref.Start)
		day := localRound(localRef, Day)
		base := Hour.Add(day, n)
		anchor := NewInterval(base, Hour, Hour.Add(base, 12))
		dayObj := NewTimeObject(day, Day)

		var firstFuture, firstPast TimeObject
		if EndOf(anchor).After(ref.Start) {
			firstFuture = anchor
			firstPast = shiftInterval(anchor, -24)
		} else {
			firstPast = anchor
			firstFuture = shiftInterval(anchor, 24)
		}

		clipSeq := func(first TimeObject, stepHours int, within func(TimeObject) bool) LazySeq {
			return func(yield func(TimeObject) bool) {
				cur := first
				idx := 0
				for within(cur) {
					out := cur
					ok := true
					if idx == 0 {
						out, ok = Intersect(cur, dayObj)
					}
					if ok {
						if !yield(out) {
							return
						}
					}
					cur = shiftInterval(cur, stepHours)
					idx++
				}
			}
		}

		future := clipSeq(firstFuture, 24, func(t TimeObject) bool {
			return !t.Start.After(EndOf(ctx.Max))
		})
		past := clipSeq(firstPast, -24, func(t TimeObject) bool {
			return t.Start.After(ctx.Min.Start)
		})
		return past, future
	}
}

// runDayOfWeek matches ISO day-of-week = n (Monday=1 ... Sunday=7),
// recurring every 7 days.
func runDayOfWeek(w Weekday) runnerFn {
	n := w.Number()
	return periodicRunner(Day, Day, 7, func(localRef time.Time) time.Time {
		rt := localRound(localRef, Day)
		delta := mod(n-isoWeekday(rt), 7)
		return Day.Add(rt, delta)
	})
}

// runDayOfMonth matches day-of-month = n (1-31), stepping one month at
// a time and skipping months too short to contain day n.
func runDayOfMonth(n int) runnerFn {
	return func(ref TimeObject, ctx TimeContext) (LazySeq, LazySeq) {
		localRef := ctx.TzSeries.In(ref.Start)
		monthStart := localRound(localRef, Month)
		if localRef.Day() > n {
			monthStart = Month.Add(monthStart, 1)
		}

		future := func(yield func(TimeObject) bool) {
			m := monthStart
			for !m.After(EndOf(ctx.Max)) {
				if daysInMonth(m.Year(), m.Month()) >= n {
					day := Day.Add(m, n-1)
					if !yield(NewTimeObject(day, Day)) {
						return
					}
				}
				m = Month.Add(m, 1)
			}
		}
		past := func(yield func(TimeObject) bool) {
			m := Month.Add(monthStart, -1)
			for !m.Before(ctx.Min.Start) {
				if daysInMonth(m.Year(), m.Month()) >= n {
					day := Day.Add(m, n-1)
					if !yield(NewTimeObject(day, Day)) {
						return
					}
				}
				m = Month.Add(m, -1)
			}
		}
		return past, future
	}
}

// runMonth matches month = m, recurring every year.
func runMonth(m MonthName) runnerFn {
	n := m.Number()
	return periodicRunner(Month, Year, 1, func(localRef time.Time) time.Time {
		yearStart := localRound(localRef, Year)
		anchor := Month.Add(yearStart, n-1)
		if !localRef.Before(EndOf(NewTimeObject(anchor, Month))) {
			anchor = Year.Add(anchor, 1)
		}
		return anchor
	})
}

// runYear matches year = n. Two-digit years expand via a 100-year
// window ending 50 years in the future. The result is always a single
// TimeObject, in the future if the resolved year is at or after the
// reference's local year, in the past otherwise.
func runYear(n int) runnerFn {
	year := n
	if n <= 99 {
		year = mod(n+50, 100) + 2000 - 50
	}
	return func(ref TimeObject, ctx TimeContext) (LazySeq, LazySeq) {
		localRef := ctx.TzSeries.In(ref.Start)
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, localRef.Location())
		obj := NewTimeObject(start, Year)
		if year >= localRef.Year() {
			return emptySeq(), func(yield func(TimeObject) bool) { yield(obj) }
		}
		return func(yield func(TimeObject) bool) { yield(obj) }, emptySeq()
	}
}
