package timepred

import "time"

// NthWeekdayOfMonth matches the ordinal occurrence of weekday within
// each month (e.g. the third Tuesday, or — via OrdinalLast — the last
// Friday), skipping months where that occurrence doesn't exist.
func NthWeekdayOfMonth(ordinal OrdinalPosition, w Weekday) Predicate {
	n := ordinal.ToN()
	return SeriesPredicate(func(ref TimeObject, ctx TimeContext) (LazySeq, LazySeq) {
		localRef := ctx.TzSeries.In(ref.Start)
		loc := localRef.Location()
		monthStart := localRound(localRef, Month)

		occurrenceIn := func(m time.Time) (TimeObject, bool) {
			t, ok := nthWeekdayOfMonth(m.Year(), m.Month(), w, n)
			if !ok {
				return TimeObject{}, false
			}
			local := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
			return NewTimeObject(local, Day), true
		}

		if occ, ok := occurrenceIn(monthStart); ok && !EndOf(occ).After(ref.Start) {
			monthStart = Month.Add(monthStart, 1)
		}

		future := func(yield func(TimeObject) bool) {
			m := monthStart
			for !m.After(EndOf(ctx.Max)) {
				if occ, ok := occurrenceIn(m); ok {
					if !yield(occ) {
						return
					}
				}
				m = Month.Add(m, 1)
			}
		}
		past := func(yield func(TimeObject) bool) {
			m := Month.Add(monthStart, -1)
			for !m.Before(ctx.Min.Start) {
				if occ, ok := occurrenceIn(m); ok {
					if !yield(occ) {
						return
					}
				}
				m = Month.Add(m, -1)
			}
		}
		return past, future
	})
}

// civilDate identifies a calendar date independent of time-of-day,
// used by Except to match exception dates regardless of the excluded
// predicate's grain.
type civilDate struct{ y, m, d int }

func civilDateOf(t time.Time) civilDate {
	y, mo, d := t.Date()
	return civilDate{y, int(mo), d}
}

// Except wraps p, dropping any match whose calendar date (in UTC)
// coincides with one of dates. This is the engine's equivalent of an
// iCalendar EXDATE list.
func Except(p Predicate, dates ...time.Time) Predicate {
	excluded := make(map[civilDate]bool, len(dates))
	for _, d := range dates {
		excluded[civilDateOf(d.UTC())] = true
	}
	return SeriesPredicate(func(ref TimeObject, ctx TimeContext) (LazySeq, LazySeq) {
		past, future := run(p)(ref, ctx)
		filter := func(seq LazySeq) LazySeq {
			return func(yield func(TimeObject) bool) {
				for t := range seq {
					if excluded[civilDateOf(t.Start)] {
						continue
					}
					if !yield(t) {
						return
					}
				}
			}
		}
		return filter(past), filter(future)
	})
}

// Until wraps p, dropping future matches that start after cutoff. Past
// matches are unaffected — mirroring RRULE's UNTIL, which bounds only
// the forward recurrence.
func Until(p Predicate, cutoff time.Time) Predicate {
	cutoffUTC := cutoff.UTC()
	return SeriesPredicate(func(ref TimeObject, ctx TimeContext) (LazySeq, LazySeq) {
		past, future := run(p)(ref, ctx)
		bounded := func(yield func(TimeObject) bool) {
			for t := range future {
				if t.Start.After(cutoffUTC) {
					return
				}
				if !yield(t) {
					return
				}
			}
		}
		return past, bounded
	})
}
