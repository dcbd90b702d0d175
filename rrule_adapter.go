package timepred

import (
	"log/slog"
	"time"

	"github.com/teambition/rrule-go"
)

// FromRRule builds a Predicate from an RFC 5545 RRULE string anchored
// at dtstart, for callers that already have a recurrence rule (e.g.
// from an imported calendar) rather than a hand-built field predicate.
// The resulting predicate is a Series: it defers entirely to the
// underlying *rrule.RRule rather than decomposing into TimeDate
// fields, since RRULE's BYxxx parts don't map cleanly onto the single-
// field bag the Composer expects.
func FromRRule(rule string, dtstart time.Time) (Predicate, error) {
	option, err := rrule.StrToROption(rule)
	if err != nil {
		slog.Warn("rrule: failed to parse rule", "rule", rule, "error", err)
		return Empty(), err
	}
	option.Dtstart = dtstart.UTC()
	r, err := rrule.NewRRule(*option)
	if err != nil {
		slog.Warn("rrule: failed to build rule", "rule", rule, "error", err)
		return Empty(), err
	}
	grain := grainForFreq(option.Freq)
	slog.Debug("rrule: built recurrence predicate", "rule", rule, "grain", grain)

	return SeriesPredicate(func(ref TimeObject, ctx TimeContext) (LazySeq, LazySeq) {
		future := func(yield func(TimeObject) bool) {
			next := r.Iterator()
			for {
				t, ok := next()
				if !ok {
					return
				}
				m := NewTimeObject(t, grain)
				if !EndOf(m).After(ref.Start) {
					continue
				}
				if t.After(EndOf(ctx.Max)) {
					return
				}
				if !yield(m) {
					return
				}
			}
		}
		past := func(yield func(TimeObject) bool) {
			cursor := ref.Start
			for {
				t := r.Before(cursor, false)
				if t.IsZero() {
					return
				}
				m := NewTimeObject(t, grain)
				if !EndOf(m).After(ctx.Min.Start) {
					return
				}
				if !yield(m) {
					return
				}
				cursor = t
			}
		}
		return past, future
	}), nil
}

// grainForFreq maps an RRULE FREQ onto the nearest Grain for rendering
// the occurrences FromRRule produces.
func grainForFreq(f rrule.Frequency) Grain {
	switch f {
	case rrule.SECONDLY:
		return Second
	case rrule.MINUTELY:
		return Minute
	case rrule.HOURLY:
		return Hour
	case rrule.DAILY:
		return Day
	case rrule.WEEKLY:
		return Week
	case rrule.MONTHLY:
		return Month
	case rrule.YEARLY:
		return Year
	default:
		return Day
	}
}
