package timepred

import "time"

// TimeData is the resolver's input: a predicate plus the flags that
// shape which match is picked and how it renders.
type TimeData struct {
	Predicate Predicate

	// Latent predicates (ones that merely narrow a broader context,
	// e.g. a bare hour fragment awaiting a day) resolve to nothing.
	Latent bool

	// TimeGrain records the finest field-grain present in Predicate;
	// carried through for callers that need it, not consulted here.
	TimeGrain Grain

	// NotImmediate requests "the next one, not the current one" when
	// the chosen occurrence would otherwise be the one already
	// containing the reference instant.
	NotImmediate bool

	// Form, when set, hints at the caller's preferred rendering (e.g.
	// a bare grain vs. an explicit interval). The six-step resolve
	// algorithm renders Simple vs. Interval purely from whether the
	// chosen TimeObject carries an explicit end, so Form is accepted
	// for API completeness but not consulted.
	Form string

	// Direction, when set, renders the chosen value as an open
	// interval before or after it instead of a point or closed interval.
	Direction *Direction
}

// Context carries the reference instant and the zone it renders in.
type Context struct {
	Reference time.Time
	TzSeries  TimeZoneSeries
}

// Resolve picks one occurrence of td.Predicate relative to c plus up
// to three alternatives, and renders the result per the value schema.
// It returns false when there is nothing to resolve: td is latent, or
// the predicate's sequences are both empty.
func Resolve(td TimeData, c Context) (TimeValue, bool) {
	if td.Latent {
		return TimeValue{}, false
	}

	ctx := NewTimeContext(c.Reference, c.TzSeries)
	past, future := Run(td.Predicate, ctx.Ref, ctx)
	futureList := firstN(future, 3)

	if len(futureList) == 0 {
		pastList := firstN(past, 1)
		if len(pastList) == 0 {
			return TimeValue{}, false
		}
		return TimeValue{Chosen: renderSingle(pastList[0], c.TzSeries, td.Direction)}, true
	}

	chosen := futureList[0]
	if td.NotImmediate && len(futureList) > 1 {
		if _, overlaps := Intersect(chosen, ctx.Ref); overlaps {
			chosen = futureList[1]
		}
	}

	alternatives := make([]SingleTimeValue, len(futureList))
	for i, t := range futureList {
		alternatives[i] = renderSingle(t, c.TzSeries, td.Direction)
	}

	return TimeValue{
		Chosen:       renderSingle(chosen, c.TzSeries, td.Direction),
		Alternatives: alternatives,
	}, true
}

// renderSingle renders one TimeObject under the given direction policy.
func renderSingle(t TimeObject, tz TimeZoneSeries, direction *Direction) SingleTimeValue {
	if direction != nil {
		iv := InstantValue{Value: tz.In(t.Start), Grain: t.Grain}
		return OpenIntervalValue(iv, *direction)
	}
	if t.End != nil {
		from := InstantValue{Value: tz.In(t.Start), Grain: t.Grain}
		to := InstantValue{Value: tz.In(*t.End), Grain: t.Grain}
		return IntervalValue(from, to)
	}
	return Simple(InstantValue{Value: tz.In(t.Start), Grain: t.Grain})
}

// ResolveAll returns the full forward sequence of td.Predicate's
// matches relative to c, for callers that want every occurrence
// rather than one resolved value (e.g. iCalendar export).
func ResolveAll(td TimeData, c Context) LazySeq {
	if td.Latent {
		return emptySeq()
	}
	ctx := NewTimeContext(c.Reference, c.TzSeries)
	_, future := Run(td.Predicate, ctx.Ref, ctx)
	return future
}
