package timepred

// run dispatches a Predicate to its evaluator.
func run(p Predicate) runnerFn {
	switch p.kind {
	case kindEmpty:
		return func(ref TimeObject, ctx TimeContext) (LazySeq, LazySeq) {
			return emptySeq(), emptySeq()
		}
	case kindSeries:
		return runnerFn(p.series)
	case kindIntersect:
		return compose(run(*p.left), run(*p.right))
	case kindTimeDate:
		return runTimeDate(p)
	default:
		return func(ref TimeObject, ctx TimeContext) (LazySeq, LazySeq) {
			return emptySeq(), emptySeq()
		}
	}
}

// Run evaluates predicate p around ref within ctx, returning its past
// and future sequences.
func Run(p Predicate, ref TimeObject, ctx TimeContext) (past, future LazySeq) {
	return run(p)(ref, ctx)
}

// runTimeDate builds the runner for a bag-of-fields predicate. Fields
// combine in grain order, finest first, folded right through the
// Composer so that at every step the left operand is the finer, more
// frequent producer (§4.3).
func runTimeDate(td Predicate) runnerFn {
	if td.hour == nil && td.ampm != nil {
		other := td.second != nil || td.minute != nil || td.dayOfWeek != nil ||
			td.dayOfMonth != nil || td.month != nil || td.year != nil
		if other {
			return func(ref TimeObject, ctx TimeContext) (LazySeq, LazySeq) {
				return emptySeq(), emptySeq()
			}
		}
		return runAMPMAlone(*td.ampm)
	}

	var runners []runnerFn
	if td.second != nil {
		runners = append(runners, runSecond(*td.second))
	}
	if td.minute != nil {
		runners = append(runners, runMinute(*td.minute))
	}
	if td.hour != nil {
		runners = append(runners, runHour(*td.hour, td.ampm))
	}
	if td.dayOfWeek != nil {
		runners = append(runners, runDayOfWeek(*td.dayOfWeek))
	}
	if td.dayOfMonth != nil {
		runners = append(runners, runDayOfMonth(*td.dayOfMonth))
	}
	if td.month != nil {
		runners = append(runners, runMonth(*td.month))
	}
	if td.year != nil {
		runners = append(runners, runYear(*td.year))
	}

	return foldRunners(runners)
}

// foldRunners combines a list of field runners, finest first, by
// folding compose from the right so the leftmost (finest) runner is
// always the inner operand relative to the combined rest.
func foldRunners(runners []runnerFn) runnerFn {
	switch len(runners) {
	case 0:
		return func(ref TimeObject, ctx TimeContext) (LazySeq, LazySeq) {
			return emptySeq(), emptySeq()
		}
	case 1:
		return runners[0]
	default:
		return compose(runners[0], foldRunners(runners[1:]))
	}
}
