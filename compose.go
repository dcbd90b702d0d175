package timepred

// SafeMax bounds how many coarse "outer" windows the Composer will
// search per direction before giving up on an intersection that keeps
// coming up empty (e.g. "February 30th"). Truncation beyond SafeMax
// outer windows is silent by design (§4.5's rationale: a caller cannot
// distinguish "no match" from "match beyond SafeMax outer windows").
const SafeMax = 10

// runnerFn is the shape every field runner and every Predicate's run
// implementation has: given a reference and a bounding context, it
// returns the past and future halves of a bidirectional sequence.
type runnerFn func(ref TimeObject, ctx TimeContext) (past, future LazySeq)

// compose combines two runners into their intersection: right is the
// outer, coarser producer; left is the inner, finer producer
// re-evaluated once per outer hit with the context narrowed to it.
// This is what makes "4pm in March" mean "for each March, every 4pm
// within it" rather than trying to find a single fixed point.
func compose(left, right runnerFn) runnerFn {
	return func(ref TimeObject, ctx TimeContext) (LazySeq, LazySeq) {
		pastR, futureR := right(ref, ctx)

		pastHits := boundedOuterHits(pastR, ctx.Min, false)
		futureHits := boundedOuterHits(futureR, ctx.Max, true)

		past := func(yield func(TimeObject) bool) {
			for _, r := range pastHits {
				for _, m := range innerHitsWithin(left, r, ctx, false) {
					if !yield(m) {
						return
					}
				}
			}
		}
		future := func(yield func(TimeObject) bool) {
			for _, r := range futureHits {
				for _, m := range innerHitsWithin(left, r, ctx, true) {
					if !yield(m) {
						return
					}
				}
			}
		}
		return past, future
	}
}

// boundedOuterHits takes up to SafeMax elements of seq, stopping early
// once a hit runs past the relevant context bound. forward selects
// whether bound is ctx.Max (stop once a hit starts at or after
// EndOf(bound)) or ctx.Min (stop once a hit's own end falls at or
// before bound's start) — the mirror image of the forward check, so
// the search window is symmetric around the reference.
func boundedOuterHits(seq LazySeq, bound TimeObject, forward bool) []TimeObject {
	out := make([]TimeObject, 0, SafeMax)
	for t := range seq {
		if forward {
			if !t.Start.Before(EndOf(bound)) {
				break
			}
		} else {
			if !EndOf(t).After(bound.Start) {
				break
			}
		}
		out = append(out, t)
		if len(out) >= SafeMax {
			break
		}
	}
	return out
}

// innerHitsWithin re-evaluates left with the context narrowed to
// outer hit r (ref = r, min = max = r) and takes its future sequence
// — the matches from r's start forward, which is the complete set of
// left hits inside r since the narrowed context's width equals r's.
// For the past direction the result is reversed so each outer hit's
// contribution is itself strictly decreasing, matching the composer's
// global ordering invariant.
func innerHitsWithin(left runnerFn, r TimeObject, ctx TimeContext, forward bool) []TimeObject {
	narrowed := ctx.narrowedTo(r)
	_, futureInner := left(r, narrowed)

	var results []TimeObject
	for m := range futureInner {
		if !m.Start.Before(EndOf(r)) {
			break
		}
		if hit, ok := Intersect(m, r); ok {
			results = append(results, hit)
		}
	}
	if !forward {
		for i, j := 0, len(results)-1; i < j; i, j = i+1, j-1 {
			results[i], results[j] = results[j], results[i]
		}
	}
	return results
}
