package timepred

import "iter"

// LazySeq is a lazy, possibly-infinite sequence of TimeObjects. It is
// the same idiom the standard library's iter.Seq already is — a
// producer that calls yield until told to stop — used throughout this
// package for the bidirectional sequences a Predicate's run produces.
type LazySeq = iter.Seq[TimeObject]

// emptySeq yields nothing.
func emptySeq() LazySeq {
	return func(yield func(TimeObject) bool) {}
}

// takeWhileBefore yields elements of seq while pred holds, then stops.
// pred is evaluated on each element before it is yielded.
func takeWhileBefore(seq LazySeq, pred func(TimeObject) bool) LazySeq {
	return func(yield func(TimeObject) bool) {
		for t := range seq {
			if !pred(t) {
				return
			}
			if !yield(t) {
				return
			}
		}
	}
}

// firstN collects up to n elements of seq eagerly. Used only at the
// boundary where a caller needs a concrete slice (the Resolver's
// alternatives and its most recent past match).
func firstN(seq LazySeq, n int) []TimeObject {
	if n <= 0 {
		return nil
	}
	out := make([]TimeObject, 0, n)
	for t := range seq {
		out = append(out, t)
		if len(out) >= n {
			break
		}
	}
	return out
}

// concatSeq yields the elements of each seq in seqs, in order.
func concatSeq(seqs ...LazySeq) LazySeq {
	return func(yield func(TimeObject) bool) {
		for _, s := range seqs {
			for t := range s {
				if !yield(t) {
					return
				}
			}
		}
	}
}
