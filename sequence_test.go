package timepred

import "testing"

// dayCounter is an unbounded daily sequence starting at start, used to
// verify laziness: if this package eagerly materialized sequences, any
// test reading from it would hang or exhaust memory.
func dayCounter(start TimeObject) LazySeq {
	return func(yield func(TimeObject) bool) {
		t := start
		for {
			if !yield(t) {
				return
			}
			t = NewTimeObject(Day.Add(t.Start, 1), Day)
		}
	}
}

func TestFirstNIsLazy(t *testing.T) {
	seq := dayCounter(NewTimeObject(mustUTC("2013-02-12T00:00:00Z"), Day))
	got := firstN(seq, 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(got))
	}
	if got[0].Start.Day() != 12 || got[2].Start.Day() != 14 {
		t.Errorf("unexpected sequence: %v", got)
	}
}

func TestFirstNZeroReturnsNil(t *testing.T) {
	seq := dayCounter(NewTimeObject(mustUTC("2013-02-12T00:00:00Z"), Day))
	if got := firstN(seq, 0); got != nil {
		t.Errorf("expected nil for n=0, got %v", got)
	}
}

func TestEarlyTerminationStopsProducer(t *testing.T) {
	seq := dayCounter(NewTimeObject(mustUTC("2013-02-12T00:00:00Z"), Day))
	count := 0
	for range seq {
		count++
		if count >= 5 {
			break
		}
	}
	if count != 5 {
		t.Errorf("expected 5 iterations, got %d", count)
	}
}

func TestTakeWhileBefore(t *testing.T) {
	seq := dayCounter(NewTimeObject(mustUTC("2013-02-12T00:00:00Z"), Day))
	cutoff := mustUTC("2013-02-15T00:00:00Z")

	bounded := takeWhileBefore(seq, func(t TimeObject) bool {
		return t.Start.Before(cutoff)
	})

	got := make([]TimeObject, 0)
	for t := range bounded {
		got = append(got, t)
		if len(got) > 100 {
			t.Fatal("takeWhileBefore did not stop")
		}
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 elements (12th, 13th, 14th), got %d", len(got))
	}
}

func TestConcatSeqOrdersSources(t *testing.T) {
	a := firstN(dayCounter(NewTimeObject(mustUTC("2013-02-12T00:00:00Z"), Day)), 2)
	b := firstN(dayCounter(NewTimeObject(mustUTC("2013-03-01T00:00:00Z"), Day)), 2)

	seqA := func(yield func(TimeObject) bool) {
		for _, t := range a {
			if !yield(t) {
				return
			}
		}
	}
	seqB := func(yield func(TimeObject) bool) {
		for _, t := range b {
			if !yield(t) {
				return
			}
		}
	}

	got := firstN(concatSeq(seqA, seqB), 10)
	if len(got) != 4 {
		t.Fatalf("expected 4 elements, got %d", len(got))
	}
	if got[0].Start.Day() != 12 || got[2].Start.Day() != 1 {
		t.Errorf("concatSeq did not preserve source order: %v", got)
	}
}

func TestConcatSeqHonorsEarlyTermination(t *testing.T) {
	seqA := dayCounter(NewTimeObject(mustUTC("2013-02-12T00:00:00Z"), Day))
	seqB := dayCounter(NewTimeObject(mustUTC("2020-01-01T00:00:00Z"), Day))

	count := 0
	for range concatSeq(seqA, seqB) {
		count++
		if count >= 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("expected early termination at 3, got %d", count)
	}
}

func TestEmptySeqYieldsNothing(t *testing.T) {
	if _, ok := firstOf(emptySeq()); ok {
		t.Error("emptySeq should never yield")
	}
}
