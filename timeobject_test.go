package timepred

import (
	"testing"
	"time"
)

func mustUTC(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestEndOfImplicitWidth(t *testing.T) {
	day := NewTimeObject(mustUTC("2013-02-12T00:00:00Z"), Day)
	want := mustUTC("2013-02-13T00:00:00Z")
	if got := EndOf(day); !got.Equal(want) {
		t.Errorf("EndOf(day) = %v, want %v", got, want)
	}
}

func TestEndOfExplicit(t *testing.T) {
	iv := NewInterval(mustUTC("2013-02-12T16:00:00Z"), Hour, mustUTC("2013-02-12T18:00:00Z"))
	want := mustUTC("2013-02-12T18:00:00Z")
	if got := EndOf(iv); !got.Equal(want) {
		t.Errorf("EndOf(interval) = %v, want %v", got, want)
	}
}

func TestIntersectOverlap(t *testing.T) {
	feb := NewTimeObject(mustUTC("2013-02-01T00:00:00Z"), Month)
	day30 := NewTimeObject(mustUTC("2013-02-20T00:00:00Z"), Day)

	got, ok := Intersect(feb, day30)
	if !ok {
		t.Fatal("expected overlap")
	}
	if got.Grain != Day {
		t.Errorf("expected finer grain Day, got %v", got.Grain)
	}
	if !got.Start.Equal(day30.Start) {
		t.Errorf("start = %v, want %v", got.Start, day30.Start)
	}
}

func TestIntersectNoOverlap(t *testing.T) {
	jan := NewTimeObject(mustUTC("2013-01-01T00:00:00Z"), Month)
	mar := NewTimeObject(mustUTC("2013-03-01T00:00:00Z"), Month)
	if _, ok := Intersect(jan, mar); ok {
		t.Error("expected no overlap between January and March")
	}
}

func TestIntersectCommutative(t *testing.T) {
	a := NewTimeObject(mustUTC("2013-02-01T00:00:00Z"), Month)
	b := NewTimeObject(mustUTC("2013-02-19T00:00:00Z"), Day)

	ab, okAB := Intersect(a, b)
	ba, okBA := Intersect(b, a)
	if okAB != okBA {
		t.Fatalf("commutativity mismatch on ok: %v vs %v", okAB, okBA)
	}
	if !ab.Start.Equal(ba.Start) || !EndOf(ab).Equal(EndOf(ba)) {
		t.Errorf("Intersect(a,b) = [%v,%v) but Intersect(b,a) = [%v,%v)",
			ab.Start, EndOf(ab), ba.Start, EndOf(ba))
	}
}

func TestIntervalOpenVsClosed(t *testing.T) {
	t1 := NewTimeObject(mustUTC("2013-02-12T00:00:00Z"), Day)
	t2 := NewTimeObject(mustUTC("2013-02-19T00:00:00Z"), Day)

	open := Interval(Open, t1, t2)
	if !EndOf(open).Equal(t2.Start) {
		t.Errorf("open interval end = %v, want %v", EndOf(open), t2.Start)
	}

	closed := Interval(Closed, t1, t2)
	if !EndOf(closed).Equal(EndOf(t2)) {
		t.Errorf("closed interval end = %v, want %v", EndOf(closed), EndOf(t2))
	}
}

func TestStartsBeforeEndOf(t *testing.T) {
	a := NewTimeObject(mustUTC("2013-02-12T00:00:00Z"), Day)
	b := NewTimeObject(mustUTC("2013-02-12T16:00:00Z"), Hour)
	if !StartsBeforeEndOf(b, a) {
		t.Error("expected b to start before a ends")
	}
	c := NewTimeObject(mustUTC("2013-02-13T00:00:00Z"), Day)
	if StartsBeforeEndOf(c, a) {
		t.Error("expected c not to start before a ends")
	}
}
