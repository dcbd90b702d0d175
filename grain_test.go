package timepred

import (
	"testing"
	"time"
)

func TestGrainAddMonthClampsToLastDay(t *testing.T) {
	jan31 := time.Date(2013, time.January, 31, 0, 0, 0, 0, time.UTC)
	got := Month.Add(jan31, 1)
	want := time.Date(2013, time.February, 28, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Month.Add(Jan 31, 1) = %v, want %v", got, want)
	}
}

func TestGrainAddMonthClampsOnLeapYear(t *testing.T) {
	jan31 := time.Date(2012, time.January, 31, 0, 0, 0, 0, time.UTC)
	got := Month.Add(jan31, 1)
	want := time.Date(2012, time.February, 29, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Month.Add(Jan 31, 1) in leap year = %v, want %v", got, want)
	}
}

func TestGrainAddYearCrossesMonthBoundary(t *testing.T) {
	start := time.Date(2013, time.November, 30, 0, 0, 0, 0, time.UTC)
	got := Year.Add(start, 1)
	want := time.Date(2014, time.November, 30, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Year.Add = %v, want %v", got, want)
	}
}

func TestGrainAddPreservesLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	start := time.Date(2013, time.February, 12, 4, 30, 0, 0, loc)
	got := Day.Add(start, 1)
	if got.Location() != loc {
		t.Errorf("Day.Add dropped location: got %v", got.Location())
	}
}

func TestRoundIdempotent(t *testing.T) {
	t1 := time.Date(2013, time.February, 12, 4, 30, 15, 0, time.UTC)
	for _, g := range []Grain{Second, Minute, Hour, Day, Week, Month, Quarter, Year} {
		once := Round(t1, g)
		twice := Round(once, g)
		if !once.Equal(twice) {
			t.Errorf("Round not idempotent at grain %v: %v then %v", g, once, twice)
		}
	}
}

func TestRoundWeekIsMonday(t *testing.T) {
	// 2013-02-12 is a Tuesday.
	t1 := time.Date(2013, time.February, 12, 4, 30, 0, 0, time.UTC)
	got := Round(t1, Week)
	want := time.Date(2013, time.February, 11, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Round(Tuesday, Week) = %v, want Monday %v", got, want)
	}
}

func TestRoundQuarter(t *testing.T) {
	t1 := time.Date(2013, time.August, 20, 0, 0, 0, 0, time.UTC)
	got := Round(t1, Quarter)
	want := time.Date(2013, time.July, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Round(Aug 20, Quarter) = %v, want %v", got, want)
	}
}

func TestIsoWeekdayMondayIsOne(t *testing.T) {
	monday := time.Date(2013, time.February, 11, 0, 0, 0, 0, time.UTC)
	if got := isoWeekday(monday); got != 1 {
		t.Errorf("isoWeekday(Monday) = %d, want 1", got)
	}
	sunday := time.Date(2013, time.February, 17, 0, 0, 0, 0, time.UTC)
	if got := isoWeekday(sunday); got != 7 {
		t.Errorf("isoWeekday(Sunday) = %d, want 7", got)
	}
}

func TestDaysInMonthFebruaryLeap(t *testing.T) {
	if got := daysInMonth(2012, time.February); got != 29 {
		t.Errorf("daysInMonth(2012, Feb) = %d, want 29", got)
	}
	if got := daysInMonth(2013, time.February); got != 28 {
		t.Errorf("daysInMonth(2013, Feb) = %d, want 28", got)
	}
}
