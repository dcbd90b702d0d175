package timepred

// predicateKind tags which variant of the Predicate algebra a value is.
type predicateKind int

const (
	kindEmpty predicateKind = iota
	kindTimeDate
	kindSeries
	kindIntersect
)

// AMPMValue selects the half of the day an Hour field refers to.
type AMPMValue int

const (
	AM AMPMValue = iota
	PM
)

// HourField is the bag-of-fields form's hour constraint: Is12h records
// whether the literal was written in 12-hour form, and Value is the
// bare hour as written (0-23 for 24h, 1-12 for 12h) — disambiguation
// against AMPM happens in the hour runner (§4.4), not here.
type HourField struct {
	Is12h bool
	Value int
}

// seriesFn is the opaque function a Series predicate wraps: given a
// reference and a bounding context, it produces the two halves of a
// bidirectional sequence of matches.
type seriesFn func(ref TimeObject, ctx TimeContext) (past, future LazySeq)

// Predicate is the algebraic structure describing a temporal pattern:
// Empty (matches nothing), a free-form Series function, a bag of
// calendar-field constraints (TimeDate), or an Intersect of two
// predicates. The zero value is Empty.
type Predicate struct {
	kind predicateKind

	// kindTimeDate fields. At least one is non-nil by construction.
	second     *int
	minute     *int
	hour       *HourField
	ampm       *AMPMValue
	dayOfWeek  *Weekday
	dayOfMonth *int
	month      *MonthName
	year       *int

	// kindSeries
	series seriesFn

	// kindIntersect
	left, right *Predicate
}

// Empty returns the predicate that matches nothing.
func Empty() Predicate {
	return Predicate{kind: kindEmpty}
}

// IsEmpty reports whether p is the Empty predicate.
func (p Predicate) IsEmpty() bool {
	return p.kind == kindEmpty
}

// SeriesPredicate builds a Predicate from an opaque bidirectional
// sequence function.
func SeriesPredicate(fn seriesFn) Predicate {
	return Predicate{kind: kindSeries, series: fn}
}

// SecondOf constrains the second-of-minute field (0-59).
func SecondOf(n int) Predicate {
	return Predicate{kind: kindTimeDate, second: &n}
}

// MinuteOf constrains the minute-of-hour field (0-59).
func MinuteOf(n int) Predicate {
	return Predicate{kind: kindTimeDate, minute: &n}
}

// HourOf constrains the hour field. is12h records whether the literal
// was 12-hour form; value is 0-23 for 24h or 1-12 for 12h.
func HourOf(is12h bool, value int) Predicate {
	h := HourField{Is12h: is12h, Value: value}
	return Predicate{kind: kindTimeDate, hour: &h}
}

// AMPMOf constrains the half of the day. Alongside an Hour field (via
// Intersect) it selects which half the hour falls in. On its own it
// matches the 12-hour interval for that half of each day; combined
// with any other field but no Hour, its sequence is empty.
func AMPMOf(v AMPMValue) Predicate {
	return Predicate{kind: kindTimeDate, ampm: &v}
}

// DayOfWeek constrains the ISO day-of-week field (Monday=1 ... Sunday=7).
func DayOfWeek(w Weekday) Predicate {
	return Predicate{kind: kindTimeDate, dayOfWeek: &w}
}

// DayOfMonth constrains the day-of-month field (1-31).
func DayOfMonth(n int) Predicate {
	return Predicate{kind: kindTimeDate, dayOfMonth: &n}
}

// Month constrains the month field (1-12).
func Month(m MonthName) Predicate {
	return Predicate{kind: kindTimeDate, month: &m}
}

// Year constrains the year field. Two-digit years are expanded by the
// year runner (§4.4), not here.
func Year(n int) Predicate {
	return Predicate{kind: kindTimeDate, year: &n}
}

// Intersect builds the conjunction of p1 and p2, preserving the
// algebra's invariants:
//
//   - either side Empty collapses the whole conjunction to Empty.
//   - two TimeDate predicates unify field-by-field: an unset field
//     takes the other side's value; two equal set values are kept;
//     two unequal set values make the conjunction unsatisfiable and
//     collapse to Empty.
//   - anything else (a Series on either side) is wrapped in a generic
//     Intersect node for the Composer to evaluate.
func Intersect(p1, p2 Predicate) Predicate {
	if p1.kind == kindEmpty || p2.kind == kindEmpty {
		return Empty()
	}
	if p1.kind == kindTimeDate && p2.kind == kindTimeDate {
		return unifyTimeDate(p1, p2)
	}
	return Predicate{kind: kindIntersect, left: &p1, right: &p2}
}

// unifyTimeDate merges two TimeDate predicates field by field.
func unifyTimeDate(a, b Predicate) Predicate {
	out := Predicate{kind: kindTimeDate}

	unifyInt := func(x, y *int) (*int, bool) {
		switch {
		case x == nil && y == nil:
			return nil, true
		case x == nil:
			return y, true
		case y == nil:
			return x, true
		default:
			return x, *x == *y
		}
	}
	unifyWeekday := func(x, y *Weekday) (*Weekday, bool) {
		switch {
		case x == nil && y == nil:
			return nil, true
		case x == nil:
			return y, true
		case y == nil:
			return x, true
		default:
			return x, *x == *y
		}
	}
	unifyMonth := func(x, y *MonthName) (*MonthName, bool) {
		switch {
		case x == nil && y == nil:
			return nil, true
		case x == nil:
			return y, true
		case y == nil:
			return x, true
		default:
			return x, *x == *y
		}
	}
	unifyAMPM := func(x, y *AMPMValue) (*AMPMValue, bool) {
		switch {
		case x == nil && y == nil:
			return nil, true
		case x == nil:
			return y, true
		case y == nil:
			return x, true
		default:
			return x, *x == *y
		}
	}
	unifyHour := func(x, y *HourField) (*HourField, bool) {
		switch {
		case x == nil && y == nil:
			return nil, true
		case x == nil:
			return y, true
		case y == nil:
			return x, true
		default:
			return x, *x == *y
		}
	}

	var ok bool
	if out.second, ok = unifyInt(a.second, b.second); !ok {
		return Empty()
	}
	if out.minute, ok = unifyInt(a.minute, b.minute); !ok {
		return Empty()
	}
	if out.hour, ok = unifyHour(a.hour, b.hour); !ok {
		return Empty()
	}
	if out.ampm, ok = unifyAMPM(a.ampm, b.ampm); !ok {
		return Empty()
	}
	if out.dayOfWeek, ok = unifyWeekday(a.dayOfWeek, b.dayOfWeek); !ok {
		return Empty()
	}
	if out.dayOfMonth, ok = unifyInt(a.dayOfMonth, b.dayOfMonth); !ok {
		return Empty()
	}
	if out.month, ok = unifyMonth(a.month, b.month); !ok {
		return Empty()
	}
	if out.year, ok = unifyInt(a.year, b.year); !ok {
		return Empty()
	}
	return out
}
