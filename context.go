package timepred

import "time"

// farBound is the default half-width of a TimeContext's evaluation
// window: 2000 years on either side of the reference instant.
const farBound = 2000

// TimeZoneSeries is a named IANA time zone plus its resolved
// *time.Location. It carries the DST transition series used when
// rendering an InstantValue, and is read-only and safe to share across
// concurrent queries once constructed.
type TimeZoneSeries struct {
	name     string
	location *time.Location
}

// Name returns the IANA zone name, or "" for UTCSeries and the zero value.
func (z TimeZoneSeries) Name() string {
	return z.name
}

// Location returns the resolved *time.Location.
func (z TimeZoneSeries) Location() *time.Location {
	if z.location == nil {
		return time.UTC
	}
	return z.location
}

// In converts t to this series' zone.
func (z TimeZoneSeries) In(t time.Time) time.Time {
	return t.In(z.Location())
}

// UTCSeries is the zero-value TimeZoneSeries; it resolves to UTC.
var UTCSeries = TimeZoneSeries{location: time.UTC}

// NewTimeZoneSeries resolves an IANA zone name to a TimeZoneSeries. An
// empty name resolves to UTC, matching the default ±2000 year bounding
// and keeping Resolve total rather than erroring on an unspecified zone.
func NewTimeZoneSeries(name string) (TimeZoneSeries, error) {
	if name == "" {
		return UTCSeries, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return TimeZoneSeries{}, zoneError(name, err)
	}
	return TimeZoneSeries{name: name, location: loc}, nil
}

// MustTimeZoneSeries is like NewTimeZoneSeries but panics on error. It
// is meant for zone names that have already been validated.
func MustTimeZoneSeries(name string) TimeZoneSeries {
	z, err := NewTimeZoneSeries(name)
	if err != nil {
		panic(err)
	}
	return z
}

// TimeContext bounds a predicate evaluation: ref anchors "now", and
// Min/Max bound how far past/future a sequence may search. TzSeries is
// read-only; the field runners read and build calendar fields in its zone.
type TimeContext struct {
	Ref      TimeObject
	TzSeries TimeZoneSeries
	Min      TimeObject
	Max      TimeObject
}

// NewTimeContext builds a TimeContext anchored at ref, bounded by the
// default ±2000 year window.
func NewTimeContext(ref time.Time, tz TimeZoneSeries) TimeContext {
	refObj := NewTimeObject(ref, Second)
	return TimeContext{
		Ref:      refObj,
		TzSeries: tz,
		Min:      NewTimeObject(Year.Add(refObj.Start, -farBound), Year),
		Max:      NewTimeObject(Year.Add(refObj.Start, farBound), Year),
	}
}

// narrowedTo returns a copy of ctx with Min and Max both set to r, the
// per-outer-hit narrowing the Composer uses to re-run the inner
// producer confined to a single outer window.
func (ctx TimeContext) narrowedTo(r TimeObject) TimeContext {
	ctx.Min = r
	ctx.Max = r
	return ctx
}
