// Package timepred provides a predicate algebra for symbolic temporal
// patterns and a lazy bidirectional evaluator that resolves them to
// concrete, timezone-aware calendar intervals.
//
// A Predicate describes a pattern such as "the 3rd of a month",
// "Tuesdays", "4pm", or an intersection of several such patterns.
// Given a reference instant and a time zone, Resolve picks the interval
// a caller should treat as "the answer" — optionally skipping one that
// is already in progress — along with a short lookahead of alternatives.
//
// Example usage:
//
//	tz := timepred.MustTimeZoneSeries("America/Los_Angeles")
//	p := timepred.Intersect(timepred.DayOfWeek(timepred.Tuesday), timepred.HourOf(false, 16))
//	data := timepred.TimeData{Predicate: p}
//	ctx := timepred.Context{Reference: time.Now(), TzSeries: tz}
//	value, ok := timepred.Resolve(data, ctx)
package timepred
