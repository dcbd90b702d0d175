// Package icalexport renders a predicate's occurrence sequence as an
// RFC 5545 VCALENDAR, one VEVENT per occurrence.
package icalexport

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"

	"github.com/chronotab/timepred"
)

const (
	prodID    = "-//chronotab//timepred//EN"
	uidDomain = "timepred.local"
)

// Export renders up to limit occurrences of td relative to c as a
// VCALENDAR. name becomes each event's SUMMARY. limit guards against
// td's future sequence being effectively unbounded (e.g. a bare
// weekday predicate never runs dry on its own).
func Export(name string, td timepred.TimeData, c timepred.Context, limit int) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, prodID)

	now := c.Reference.UTC()
	n := 0
	for occ := range timepred.ResolveAll(td, c) {
		if n >= limit {
			break
		}
		event := buildEvent(name, occ, now, n)
		cal.Children = append(cal.Children, event.Component)
		n++
	}

	if n == 0 {
		slog.Warn("icalexport: predicate produced no occurrences", "summary", name)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("icalexport: encode calendar: %w", err)
	}
	return buf.Bytes(), nil
}

func buildEvent(name string, occ timepred.TimeObject, stamp time.Time, index int) *ical.Event {
	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, uidFor(name, occ, index))
	event.Props.SetText(ical.PropSummary, name)

	dtStampProp := ical.NewProp(ical.PropDateTimeStamp)
	dtStampProp.SetDateTime(stamp)
	event.Props.Set(dtStampProp)

	dtStartProp := ical.NewProp(ical.PropDateTimeStart)
	if occ.Grain == timepred.Day {
		dtStartProp.SetDate(occ.Start)
	} else {
		dtStartProp.SetDateTime(occ.Start)
	}
	event.Props.Set(dtStartProp)

	if occ.End != nil {
		dtEndProp := ical.NewProp(ical.PropDateTimeEnd)
		if occ.Grain == timepred.Day {
			dtEndProp.SetDate(*occ.End)
		} else {
			dtEndProp.SetDateTime(*occ.End)
		}
		event.Props.Set(dtEndProp)
	}

	return event
}

func uidFor(name string, occ timepred.TimeObject, index int) string {
	h := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%d", name, occ.Start.UTC().Format(time.RFC3339), index)))
	return fmt.Sprintf("%x@%s", h[:8], uidDomain)
}
