package icalexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronotab/timepred"
)

func TestExportProducesValidCalendarWrapper(t *testing.T) {
	tz := timepred.MustTimeZoneSeries("America/Los_Angeles")
	ref := time.Date(2013, time.February, 12, 4, 30, 0, 0, tz.Location())
	td := timepred.TimeData{Predicate: timepred.DayOfWeek(timepred.Tuesday)}
	ctx := timepred.Context{Reference: ref, TzSeries: tz}

	out, err := Export("Tuesday reminder", td, ctx, 3)
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "BEGIN:VCALENDAR")
	assert.Contains(t, s, "END:VCALENDAR")
	assert.Contains(t, s, "BEGIN:VEVENT")
	assert.Contains(t, s, "SUMMARY:Tuesday reminder")
}

func TestExportRespectsLimit(t *testing.T) {
	tz := timepred.MustTimeZoneSeries("America/Los_Angeles")
	ref := time.Date(2013, time.February, 12, 4, 30, 0, 0, tz.Location())
	td := timepred.TimeData{Predicate: timepred.DayOfWeek(timepred.Tuesday)}
	ctx := timepred.Context{Reference: ref, TzSeries: tz}

	out, err := Export("weekly", td, ctx, 2)
	require.NoError(t, err)

	count := 0
	s := string(out)
	for i := 0; i+len("BEGIN:VEVENT") <= len(s); i++ {
		if s[i:i+len("BEGIN:VEVENT")] == "BEGIN:VEVENT" {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestExportLatentProducesEmptyCalendar(t *testing.T) {
	tz := timepred.MustTimeZoneSeries("America/Los_Angeles")
	ref := time.Date(2013, time.February, 12, 4, 30, 0, 0, tz.Location())
	td := timepred.TimeData{Predicate: timepred.DayOfWeek(timepred.Tuesday), Latent: true}
	ctx := timepred.Context{Reference: ref, TzSeries: tz}

	out, err := Export("nothing", td, ctx, 3)
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "BEGIN:VCALENDAR")
	assert.NotContains(t, s, "BEGIN:VEVENT")
}
