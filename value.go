package timepred

import (
	"encoding/json"
	"time"
)

// InstantValue is a grain-qualified instant, already expressed in the
// zone it will render in.
type InstantValue struct {
	Value time.Time
	Grain Grain
}

func (iv InstantValue) rfc3339() string {
	return iv.Value.Format("2006-01-02T15:04:05.000-07:00")
}

func (iv InstantValue) jsonMap() map[string]any {
	return map[string]any{
		"value": iv.rfc3339(),
		"grain": iv.Grain.String(),
	}
}

// MarshalJSON implements json.Marshaler.
func (iv InstantValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(iv.jsonMap())
}

// Direction selects which side of an open interval's instant is bounded.
type Direction int

const (
	DirectionBefore Direction = iota
	DirectionAfter
)

type singleKind int

const (
	singleSimple singleKind = iota
	singleInterval
	singleOpenInterval
)

// SingleTimeValue is one resolved value: a point, a closed interval,
// or a half-bounded open interval.
type SingleTimeValue struct {
	kind   singleKind
	simple InstantValue
	from   InstantValue
	to     InstantValue
	dir    Direction
}

// Simple builds a point-in-time value.
func Simple(iv InstantValue) SingleTimeValue {
	return SingleTimeValue{kind: singleSimple, simple: iv}
}

// IntervalValue builds a closed interval value.
func IntervalValue(from, to InstantValue) SingleTimeValue {
	return SingleTimeValue{kind: singleInterval, from: from, to: to}
}

// OpenIntervalValue builds a half-bounded interval value: "before
// instant" or "after instant".
func OpenIntervalValue(instant InstantValue, dir Direction) SingleTimeValue {
	sv := SingleTimeValue{kind: singleOpenInterval, dir: dir}
	if dir == DirectionBefore {
		sv.to = instant
	} else {
		sv.from = instant
	}
	return sv
}

func (v SingleTimeValue) jsonMap() map[string]any {
	switch v.kind {
	case singleSimple:
		m := v.simple.jsonMap()
		m["type"] = "value"
		return m
	case singleInterval:
		return map[string]any{
			"type": "interval",
			"from": v.from.jsonMap(),
			"to":   v.to.jsonMap(),
		}
	default:
		m := map[string]any{"type": "interval"}
		if v.dir == DirectionBefore {
			m["to"] = v.to.jsonMap()
		} else {
			m["from"] = v.from.jsonMap()
		}
		return m
	}
}

// MarshalJSON implements json.Marshaler.
func (v SingleTimeValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.jsonMap())
}

// TimeValue is the Resolver's output: the chosen value plus up to
// three alternatives.
type TimeValue struct {
	Chosen       SingleTimeValue
	Alternatives []SingleTimeValue
}

// MarshalJSON implements json.Marshaler, flattening Chosen's fields
// with an added "values" array per the stable value schema.
func (tv TimeValue) MarshalJSON() ([]byte, error) {
	m := tv.Chosen.jsonMap()
	values := make([]map[string]any, len(tv.Alternatives))
	for i, alt := range tv.Alternatives {
		values[i] = alt.jsonMap()
	}
	m["values"] = values
	return json.Marshal(m)
}
