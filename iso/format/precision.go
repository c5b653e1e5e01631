package format

import (
	"strings"

	"github.com/theory/isotime/iso/cal"
)

// Level is the number of ISO 8601 fields written by Limited.
type Level uint8

const (
	PrecYear Level = iota
	PrecMonth
	PrecDay
	PrecHour
	PrecMinute
	PrecSecond
	PrecTenth
	PrecHundredth
	PrecMilli
)

//nolint:gochecknoglobals
var precisionExemplars = [...]string{
	PrecYear:      "1970",
	PrecMonth:     "1970-01",
	PrecDay:       "1970-01-01",
	PrecHour:      "1970-01-01T00",
	PrecMinute:    "1970-01-01T00:00",
	PrecSecond:    "1970-01-01T00:00:00",
	PrecTenth:     "1970-01-01T00:00:00.0",
	PrecHundredth: "1970-01-01T00:00:00.00",
	PrecMilli:     "1970-01-01T00:00:00.000",
}

// Precision selects how much of a date time Limited writes and whether a
// trailing "Z" follows a time.
type Precision struct {
	Level Level
	Zulu  bool
}

// DefaultPrecision writes whole seconds followed by "Z".
//
//nolint:gochecknoglobals
var DefaultPrecision = Precision{Level: PrecSecond, Zulu: true}

// ParsePrecision parses a precision written as an example date time, such
// as "1970-01-01T00:00Z" for minutes with a trailing "Z" or "1970-01" for
// months. The digits must match the exemplar exactly. An empty string,
// "Z", and any unrecognized string select DefaultPrecision.
func ParsePrecision(s string) Precision {
	p, _ := LookupPrecision(s)
	return p
}

// LookupPrecision is like ParsePrecision but also reports whether s is a
// recognized precision: an exemplar with or without a trailing "Z", "Z"
// alone, or the empty string. The latter two select DefaultPrecision.
func LookupPrecision(s string) (Precision, bool) {
	trimmed, zulu := strings.CutSuffix(s, "Z")
	if trimmed == "" {
		return DefaultPrecision, true
	}
	for i, ex := range precisionExemplars {
		if trimmed == ex {
			return Precision{Level: Level(i), Zulu: zulu}, true
		}
	}
	return DefaultPrecision, false
}

// String returns the exemplar for p, parseable by ParsePrecision.
func (p Precision) String() string {
	s := "1970-01-01T00:00:00"
	if int(p.Level) < len(precisionExemplars) {
		s = precisionExemplars[p.Level]
	}
	if p.Zulu {
		s += "Z"
	}
	return s
}

// Limited formats v as an ISO 8601 date time truncated to p.Level. The "Z"
// is only written for levels of an hour or finer. Sub-second levels
// truncate the milliseconds rather than rounding.
func Limited(p Precision, v cal.Value) string {
	b := make([]byte, 0, len("-0000-00-00T00:00:00.000Z"))
	b = cal.AppendYear(b, v.Year)
	if p.Level == PrecYear {
		return string(b)
	}
	b = append(b, '-')
	b = cal.AppendPadded(b, v.Month, 2)
	if p.Level == PrecMonth {
		return string(b)
	}
	b = append(b, '-')
	b = cal.AppendPadded(b, v.Day, 2)
	if p.Level == PrecDay {
		return string(b)
	}

	b = append(b, 'T')
	b = cal.AppendPadded(b, v.Hour, 2)
	if p.Level > PrecHour {
		b = append(b, ':')
		b = cal.AppendPadded(b, v.Minute, 2)
	}
	if p.Level > PrecMinute {
		b = append(b, ':')
		b = cal.AppendPadded(b, v.Second, 2)
	}
	if p.Level > PrecSecond {
		b = append(b, '.')
		ms := cal.AppendPadded(nil, v.Millisecond, 3)
		b = append(b, ms[:min(len(ms), int(p.Level-PrecSecond))]...)
	}
	if p.Zulu {
		b = append(b, 'Z')
	}
	return string(b)
}
