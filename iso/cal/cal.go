// Package cal provides the calendar value used throughout isotime and the
// conversions between it and epoch seconds.
//
// Calendar arithmetic is proleptic Gregorian with no leap seconds. Years
// use the encoding 1 - BCYear, so year 0000 is 1 BC and year -0001 is 2 BC.
// This is the same as astronomical year numbering and is never adjusted.
package cal

import (
	"errors"
	"strconv"
	"time"
)

// ErrRange wraps errors for non-finite or otherwise unusable numeric input.
var ErrRange = errors.New("range")

// Zone selects how a Value maps to an instant.
type Zone uint8

const (
	// Zulu is UTC with no daylight saving adjustment.
	Zulu Zone = iota

	// Local defers to the host time zone database, including daylight
	// saving time.
	Local
)

// String returns "Zulu" or "Local".
func (z Zone) String() string {
	if z == Local {
		return "Local"
	}
	return "Zulu"
}

// Location returns the time.Location for z.
func (z Zone) Location() *time.Location {
	if z == Local {
		return time.Local
	}
	return zulu
}

// Field identifies one of the seven fields of a Value.
type Field uint8

const (
	Year Field = iota
	Month
	Day
	Hour
	Minute
	Second
	Millisecond
)

//nolint:gochecknoglobals
var fieldNames = [...]string{
	Year:        "year",
	Month:       "month",
	Day:         "day",
	Hour:        "hour",
	Minute:      "minute",
	Second:      "second",
	Millisecond: "millisecond",
}

// String returns the lowercase name of f, or "unknown_field".
func (f Field) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return "unknown_field"
}

// Value is a calendar date and time in a Zone. Fields outside their usual
// ranges are allowed and roll into adjacent fields when the Value is
// normalized or converted to epoch seconds, so day 32 of January is
// February 1.
type Value struct {
	Year        int
	Month       int // 1-12
	Day         int // 1-31
	Hour        int // 0-23
	Minute      int
	Second      int
	Millisecond int
	Zone        Zone
}

// Date returns a Value for the start of the day year-month-day in zone.
func Date(year, month, day int, zone Zone) Value {
	return Value{Year: year, Month: month, Day: day, Zone: zone}
}

// ProlepticYear returns the year of v, negative for years before 1 BC.
// Year 0 is 1 BC.
func (v Value) ProlepticYear() int { return v.Year }

// BCYear returns the year before Christ for v and true, or 0 and false if
// v is AD.
func (v Value) BCYear() (int, bool) {
	if v.Year > 0 {
		return 0, false
	}
	return 1 - v.Year, true
}

// Weekday returns the day of the week of v, normalized first.
func (v Value) Weekday() time.Weekday {
	n := v.Normalize()
	return weekdayOf(daysFromCivil(int64(n.Year), int64(n.Month), int64(n.Day)))
}

// DayOfYear returns the 1-based ordinal day of v, normalized first.
func (v Value) DayOfYear() int {
	n := v.Normalize()
	return DayOfYear(n.Year, n.Month, n.Day)
}

// String returns v as [-]YYYY-MM-DDThh:mm:ss.mmm using only its field
// values.
func (v Value) String() string {
	b := make([]byte, 0, len("-0000-00-00T00:00:00.000"))
	b = AppendYear(b, v.Year)
	b = append(b, '-')
	b = AppendPadded(b, v.Month, 2)
	b = append(b, '-')
	b = AppendPadded(b, v.Day, 2)
	b = append(b, 'T')
	b = AppendPadded(b, v.Hour, 2)
	b = append(b, ':')
	b = AppendPadded(b, v.Minute, 2)
	b = append(b, ':')
	b = AppendPadded(b, v.Second, 2)
	b = append(b, '.')
	return string(AppendPadded(b, v.Millisecond, 3))
}

// AppendYear appends year to b with a leading "-" for negative years and
// the magnitude zero-padded to at least four digits.
func AppendYear(b []byte, year int) []byte {
	if year < 0 {
		b = append(b, '-')
		year = -year
	}
	return AppendPadded(b, year, 4)
}

// AppendPadded appends n to b, zero-padded to at least width digits.
// Negative values are written with a leading "-" before the padding.
func AppendPadded(b []byte, n, width int) []byte {
	if n < 0 {
		b = append(b, '-')
		n = -n
	}
	var digits [20]byte
	s := strconv.AppendInt(digits[:0], int64(n), 10)
	for i := len(s); i < width; i++ {
		b = append(b, '0')
	}
	return append(b, s...)
}
