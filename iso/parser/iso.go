package parser

import (
	"strings"

	"github.com/theory/isotime/iso/cal"
)

// ISO fields, in order.
const (
	isoYear = iota
	isoMonth
	isoDay
	isoHour
	isoMinute
	isoSecond
	isoMilli
	isoTZHour
	isoTZMinute
)

//nolint:gochecknoglobals
var isoSeps = []separator{
	lit('-'), lit('-'), anySep, lit(':'), lit(':'), lit('.'), signSep, lit(':'), anySep,
}

//nolint:gochecknoglobals
var isoDefaults = []int{0, 1, 1, 0, 0, 0, 0, 0, 0}

// Parse parses an ISO 8601-like date time string in zone:
//
//	[-]YYYY[-MM[-DD[Thh[:mm[:ss[.fff]]]]]][(+|-)hh[:mm]][Z|UTC|GMT]
//
// Only the year is required; omitted fields default to the start of the
// period. Field widths are not enforced, so "1970-1-2" is valid. The 'T'
// may be any non-digit, a ',' may stand in for the '.', and the fraction
// may have any number of digits. A leading '-' denotes a year before 1 AD
// encoded as 1 - BCYear, so "-0001" is 2 BC. A time zone offset is
// subtracted from the time; offsets and trailing zone names are otherwise
// relative to zone. Out-of-range fields roll over, so "2001-01-32" is
// February 1. Text following the offset is ignored.
//
// Returns a *FieldError wrapping ErrFormat if text does not start with a
// year or a separator doesn't match, and an error wrapping cal.ErrRange if
// the date time lies beyond cal.MaxEpochSeconds.
func Parse(text string, zone cal.Zone) (cal.Value, error) {
	s := text
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	if s == "" || !isDigit(s[0]) {
		return cal.Value{}, &FieldError{Input: text, Pos: len(text) - len(s)}
	}

	s = trimZoneName(strings.TrimSpace(s))
	// A space before an offset stands in for '+'.
	s = strings.ReplaceAll(s, " ", "+")

	fs, err := scanFields(s, isoSeps, isoDefaults)
	if err != nil {
		return cal.Value{}, err
	}

	v := fs.vals
	if negative {
		v[isoYear] = -v[isoYear]
	}

	// Apply the offset, keeping the sign of "-00:30".
	v[isoHour] -= v[isoTZHour]
	if fs.neg[isoTZHour] {
		v[isoMinute] += v[isoTZMinute]
	} else {
		v[isoMinute] -= v[isoTZMinute]
	}

	val := cal.Value{
		Year:        v[isoYear],
		Month:       v[isoMonth],
		Day:         v[isoDay],
		Hour:        v[isoHour],
		Minute:      v[isoMinute],
		Second:      v[isoSecond],
		Millisecond: v[isoMilli],
		Zone:        zone,
	}
	if err := val.CheckRange(); err != nil {
		//nolint:wrapcheck // Already wraps cal.ErrRange
		return cal.Value{}, err
	}
	return val.Normalize(), nil
}

// ParseZulu parses text like Parse in the Zulu zone.
func ParseZulu(text string) (cal.Value, error) {
	return Parse(text, cal.Zulu)
}

// trimZoneName strips a trailing "Z", then a trailing "UTC" or "GMT",
// ignoring case and surrounding space.
func trimZoneName(s string) string {
	if n := len(s); n > 0 && (s[n-1] == 'Z' || s[n-1] == 'z') {
		s = strings.TrimSpace(s[:n-1])
	}
	if n := len(s); n >= 3 {
		if last := s[n-3:]; strings.EqualFold(last, "utc") || strings.EqualFold(last, "gmt") {
			s = strings.TrimSpace(s[:n-3])
		}
	}
	return s
}

// ProbablyISODateTime reports whether s starts with [-]DDDD-D, the minimum
// prefix of an ISO date time. The rest of s is not examined.
func ProbablyISODateTime(s string) bool {
	return hasISOPrefix(s, 1)
}

// IsISODate reports whether s starts with [-]DDDD-DD. The rest of s is not
// examined.
func IsISODate(s string) bool {
	return hasISOPrefix(s, 2)
}

func hasISOPrefix(s string, monthDigits int) bool {
	s = strings.TrimPrefix(s, "-")
	if len(s) < 5+monthDigits {
		return false
	}
	for i := range 4 {
		if !isDigit(s[i]) {
			return false
		}
	}
	if s[4] != '-' {
		return false
	}
	for i := range monthDigits {
		if !isDigit(s[5+i]) {
			return false
		}
	}
	return true
}
