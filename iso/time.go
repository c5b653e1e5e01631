package iso

import (
	"fmt"

	"github.com/theory/isotime/iso/cal"
	"github.com/theory/isotime/iso/format"
)

// Time is a calendar date and time with millisecond precision.
type Time struct {
	// Value holds the normalized calendar fields.
	cal.Value
}

// layout returns the canonical layout for t: ISOT3Z for Zulu times and
// ISOT3 for local times.
func (t Time) layout() format.Layout {
	if t.Zone == cal.Local {
		return format.ISOT3
	}
	return format.ISOT3Z
}

// String returns t in the format "2006-01-02T15:04:05.000Z", omitting the
// "Z" for local times.
func (t Time) String() string {
	return t.layout().Format(t.Value)
}

// Format returns t in layout l, showing the wall time of its zone.
func (t Time) Format(l format.Layout) string {
	return l.Format(t.Value)
}

// Compare compares the instant t with u. If t is before u, it returns -1;
// if t is after u, it returns +1; if they're the same, it returns 0.
func (t Time) Compare(u Time) int {
	a, b := t.EpochMillis(), u.EpochMillis()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// MarshalJSON implements the json.Marshaler interface. The time is a quoted
// string in the format returned by String.
func (t Time) MarshalJSON() ([]byte, error) {
	const timeJSONSize = len(`"-0000-00-00T00:00:00.000Z"`)
	b := make([]byte, 0, timeJSONSize)
	b = append(b, '"')
	b = append(b, t.String()...)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The time must be a
// quoted ISO 8601 string. Strings ending in "Z" are parsed as Zulu time and
// all others as local time.
func (t *Time) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("%w: cannot parse %s as a quoted ISO 8601 string", ErrFormat, data)
	}
	str := string(data[1 : len(data)-1])

	zone := cal.Local
	if n := len(str); n > 0 && str[n-1] == 'Z' {
		zone = cal.Zulu
	}
	parsed, err := ParseIn(str, zone)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
