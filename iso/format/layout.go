// Package format renders calendar values as strings in a fixed set of
// layouts. Formatters read only the fields of a cal.Value and never consult
// a time zone, so a Local value formats as its wall clock time.
package format

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/theory/isotime/iso/cal"
	"golang.org/x/exp/maps"
)

// ErrLayout wraps errors for unknown layout names.
var ErrLayout = errors.New("layout")

// Layout identifies a date time string layout.
type Layout uint8

const (
	// ISOT formats as [-]YYYY-MM-DDThh:mm:ss.
	ISOT Layout = iota

	// ISOT3 formats as [-]YYYY-MM-DDThh:mm:ss.mmm.
	ISOT3

	// ISOTZ formats as [-]YYYY-MM-DDThh:mm:ssZ.
	ISOTZ

	// ISOT3Z formats as [-]YYYY-MM-DDThh:mm:ss.mmmZ.
	ISOT3Z

	// ISOSpace formats as [-]YYYY-MM-DD hh:mm:ss.
	ISOSpace

	// ISODate formats as [-]YYYY-MM-DD.
	ISODate

	// Compact formats as [-]YYYYMMDDhhmmss.
	Compact

	// YYYYDDD formats as [-]YYYYDDD, where DDD is the day of the year.
	YYYYDDD

	// YYYYMM formats as [-]YYYYMM.
	YYYYMM

	// DDMonYYYY formats as DD-Mon-[-]YYYY hh:mm:ss.
	DDMonYYYY

	// USSlashAmPm formats as M/D/[-]YYYY h:mm:ss am|pm.
	USSlashAmPm

	// USSlash24 formats as M/D/[-]YYYY hh:mm:ss.
	USSlash24

	// RFC822GMT formats as Www, DD Mon [-]YYYY hh:mm:ss GMT.
	RFC822GMT

	// Esri formats as [-]YYYY/MM/DD hh:mm:ss UTC.
	Esri
)

//nolint:gochecknoglobals
var layoutNames = map[string]Layout{
	"isot":        ISOT,
	"isot3":       ISOT3,
	"isotz":       ISOTZ,
	"isot3z":      ISOT3Z,
	"isospace":    ISOSpace,
	"isodate":     ISODate,
	"compact":     Compact,
	"yyyyddd":     YYYYDDD,
	"yyyymm":      YYYYMM,
	"ddmonyyyy":   DDMonYYYY,
	"usslashampm": USSlashAmPm,
	"usslash24":   USSlash24,
	"rfc822gmt":   RFC822GMT,
	"esri":        Esri,
}

// ParseLayout returns the Layout for a case-insensitive layout name such
// as "isot3" or "rfc822gmt".
func ParseLayout(name string) (Layout, error) {
	if l, ok := layoutNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return l, nil
	}
	return 0, fmt.Errorf("%w: unknown layout %q", ErrLayout, name)
}

// LayoutNames returns the names accepted by ParseLayout, sorted.
func LayoutNames() []string {
	names := maps.Keys(layoutNames)
	slices.Sort(names)
	return names
}

// String returns the name of l.
func (l Layout) String() string {
	for name, layout := range layoutNames {
		if layout == l {
			return name
		}
	}
	return "layout(" + strconv.Itoa(int(l)) + ")"
}

// Format formats v in layout l. Unknown layouts format as ISOT.
func (l Layout) Format(v cal.Value) string {
	b := make([]byte, 0, 32)
	switch l {
	case ISOT, ISOTZ, ISOT3, ISOT3Z:
		b = appendDate(b, v, '-')
		b = append(b, 'T')
		b = appendClock(b, v)
		if l == ISOT3 || l == ISOT3Z {
			b = append(b, '.')
			b = cal.AppendPadded(b, v.Millisecond, 3)
		}
		if l == ISOTZ || l == ISOT3Z {
			b = append(b, 'Z')
		}
	case ISOSpace:
		b = appendDate(b, v, '-')
		b = append(b, ' ')
		b = appendClock(b, v)
	case ISODate:
		b = appendDate(b, v, '-')
	case Compact:
		b = cal.AppendYear(b, v.Year)
		b = cal.AppendPadded(b, v.Month, 2)
		b = cal.AppendPadded(b, v.Day, 2)
		b = cal.AppendPadded(b, v.Hour, 2)
		b = cal.AppendPadded(b, v.Minute, 2)
		b = cal.AppendPadded(b, v.Second, 2)
	case YYYYDDD:
		b = cal.AppendYear(b, v.Year)
		b = cal.AppendPadded(b, v.DayOfYear(), 3)
	case YYYYMM:
		b = cal.AppendYear(b, v.Year)
		b = cal.AppendPadded(b, v.Month, 2)
	case DDMonYYYY:
		b = cal.AppendPadded(b, v.Day, 2)
		b = append(b, '-')
		b = append(b, cal.MonthName3(v.Month)...)
		b = append(b, '-')
		b = cal.AppendYear(b, v.Year)
		b = append(b, ' ')
		b = appendClock(b, v)
	case USSlashAmPm, USSlash24:
		b = strconv.AppendInt(b, int64(v.Month), 10)
		b = append(b, '/')
		b = strconv.AppendInt(b, int64(v.Day), 10)
		b = append(b, '/')
		b = cal.AppendYear(b, v.Year)
		b = append(b, ' ')
		if l == USSlash24 {
			b = appendClock(b, v)
			break
		}
		hour := v.Hour % 12
		if hour == 0 {
			hour = 12
		}
		b = strconv.AppendInt(b, int64(hour), 10)
		b = append(b, ':')
		b = cal.AppendPadded(b, v.Minute, 2)
		b = append(b, ':')
		b = cal.AppendPadded(b, v.Second, 2)
		if v.Hour < 12 {
			b = append(b, " am"...)
		} else {
			b = append(b, " pm"...)
		}
	case RFC822GMT:
		b = append(b, cal.WeekdayName3(v.Weekday())...)
		b = append(b, ", "...)
		b = cal.AppendPadded(b, v.Day, 2)
		b = append(b, ' ')
		b = append(b, cal.MonthName3(v.Month)...)
		b = append(b, ' ')
		b = cal.AppendYear(b, v.Year)
		b = append(b, ' ')
		b = appendClock(b, v)
		b = append(b, " GMT"...)
	case Esri:
		b = appendDate(b, v, '/')
		b = append(b, ' ')
		b = appendClock(b, v)
		b = append(b, " UTC"...)
	default:
		return ISOT.Format(v)
	}
	return string(b)
}

// appendDate appends the year, month, and day of v joined by sep.
func appendDate(b []byte, v cal.Value, sep byte) []byte {
	b = cal.AppendYear(b, v.Year)
	b = append(b, sep)
	b = cal.AppendPadded(b, v.Month, 2)
	b = append(b, sep)
	return cal.AppendPadded(b, v.Day, 2)
}

// appendClock appends hh:mm:ss.
func appendClock(b []byte, v cal.Value) []byte {
	b = cal.AppendPadded(b, v.Hour, 2)
	b = append(b, ':')
	b = cal.AppendPadded(b, v.Minute, 2)
	b = append(b, ':')
	return cal.AppendPadded(b, v.Second, 2)
}
