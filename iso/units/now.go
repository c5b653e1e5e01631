package units

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theory/isotime/iso/cal"
)

//nolint:gochecknoglobals
var nowUnits = map[string]cal.Field{
	"second":  cal.Second,
	"seconds": cal.Second,
	"minute":  cal.Minute,
	"minutes": cal.Minute,
	"hour":    cal.Hour,
	"hours":   cal.Hour,
	"day":     cal.Day,
	"days":    cal.Day,
	"month":   cal.Month,
	"months":  cal.Month,
	"year":    cal.Year,
	"years":   cal.Year,
}

// ParseNow evaluates a relative time query of the form
//
//	now[(+|-| )N(seconds|minutes|hours|days|months|years)]
//
// relative to now, returning epoch seconds. The singular unit names are
// also accepted, and a space stands in for '+', as it does when a '+' is
// decoded from a URL query. The result starts from the next whole second
// after now, so "now" is never earlier than the current time. Months and
// years are added as calendar units. Returns ErrQuery for malformed
// queries.
func ParseNow(s string, now time.Time) (float64, error) {
	rest, ok := strings.CutPrefix(s, "now")
	if !ok {
		return 0, nowError(s, "expected \"now\"")
	}

	v := cal.FromTime(now, cal.Zulu).Add(cal.Second, 1)
	v.Millisecond = 0
	if rest == "" {
		return v.EpochSeconds(), nil
	}

	var start int
	switch rest[0] {
	case '+', ' ':
		start = 1
	case '-':
		start = 0
	default:
		return 0, nowError(s, fmt.Sprintf("unexpected %q after \"now\"", rest[:1]))
	}

	end := 1
	for end < len(rest) && '0' <= rest[end] && rest[end] <= '9' {
		end++
	}
	n, err := strconv.ParseInt(rest[start:end], 10, 32)
	if err != nil {
		return 0, nowError(s, fmt.Sprintf("bad count %q", rest[start:end]))
	}

	unit, trailing := lexWord(rest[end:])
	switch {
	case unit == "":
		return 0, nowError(s, fmt.Sprintf("expected a unit at %q", rest[end:]))
	case trailing != "":
		return 0, nowError(s, fmt.Sprintf("unexpected %q after %q", trailing, unit))
	}
	field, ok := nowUnits[unit]
	if !ok {
		return 0, nowError(s, fmt.Sprintf("unknown unit %q", unit))
	}
	return v.Add(field, int(n)).EpochSeconds(), nil
}

// nowError returns an ErrQuery error for query s, with detail naming the
// offending token.
func nowError(s, detail string) error {
	return fmt.Errorf(
		"%w: timestamp constraints with \"now\" must be in the form "+
			"\"now(+|-)[positiveInteger](seconds|minutes|hours|days|months|years)\"; %q is invalid: %s",
		ErrQuery, s, detail,
	)
}
