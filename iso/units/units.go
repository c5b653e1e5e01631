// Package units converts between epoch seconds and numeric time values
// measured in "units since" a base time, such as "days since 1985-01-01".
//
// Factors below a month are linear. Months and years have no fixed length,
// so the month factor (30 days) and year factor (360 days) are sentinels
// that select calendar-aware arithmetic instead.
package units

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/smasher164/xid"
	"github.com/theory/isotime/iso/cal"
	"github.com/theory/isotime/iso/parser"
	"golang.org/x/exp/maps"
)

var (
	// ErrUnit wraps errors for unknown units and units strings.
	ErrUnit = errors.New("unit")

	// ErrQuery wraps errors for invalid relative "now" queries.
	ErrQuery = errors.New("query")
)

const (
	// MonthFactor is the sentinel factor for months.
	MonthFactor = 30 * cal.SecondsPerDay

	// YearFactor is the sentinel factor for years.
	YearFactor = 360 * cal.SecondsPerDay
)

//nolint:gochecknoglobals
var factors = map[string]float64{
	"ms": 0.001, "msec": 0.001, "msecs": 0.001, "millis": 0.001,
	"millisec": 0.001, "millisecs": 0.001, "millisecond": 0.001, "milliseconds": 0.001,

	"s": 1, "sec": 1, "secs": 1, "second": 1, "seconds": 1,

	"m": 60, "min": 60, "mins": 60, "minute": 60, "minutes": 60,

	"h": 3600, "hr": 3600, "hrs": 3600, "hour": 3600, "hours": 3600,

	"d": cal.SecondsPerDay, "day": cal.SecondsPerDay, "days": cal.SecondsPerDay,

	"week": 7 * cal.SecondsPerDay, "weeks": 7 * cal.SecondsPerDay,

	"mon": MonthFactor, "mons": MonthFactor, "month": MonthFactor, "months": MonthFactor,

	"yr": YearFactor, "yrs": YearFactor, "year": YearFactor, "years": YearFactor,
}

// FactorToSeconds returns the number of seconds in unit, a case-insensitive
// unit name such as "ms", "hours", or "days". Months and years return
// MonthFactor and YearFactor.
func FactorToSeconds(unit string) (float64, error) {
	word, rest := lexWord(strings.ToLower(strings.TrimSpace(unit)))
	switch {
	case word == "":
		return 0, fmt.Errorf("%w: %q is invalid: expected a unit name", ErrUnit, unit)
	case rest != "":
		return 0, fmt.Errorf("%w: %q is invalid: unexpected %q after %q", ErrUnit, unit, rest, word)
	}
	if f, ok := factors[word]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q is invalid", ErrUnit, unit)
}

// Units returns the unit names accepted by FactorToSeconds, sorted.
func Units() []string {
	names := maps.Keys(factors)
	slices.Sort(names)
	return names
}

// lexWord splits s into a leading Unicode identifier (UAX #31) and the
// text that follows it. word is empty if s does not start with an
// identifier.
func lexWord(s string) (word, rest string) {
	for i, r := range s {
		if r == utf8.RuneError || (i == 0 && !xid.Start(r)) || (i > 0 && !xid.Continue(r)) {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

// Spec is a parsed units string: the epoch seconds of the base time and the
// number of seconds per unit.
type Spec struct {
	Base   float64
	Factor float64
}

// ParseSpec parses a units string of the form "<units> since <iso time>",
// for example "days since 1985-01-01". " since " is matched without regard
// to case and must follow a unit. The base time is parsed with
// parser.ParseZulu.
func ParseSpec(text string) (Spec, error) {
	idx := strings.Index(strings.ToLower(text), " since ")
	if idx <= 0 {
		return Spec{}, fmt.Errorf("%w: units string %q does not contain \" since \"", ErrUnit, text)
	}
	factor, err := FactorToSeconds(text[:idx])
	if err != nil {
		return Spec{}, err
	}
	base, err := parser.ParseZulu(text[idx+len(" since "):])
	if err != nil {
		return Spec{}, err
	}
	return Spec{Base: base.EpochSeconds(), Factor: factor}, nil
}

// ToEpochSeconds converts value in units of s to epoch seconds.
func (s Spec) ToEpochSeconds(value float64) (float64, error) {
	return ToEpochSeconds(s.Base, s.Factor, value)
}

// FromEpochSeconds converts epoch seconds to units of s.
func (s Spec) FromEpochSeconds(epoch float64) (float64, error) {
	return FromEpochSeconds(s.Base, s.Factor, epoch)
}

// ToEpochSeconds converts value units of factor seconds since base epoch
// seconds to epoch seconds. Factors below MonthFactor are linear. For
// MonthFactor and YearFactor the whole part of value is added to the base
// as calendar months or years, then the fraction as round(frac*30) days or
// round(frac*12) months. A NaN or very large value returns NaN. Returns
// ErrUnit for other factors of a month or more.
func ToEpochSeconds(base, factor, value float64) (float64, error) {
	if factor < MonthFactor {
		return base + value*factor, nil
	}

	field, err := calendarField(factor)
	if err != nil {
		return 0, err
	}
	whole := math.Floor(value)
	if math.IsNaN(whole) || math.Abs(whole) >= math.MaxInt32 {
		return math.NaN(), nil
	}

	v, err := cal.FromEpochSeconds(base, cal.Zulu)
	if err != nil {
		return 0, err
	}
	n := int(whole)
	v = v.Add(field, n)
	if frac := value - whole; frac != 0 {
		if field == cal.Month {
			v = v.Add(cal.Day, roundInt(frac*30))
		} else {
			v = v.Add(cal.Month, roundInt(frac*12))
		}
	}
	return v.EpochSeconds(), nil
}

// FromEpochSeconds converts epoch seconds to units of factor seconds since
// base epoch seconds. For MonthFactor and YearFactor it returns only the
// whole number of calendar months or years between the two, so it is not
// an exact inverse of ToEpochSeconds for fractional values. A non-finite
// epoch returns NaN.
func FromEpochSeconds(base, factor, epoch float64) (float64, error) {
	if factor < MonthFactor {
		return (epoch - base) / factor, nil
	}

	field, err := calendarField(factor)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(epoch) || math.IsInf(epoch, 0) {
		return math.NaN(), nil
	}

	e, err := cal.FromEpochSeconds(epoch, cal.Zulu)
	if err != nil {
		return 0, err
	}
	b, err := cal.FromEpochSeconds(base, cal.Zulu)
	if err != nil {
		return 0, err
	}
	if field == cal.Month {
		return float64((e.Year*12 + e.Month) - (b.Year*12 + b.Month)), nil
	}
	return float64(e.Year - b.Year), nil
}

func calendarField(factor float64) (cal.Field, error) {
	switch factor {
	case MonthFactor:
		return cal.Month, nil
	case YearFactor:
		return cal.Year, nil
	default:
		return 0, fmt.Errorf("%w: unexpected calendar factor %v", ErrUnit, factor)
	}
}

func roundInt(f float64) int { return int(math.Floor(f + 0.5)) }
