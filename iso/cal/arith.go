package cal

import "time"

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour

	// SecondsPerDay is the number of seconds in a day (no leap seconds).
	SecondsPerDay = 24 * 60 * 60
)

//nolint:gochecknoglobals
var daysPerMonth = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a proleptic Gregorian leap year:
// divisible by 4, except centuries unless divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month of year. month must be
// 1-12.
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysPerMonth[month-1]
}

// DayOfYear returns the 1-based ordinal day of a valid year-month-day.
func DayOfYear(year, month, day int) int {
	y := int64(year)
	return int(daysFromCivil(y, int64(month), int64(day)) - daysFromCivil(y, 1, 1) + 1)
}

// floorDiv returns a/b rounded toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// daysFromCivil returns the number of days from 1970-01-01 to y-m-d, where
// m is 1-12 and d may be any value.
func daysFromCivil(y, m, d int64) int64 {
	if m <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400          // [0, 399]
	mp := (m + 9) % 12          // March is 0
	doy := (153*mp+2)/5 + d - 1 // [0, 365] for valid d
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// civilFromDays is the inverse of daysFromCivil.
func civilFromDays(z int64) (y, m, d int64) {
	z += 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y = yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d = doy - (153*mp+2)/5 + 1
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return y, m, d
}

// weekdayOf returns the weekday of the day days after 1970-01-01, a
// Thursday.
func weekdayOf(days int64) time.Weekday {
	w := (days + 4) % 7
	if w < 0 {
		w += 7
	}
	return time.Weekday(w)
}

// zuluMillis returns the milliseconds since the epoch for the fields of v
// read as Zulu time, rolling out-of-range fields.
func (v Value) zuluMillis() int64 {
	months := int64(v.Year)*12 + int64(v.Month) - 1
	y := floorDiv(months, 12)
	days := daysFromCivil(y, months-y*12+1, 1) + int64(v.Day) - 1
	return days*msPerDay +
		int64(v.Hour)*msPerHour +
		int64(v.Minute)*msPerMinute +
		int64(v.Second)*msPerSecond +
		int64(v.Millisecond)
}

// fromZuluMillis decomposes ms since the epoch into Zulu fields.
func fromZuluMillis(ms int64) Value {
	days := floorDiv(ms, msPerDay)
	rem := ms - days*msPerDay
	y, m, d := civilFromDays(days)
	return Value{
		Year:        int(y),
		Month:       int(m),
		Day:         int(d),
		Hour:        int(rem / msPerHour),
		Minute:      int(rem % msPerHour / msPerMinute),
		Second:      int(rem % msPerMinute / msPerSecond),
		Millisecond: int(rem % msPerSecond),
		Zone:        Zulu,
	}
}

// Normalize returns v with every field rolled into its usual range. Zulu
// values use the proleptic Gregorian tables in this package; Local values
// are resolved by the host time zone database, so a wall time skipped by a
// daylight saving transition moves forward.
func (v Value) Normalize() Value {
	if v.Zone == Local {
		return FromTime(v.Time(), Local)
	}
	return fromZuluMillis(v.zuluMillis())
}

// Add returns v with n added to field. Smaller fields carry into larger
// ones, so adding 1 day to January 31 yields February 1. Adding months or
// years keeps the day of the month, clamped to the length of the resulting
// month, so adding 1 month to 2024-01-31 yields 2024-02-29.
func (v Value) Add(field Field, n int) Value {
	v = v.Normalize()
	switch field {
	case Year:
		v.Year += n
		v.Day = min(v.Day, DaysInMonth(v.Year, v.Month))
	case Month:
		total := int64(v.Year)*12 + int64(v.Month) - 1 + int64(n)
		y := floorDiv(total, 12)
		v.Year = int(y)
		v.Month = int(total-y*12) + 1
		v.Day = min(v.Day, DaysInMonth(v.Year, v.Month))
	case Day:
		v.Day += n
	case Hour:
		v.Hour += n
	case Minute:
		v.Minute += n
	case Second:
		v.Second += n
	case Millisecond:
		v.Millisecond += n
	}
	return v.Normalize()
}

// ClearSmallerFields returns v, normalized, with the fields smaller than
// field reset to their minimums. Clearing below Hour resets the minute,
// second, and millisecond; clearing below Month also sets the day to 1.
func (v Value) ClearSmallerFields(field Field) Value {
	v = v.Normalize()
	switch field {
	case Year:
		v.Month = 1
		fallthrough
	case Month:
		v.Day = 1
		fallthrough
	case Day:
		v.Hour = 0
		fallthrough
	case Hour:
		v.Minute = 0
		fallthrough
	case Minute:
		v.Second = 0
		fallthrough
	case Second:
		v.Millisecond = 0
	case Millisecond:
	}
	return v.Normalize()
}

// CenterOfMonth returns the exact middle of the month containing v.
func (v Value) CenterOfMonth() Value {
	v = v.Normalize()
	n := DaysInMonth(v.Year, v.Month)
	v.Day = 1 + n/2
	v.Hour = 0
	if n%2 == 1 {
		v.Hour = 12
	}
	v.Minute, v.Second, v.Millisecond = 0, 0, 0
	return v.Normalize()
}

// FromDayOfYear returns the start of the ordinal day doy of year. doy is
// lenient: day 0 is December 31 of the previous year.
func FromDayOfYear(year, doy int, zone Zone) Value {
	return Value{Year: year, Month: 1, Day: doy, Zone: zone}.Normalize()
}
