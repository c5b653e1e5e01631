package parser

import (
	"strconv"
	"strings"

	"github.com/theory/isotime/iso/cal"
)

//nolint:gochecknoglobals
var (
	usSlashSeps     = []separator{lit('/'), lit('/'), lit(' '), lit(':'), lit(':'), anySep}
	usSlashDefaults = []int{0, 0, 0, 0, 0, 0}
)

// ParseUSSlash24 parses a US slash date with an optional 24-hour time,
// "M/D/YYYY" or "M/D/YYYY hh:mm:ss", in zone. Month, day, and year are
// required. Years 0-49 are read as 2000-2049 and years 50-99 as 1950-1999.
// Out-of-range fields roll over. Returns an error wrapping cal.ErrRange for
// years beyond cal.MaxEpochSeconds.
func ParseUSSlash24(text string, zone cal.Zone) (cal.Value, error) {
	s := strings.TrimSpace(text)
	if s == "" || !(isDigit(s[0]) || s[0] == '-') {
		return cal.Value{}, &FieldError{Input: text}
	}
	fs, err := scanFields(s, usSlashSeps, usSlashDefaults)
	if err != nil {
		return cal.Value{}, err
	}
	if fs.present < 3 {
		return cal.Value{}, &FieldError{Input: s, Pos: len(s)}
	}

	v := fs.vals
	switch year := v[2]; {
	case year >= 0 && year <= 49:
		v[2] += 2000
	case year >= 50 && year <= 99:
		v[2] += 1900
	}

	val := cal.Value{
		Year:   v[2],
		Month:  v[0],
		Day:    v[1],
		Hour:   v[3],
		Minute: v[4],
		Second: v[5],
		Zone:   zone,
	}
	if err := val.CheckRange(); err != nil {
		//nolint:wrapcheck // Already wraps cal.ErrRange
		return cal.Value{}, err
	}
	return val.Normalize(), nil
}

// ParseCompact parses a compact date time, [-]YYYYMMDD optionally followed
// by hh, hhmm, or hhmmss, in zone. Missing time fields are zero.
func ParseCompact(text string, zone cal.Zone) (cal.Value, error) {
	s, negative := strings.CutPrefix(text, "-")
	if len(s) < 8 || len(s) > 14 {
		return cal.Value{}, &FieldError{Input: text, Pos: len(text)}
	}
	if !allDigits(s) {
		return cal.Value{}, &FieldError{Input: text, Pos: firstNonDigit(text, len(text)-len(s))}
	}
	s += strings.Repeat("0", 14-len(s))

	year := atoi(s[0:4])
	if negative {
		year = -year
	}
	return cal.Value{
		Year:   year,
		Month:  atoi(s[4:6]),
		Day:    atoi(s[6:8]),
		Hour:   atoi(s[8:10]),
		Minute: atoi(s[10:12]),
		Second: atoi(s[12:14]),
		Zone:   zone,
	}.Normalize(), nil
}

// ParseDDMonYYYY parses "DD-Mon-YYYY" with an optional " hh:mm:ss" in zone,
// for example "31-Jul-2004 00:00:00". The month name is case-insensitive.
// A '-' before the year denotes a year before 1 AD, as in Parse.
func ParseDDMonYYYY(text string, zone cal.Zone) (cal.Value, error) {
	s := text
	negative := len(s) >= 8 && s[7] == '-'
	if negative {
		s = s[:7] + s[8:]
	}
	fail := func(pos int) (cal.Value, error) {
		return cal.Value{}, &FieldError{Input: s, Pos: pos}
	}

	if len(s) < 11 {
		return fail(len(s))
	}
	for _, check := range []struct {
		pos   int
		digit bool
		char  byte
	}{
		{0, true, 0}, {1, true, 0}, {2, false, '-'}, {6, false, '-'},
		{7, true, 0}, {8, true, 0}, {9, true, 0}, {10, true, 0},
	} {
		if (check.digit && !isDigit(s[check.pos])) || (!check.digit && s[check.pos] != check.char) {
			return fail(check.pos)
		}
	}

	month, ok := cal.MonthFromName3(s[3:6])
	if !ok {
		return fail(3)
	}

	var hour, minute, second int
	if len(s) >= 20 {
		if s[11] != ' ' {
			return fail(11)
		}
		if s[14] != ':' || s[17] != ':' {
			return fail(14)
		}
		for _, r := range [][2]int{{12, 14}, {15, 17}, {18, 20}} {
			if !allDigits(s[r[0]:r[1]]) {
				return fail(r[0])
			}
		}
		hour, minute, second = atoi(s[12:14]), atoi(s[15:17]), atoi(s[18:20])
	}

	year := atoi(s[7:11])
	if negative {
		year = -year
	}
	return cal.Value{
		Year:   year,
		Month:  month,
		Day:    atoi(s[0:2]),
		Hour:   hour,
		Minute: minute,
		Second: second,
		Zone:   zone,
	}.Normalize(), nil
}

// ParseYYYYDDD parses [-]YYYYDDD, a year and a three-digit ordinal day, in
// zone. The day is lenient: day 000 is December 31 of the previous year.
func ParseYYYYDDD(text string, zone cal.Zone) (cal.Value, error) {
	s, negative := strings.CutPrefix(text, "-")
	if len(s) != 7 {
		return cal.Value{}, &FieldError{Input: text, Pos: len(text)}
	}
	if !allDigits(s) {
		return cal.Value{}, &FieldError{Input: text, Pos: firstNonDigit(text, len(text)-len(s))}
	}
	year := atoi(s[:4])
	if negative {
		year = -year
	}
	return cal.FromDayOfYear(year, atoi(s[4:]), zone), nil
}

// YYYYDDDToISODate converts [-]YYYYDDD to the ISO date [-]YYYY-MM-DD.
func YYYYDDDToISODate(text string) (string, error) {
	v, err := ParseYYYYDDD(text, cal.Zulu)
	if err != nil {
		return "", err
	}
	b := cal.AppendYear(make([]byte, 0, 11), v.Year)
	b = append(b, '-')
	b = cal.AppendPadded(b, v.Month, 2)
	b = append(b, '-')
	return string(cal.AppendPadded(b, v.Day, 2)), nil
}

// atoi converts a string of at most a few digits already validated by the
// caller.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func firstNonDigit(s string, from int) int {
	for i := from; i < len(s); i++ {
		if !isDigit(s[i]) {
			return i
		}
	}
	return len(s)
}
