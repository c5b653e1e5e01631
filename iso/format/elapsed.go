package format

import (
	"math"
	"strconv"
)

// ElapsedString returns a short approximate description of a duration in
// milliseconds, such as "783 ms", "5.783 s", "7h 4m 5s", or "2 days".
// Milliseconds are dropped once the duration reaches a minute. Returns
// "infinity" for NaN and infinite durations.
func ElapsedString(millis float64) string {
	if math.IsNaN(millis) || math.IsInf(millis, 0) || math.Abs(millis) >= math.MaxInt64 {
		return "infinity"
	}

	t := int64(math.Floor(millis + 0.5))
	var b []byte
	if t < 0 {
		b = append(b, '-')
		t = -t
	}

	ms := t % 1000
	sec := t / 1000
	minutes, sec := sec/60, sec%60
	hours, minutes := minutes/60, minutes%60
	days, hours := hours/24, hours%24

	switch {
	case days+hours+minutes+sec == 0:
		b = strconv.AppendInt(b, t, 10)
		return string(append(b, " ms"...))
	case days+hours+minutes == 0:
		b = strconv.AppendInt(b, sec, 10)
		b = append(b, '.')
		b = appendPadded64(b, ms, 3)
		return string(append(b, " s"...))
	}

	if days > 0 {
		b = strconv.AppendInt(b, days, 10)
		if days == 1 {
			b = append(b, " day"...)
		} else {
			b = append(b, " days"...)
		}
		if hours+minutes+sec == 0 {
			return string(b)
		}
		b = append(b, ' ')
	}
	if days > 0 || hours > 0 {
		b = strconv.AppendInt(b, hours, 10)
		b = append(b, "h "...)
	}
	b = strconv.AppendInt(b, minutes, 10)
	b = append(b, "m "...)
	b = strconv.AppendInt(b, sec, 10)
	return string(append(b, 's'))
}

func appendPadded64(b []byte, n int64, width int) []byte {
	s := strconv.FormatInt(n, 10)
	for i := len(s); i < width; i++ {
		b = append(b, '0')
	}
	return append(b, s...)
}
