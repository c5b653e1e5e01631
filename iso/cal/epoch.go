package cal

import (
	"fmt"
	"math"
	"time"
)

// MaxEpochSeconds is the largest magnitude FromEpochSeconds accepts, about
// 285 million years either side of 1970.
const MaxEpochSeconds = 9e15

// secondsPerYear is the mean length of a Gregorian year.
const secondsPerYear = 365.2425 * SecondsPerDay

// CheckRange returns an error wrapping ErrRange if the fields of v, read
// as Zulu time, fall further than about MaxEpochSeconds from the epoch.
// EpochMillis does not overflow for values that pass.
func (v Value) CheckRange() error {
	sec := (float64(v.Year)-1970+(float64(v.Month)-1)/12)*secondsPerYear +
		(float64(v.Day)-1)*SecondsPerDay +
		float64(v.Hour)*3600 + float64(v.Minute)*60 + float64(v.Second) +
		float64(v.Millisecond)/msPerSecond
	if math.Abs(sec) > MaxEpochSeconds {
		return fmt.Errorf("%w: year %d is out of range", ErrRange, v.Year)
	}
	return nil
}

// Time returns v as a time.Time in the location of its zone.
func (v Value) Time() time.Time {
	if v.Zone == Local {
		// Roll the wall clock first so time.Date only resolves the offset.
		n := fromZuluMillis(v.zuluMillis())
		return time.Date(
			n.Year, time.Month(n.Month), n.Day,
			n.Hour, n.Minute, n.Second, n.Millisecond*int(time.Millisecond),
			time.Local,
		)
	}
	return time.UnixMilli(v.zuluMillis()).In(zulu)
}

// FromTime returns the fields of the instant t as seen in zone.
func FromTime(t time.Time, zone Zone) Value {
	if zone == Zulu {
		return fromZuluMillis(t.UnixMilli())
	}
	t = t.In(time.Local)
	return Value{
		Year:        t.Year(),
		Month:       int(t.Month()),
		Day:         t.Day(),
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Millisecond: t.Nanosecond() / int(time.Millisecond),
		Zone:        Local,
	}
}

// EpochMillis returns the milliseconds since 1970-01-01T00:00:00Z for v.
func (v Value) EpochMillis() int64 {
	if v.Zone == Local {
		return v.Time().UnixMilli()
	}
	return v.zuluMillis()
}

// EpochSeconds returns the seconds since 1970-01-01T00:00:00Z for v, with
// millisecond precision.
func (v Value) EpochSeconds() float64 {
	return float64(v.EpochMillis()) / msPerSecond
}

// FromEpochSeconds returns the Value in zone for sec seconds since
// 1970-01-01T00:00:00Z. sec is rounded to the nearest millisecond, with
// ties rounding up. Returns ErrRange if sec is NaN, infinite, or larger in
// magnitude than MaxEpochSeconds.
func FromEpochSeconds(sec float64, zone Zone) (Value, error) {
	if math.IsNaN(sec) || math.IsInf(sec, 0) {
		return Value{}, fmt.Errorf("%w: epoch seconds %v is not finite", ErrRange, sec)
	}
	if math.Abs(sec) > MaxEpochSeconds {
		return Value{}, fmt.Errorf("%w: epoch seconds %v is out of range", ErrRange, sec)
	}
	ms := int64(math.Floor(sec*msPerSecond + 0.5))
	if zone == Local {
		return FromTime(time.UnixMilli(ms), Local), nil
	}
	return fromZuluMillis(ms), nil
}

// BackNDays returns the epoch seconds of the start of the Zulu day n days
// before the day containing last. If last is not finite, the day containing
// now is used instead.
func BackNDays(n int, last float64, now time.Time) float64 {
	v, err := FromEpochSeconds(last, Zulu)
	if err != nil {
		v = FromTime(now, Zulu)
	}
	return v.ClearSmallerFields(Day).EpochSeconds() - float64(n)*SecondsPerDay
}
