// Package ticks generates evenly spaced, calendar-aligned epoch seconds for
// labeling a time axis.
package ticks

import (
	"context"
	"math"

	"github.com/theory/isotime/internal/diag"
	"github.com/theory/isotime/iso/cal"
	"go.uber.org/zap"
)

// band describes a granularity: ticks step through field by a stride
// chosen from nice, aligned to the start of bigger.
type band struct {
	field   cal.Field
	bigger  cal.Field
	divisor float64 // seconds per unit of field
	nice    []int
}

//nolint:gochecknoglobals
var (
	sixties = []int{1, 2, 5, 10, 15, 20, 30, 60}

	bands = [...]band{
		{cal.Second, cal.Minute, 1, sixties},
		{cal.Minute, cal.Hour, 60, sixties},
		{cal.Hour, cal.Day, 3600, []int{1, 2, 3, 4, 6, 12, 24}},
		{cal.Day, cal.Month, cal.SecondsPerDay, []int{1, 2, 5, 7}},
		{cal.Month, cal.Year, 30 * cal.SecondsPerDay, []int{1, 2, 3, 6, 12}},
		{cal.Year, cal.Year, 365 * cal.SecondsPerDay, []int{1, 2, 5, 10, 20, 25, 50, 100}},
	}

	// capacities are the seconds per unit of each band but the last, times
	// maxCount/2 in choose, giving the largest range the band handles.
	capacities = [...]float64{60, 3600, cal.SecondsPerDay, 30 * cal.SecondsPerDay, 365 * cal.SecondsPerDay}
)

// maxDayStride caps day strides so that every month gets at least two
// ticks.
const maxDayStride = 14

// Generate returns ascending epoch seconds from start to stop suitable for
// axis ticks, at most maxCount values long. The first value is start and
// the last is stop, so at least two values are returned for distinct
// bounds, even when maxCount is 1. The values between fall on whole units
// of the chosen granularity, aligned to the start of the next larger unit.
// Day ticks restart at the first of each month, producing sequences such
// as the 1st and 15th of each month. start and stop are swapped if start
// is later. Equal bounds return a single value. Returns nil if either
// bound is not finite or beyond cal.MaxEpochSeconds, or if maxCount is
// less than 1.
//
// The chosen granularity and stride are logged to the logger in ctx at
// debug level.
func Generate(ctx context.Context, start, stop float64, maxCount int) []float64 {
	if !finite(start) || !finite(stop) || maxCount < 1 {
		return nil
	}
	if math.Abs(start) > cal.MaxEpochSeconds || math.Abs(stop) > cal.MaxEpochSeconds {
		diag.Logger(ctx).Debug("ticks out of range", zap.Float64("start", start), zap.Float64("stop", stop))
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	if start > stop {
		start, stop = stop, start
	}

	limit := max(maxCount, 2)
	for i := choose(stop-start, maxCount); i < len(bands); i++ {
		b := bands[i]
		perTick := (stop - start) / b.divisor / float64(maxCount)
		stride := NextNice(perTick, b.nice)
		for {
			if b.field == cal.Day {
				stride = min(stride, maxDayStride)
			}
			if ticks, ok := b.generate(start, stop, stride, limit); ok {
				diag.Logger(ctx).Debug(
					"ticks",
					zap.Stringer("field", b.field),
					zap.Float64("divisor", b.divisor),
					zap.Float64("units_per_tick", perTick),
					zap.Int("stride", stride),
					zap.Int("count", len(ticks)),
				)
				return ticks
			}
			if b.field == cal.Day && stride == maxDayStride {
				break
			}
			stride = widen(stride, b.nice)
		}
	}

	// The year band widens without bound, so this is unreachable.
	return []float64{start, stop}
}

// generate returns the ticks from start to stop stepping stride units of
// b.field, or false if there would be more than limit of them.
func (b band) generate(start, stop float64, stride, limit int) ([]float64, bool) {
	next, err := cal.FromEpochSeconds(start, cal.Zulu)
	if err != nil {
		return []float64{start, stop}, true
	}
	next = next.ClearSmallerFields(b.bigger)

	ticks := []float64{start}
	prev := math.Inf(-1)
	for sec := next.EpochSeconds(); sec < stop; sec = next.EpochSeconds() {
		if sec <= prev {
			break
		}
		if sec > start {
			if len(ticks) == limit-1 {
				return nil, false
			}
			ticks = append(ticks, sec)
		}
		prev = sec
		if next = advance(next, b.field, stride); next.CheckRange() != nil {
			break
		}
	}
	return append(ticks, stop), true
}

// choose returns the index of the finest band able to cover rng seconds in
// maxCount ticks.
func choose(rng float64, maxCount int) int {
	half := float64(maxCount / 2)
	for i, c := range capacities {
		if rng <= half*c {
			return i
		}
	}
	return len(bands) - 1
}

// widen returns the next stride larger than stride: the next value in
// nice, or double stride rounded up to a multiple of the last value in
// nice.
func widen(stride int, nice []int) int {
	if stride < nice[len(nice)-1] {
		return NextNice(float64(stride+1), nice)
	}
	return NextNice(2*float64(stride), nice)
}

// advance steps v by stride units of field. Day steps look ahead two
// strides; if that crosses into a new month, they snap to its first day.
func advance(v cal.Value, field cal.Field, stride int) cal.Value {
	if field != cal.Day {
		return v.Add(field, stride)
	}
	month := v.Month
	ahead := v.Add(cal.Day, 2*stride)
	if ahead.Month == month {
		return v.Add(cal.Day, stride)
	}
	ahead.Day = 1
	return ahead
}

// NextNice returns the smallest value in nice that is at least d, or the
// smallest multiple of the last value in nice that is at least d. nice must
// be ascending and its last value positive. Always returns at least 1.
func NextNice(d float64, nice []int) int {
	if !(d > 1) {
		return max(1, nice[0])
	}
	for _, n := range nice {
		if float64(n) >= d {
			return n
		}
	}
	last := float64(nice[len(nice)-1])
	return int(math.Ceil(d/last) * last)
}

// RoundToIdeal rounds epoch seconds to the nearest multiple of n units of
// field. Seconds through days round on a fixed unit length; months and
// years round the calendar month or year count, landing on the first of
// the month. Returns cal.ErrRange for non-finite epochs.
func RoundToIdeal(epoch float64, n int, field cal.Field) (cal.Value, error) {
	v, err := cal.FromEpochSeconds(epoch, cal.Zulu)
	if err != nil {
		return cal.Value{}, err
	}
	n = max(n, 1)
	switch field {
	case cal.Year:
		years := float64(v.Year) + float64(v.Month-1)/12
		return cal.Date(roundInt(years/float64(n))*n, 1, 1, cal.Zulu), nil
	case cal.Month:
		months := float64(v.Year*12 + v.Month - 1)
		ti := roundInt(months/float64(n)) * n
		return cal.Date(0, ti+1, 1, cal.Zulu).Normalize(), nil
	case cal.Millisecond:
		return cal.FromEpochSeconds(math.RoundToEven(epoch*1000/float64(n))*float64(n)/1000, cal.Zulu)
	default:
		chunk := float64(n) * unitSeconds(field)
		return cal.FromEpochSeconds(math.RoundToEven(epoch/chunk)*chunk, cal.Zulu)
	}
}

func unitSeconds(field cal.Field) float64 {
	switch field {
	case cal.Minute:
		return 60
	case cal.Hour:
		return 3600
	case cal.Day:
		return cal.SecondsPerDay
	default:
		return 1
	}
}

func roundInt(f float64) int { return int(math.Floor(f + 0.5)) }

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
