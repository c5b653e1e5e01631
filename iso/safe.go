package iso

import (
	"context"
	"math"

	"github.com/theory/isotime/internal/diag"
	"github.com/theory/isotime/iso/cal"
	"github.com/theory/isotime/iso/format"
	"go.uber.org/zap"
)

// safe calls fn and returns its result, or fallback if fn returns an error
// or panics. Failures are logged to the logger in ctx.
func safe[T any](ctx context.Context, op string, fallback T, fn func() (T, error)) (res T) {
	defer func() {
		if r := recover(); r != nil {
			diag.Logger(ctx).Debug(
				"conversion panicked",
				zap.String("op", op),
				zap.Any("panic", r),
			)
			res = fallback
		}
	}()

	res, err := fn()
	if err != nil {
		diag.Logger(ctx).Debug(
			"conversion failed",
			zap.String("op", op),
			zap.Error(err),
		)
		return fallback
	}
	return res
}

// SafeToEpochSeconds parses text in the zone stored in ctx and returns its
// epoch seconds, or NaN if text cannot be parsed.
func SafeToEpochSeconds(ctx context.Context, text string) float64 {
	return safe(ctx, "to_epoch_seconds", math.NaN(), func() (float64, error) {
		t, err := ParseIn(text, ZoneFromContext(ctx))
		if err != nil {
			return 0, err
		}
		return t.EpochSeconds(), nil
	})
}

// SafeFormat formats sec in layout like [Format], or returns fallback if sec
// is not finite or out of range.
func SafeFormat(ctx context.Context, sec float64, layout format.Layout, fallback string) string {
	return safe(ctx, "format", fallback, func() (string, error) {
		return Format(sec, layout)
	})
}

// SafeLimited formats sec to precision p like [Limited], or returns fallback
// if sec is not finite or out of range.
func SafeLimited(ctx context.Context, p format.Precision, sec float64, fallback string) string {
	return safe(ctx, "limited", fallback, func() (string, error) {
		return Limited(p, sec)
	})
}

// SafeNow evaluates a relative "now" query like [Now], or returns fallback
// if the query is malformed.
func SafeNow(ctx context.Context, query string, fallback float64) float64 {
	return safe(ctx, "now", fallback, func() (float64, error) {
		return Now(query)
	})
}

// SafeUnitsToEpochSeconds converts value in unitsSince like
// [UnitsToEpochSeconds], or returns NaN on failure.
func SafeUnitsToEpochSeconds(ctx context.Context, unitsSince string, value float64) float64 {
	return safe(ctx, "units_to_epoch_seconds", math.NaN(), func() (float64, error) {
		return UnitsToEpochSeconds(unitsSince, value)
	})
}

// SafeEpochSecondsToUnits converts epoch seconds to unitsSince like
// [EpochSecondsToUnits], or returns NaN on failure.
func SafeEpochSecondsToUnits(ctx context.Context, unitsSince string, epoch float64) float64 {
	return safe(ctx, "epoch_seconds_to_units", math.NaN(), func() (float64, error) {
		return EpochSecondsToUnits(unitsSince, epoch)
	})
}

// key is an unexported type for keys defined in this package. This prevents
// collisions with keys defined in other packages.
type key int

// zoneKey is the key for cal.Zone values in Contexts. It is unexported;
// clients use ContextWithZone and ZoneFromContext instead of using this key
// directly.
const zoneKey key = 0

// ContextWithZone returns a new Context that carries zone.
func ContextWithZone(ctx context.Context, zone cal.Zone) context.Context {
	return context.WithValue(ctx, zoneKey, zone)
}

// ZoneFromContext returns the cal.Zone stored in ctx or cal.Zulu.
func ZoneFromContext(ctx context.Context) cal.Zone {
	if ctx != nil {
		if zone, ok := ctx.Value(zoneKey).(cal.Zone); ok {
			return zone
		}
	}
	return cal.Zulu
}
