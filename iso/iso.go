// Package iso converts calendar date times between tolerant ISO 8601-like
// text, epoch seconds, and numeric "units since" values.
//
// Every fallible operation returns an error wrapping one of ErrFormat,
// ErrRange, ErrUnit, ErrQuery, or ErrLayout. Each has a Safe counterpart
// that never panics and returns a fallback instead, logging the failure at
// debug level to the logger stored in its context by ContextWithLogger.
//
// All functions are safe for concurrent use.
package iso

import (
	"context"
	"time"

	"github.com/theory/isotime/internal/diag"
	"github.com/theory/isotime/iso/cal"
	"github.com/theory/isotime/iso/format"
	"github.com/theory/isotime/iso/parser"
	"github.com/theory/isotime/iso/units"
	"go.uber.org/zap"
)

//nolint:gochecknoglobals
var (
	// ErrFormat wraps errors for malformed date time text.
	ErrFormat = parser.ErrFormat

	// ErrRange wraps errors for non-finite or out-of-range epoch seconds.
	ErrRange = cal.ErrRange

	// ErrUnit wraps errors for unknown units and malformed units strings.
	ErrUnit = units.ErrUnit

	// ErrQuery wraps errors for malformed relative "now" queries.
	ErrQuery = units.ErrQuery

	// ErrLayout wraps errors for unknown layout names.
	ErrLayout = format.ErrLayout
)

// Parse parses a tolerant ISO 8601 date time string as Zulu time. See
// [parser.Parse] for the accepted grammar.
func Parse(text string) (Time, error) {
	return ParseIn(text, cal.Zulu)
}

// ParseIn parses a tolerant ISO 8601 date time string in zone.
func ParseIn(text string, zone cal.Zone) (Time, error) {
	v, err := parser.Parse(text, zone)
	if err != nil {
		//nolint:wrapcheck // Already wraps ErrFormat
		return Time{}, err
	}
	return Time{v}, nil
}

// MustParse is like [Parse] but panics on parse failure. Mostly provided for
// use in documentation examples and tests.
func MustParse(text string) Time {
	t, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return t
}

// ToEpochSeconds parses text as Zulu time and returns its epoch seconds.
func ToEpochSeconds(text string) (float64, error) {
	t, err := Parse(text)
	if err != nil {
		return 0, err
	}
	return t.EpochSeconds(), nil
}

// FromEpochSeconds returns the Zulu Time for sec seconds since the epoch,
// rounded to the millisecond.
func FromEpochSeconds(sec float64) (Time, error) {
	v, err := cal.FromEpochSeconds(sec, cal.Zulu)
	if err != nil {
		//nolint:wrapcheck // Already wraps ErrRange
		return Time{}, err
	}
	return Time{v}, nil
}

// Format formats sec epoch seconds in layout as Zulu time.
func Format(sec float64, layout format.Layout) (string, error) {
	t, err := FromEpochSeconds(sec)
	if err != nil {
		return "", err
	}
	return layout.Format(t.Value), nil
}

// Limited formats sec epoch seconds as Zulu ISO 8601 text truncated to p.
func Limited(p format.Precision, sec float64) (string, error) {
	t, err := FromEpochSeconds(sec)
	if err != nil {
		return "", err
	}
	return format.Limited(p, t.Value), nil
}

// SuggestLayout returns the layout shared by every non-empty sample and
// true, or false if the samples have no common layout. See
// [parser.SuggestLayout] for the recognized forms.
func SuggestLayout(samples ...string) (format.Layout, bool) {
	return parser.SuggestLayouts(samples)
}

// Now evaluates a relative time query such as "now-3days" against the
// current time and returns epoch seconds. See [units.ParseNow].
func Now(query string) (float64, error) {
	//nolint:wrapcheck // Already wraps ErrQuery
	return units.ParseNow(query, time.Now())
}

// ParseUnits parses a units string such as "hours since 1970-01-01".
func ParseUnits(text string) (units.Spec, error) {
	//nolint:wrapcheck // Already wraps ErrUnit or ErrFormat
	return units.ParseSpec(text)
}

// UnitsToEpochSeconds converts value, measured in the units string
// unitsSince, to epoch seconds.
func UnitsToEpochSeconds(unitsSince string, value float64) (float64, error) {
	spec, err := ParseUnits(unitsSince)
	if err != nil {
		return 0, err
	}
	//nolint:wrapcheck // Already wrapped
	return spec.ToEpochSeconds(value)
}

// EpochSecondsToUnits converts epoch seconds to a value measured in the
// units string unitsSince.
func EpochSecondsToUnits(unitsSince string, epoch float64) (float64, error) {
	spec, err := ParseUnits(unitsSince)
	if err != nil {
		return 0, err
	}
	//nolint:wrapcheck // Already wrapped
	return spec.FromEpochSeconds(epoch)
}

// ContextWithLogger returns a new Context that carries logger. The Safe
// functions log failures to it at debug level.
func ContextWithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return diag.WithLogger(ctx, logger)
}
