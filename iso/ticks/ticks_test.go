package ticks

import (
	"context"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theory/isotime/internal/diag"
	"github.com/theory/isotime/iso/cal"
	"github.com/theory/isotime/iso/parser"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func epoch(t *testing.T, s string) float64 {
	t.Helper()
	v, err := parser.ParseZulu(s)
	require.NoError(t, err)
	return v.EpochSeconds()
}

func isoStrings(t *testing.T, secs []float64) []string {
	t.Helper()
	out := make([]string, len(secs))
	for i, s := range secs {
		v, err := cal.FromEpochSeconds(s, cal.Zulu)
		require.NoError(t, err)
		out[i] = v.String()
	}
	return out
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name  string
		start string
		stop  string
		count int
		exp   []string
	}{
		{
			name:  "daily",
			start: "2024-01-01",
			stop:  "2024-01-06",
			count: 10,
			exp: []string{
				"2024-01-01T00:00:00.000",
				"2024-01-02T00:00:00.000",
				"2024-01-03T00:00:00.000",
				"2024-01-04T00:00:00.000",
				"2024-01-05T00:00:00.000",
				"2024-01-06T00:00:00.000",
			},
		},
		{
			name:  "semimonthly",
			start: "2024-01-01",
			stop:  "2024-03-01",
			count: 8,
			exp: []string{
				"2024-01-01T00:00:00.000",
				"2024-01-15T00:00:00.000",
				"2024-02-01T00:00:00.000",
				"2024-02-15T00:00:00.000",
				"2024-03-01T00:00:00.000",
			},
		},
		{
			name:  "half_hours",
			start: "2024-01-01T00:30",
			stop:  "2024-01-01T06:00",
			count: 12,
			exp: []string{
				"2024-01-01T00:30:00.000",
				"2024-01-01T01:00:00.000",
				"2024-01-01T01:30:00.000",
				"2024-01-01T02:00:00.000",
				"2024-01-01T02:30:00.000",
				"2024-01-01T03:00:00.000",
				"2024-01-01T03:30:00.000",
				"2024-01-01T04:00:00.000",
				"2024-01-01T04:30:00.000",
				"2024-01-01T05:00:00.000",
				"2024-01-01T05:30:00.000",
				"2024-01-01T06:00:00.000",
			},
		},
		{
			name:  "monthly",
			start: "2024-09-15",
			stop:  "2025-02-15",
			count: 7,
			exp: []string{
				"2024-09-15T00:00:00.000",
				"2024-10-01T00:00:00.000",
				"2024-11-01T00:00:00.000",
				"2024-12-01T00:00:00.000",
				"2025-01-01T00:00:00.000",
				"2025-02-01T00:00:00.000",
				"2025-02-15T00:00:00.000",
			},
		},
		{
			name:  "bimonthly",
			start: "2024-09-15",
			stop:  "2025-02-15",
			count: 6,
			exp: []string{
				"2024-09-15T00:00:00.000",
				"2024-11-01T00:00:00.000",
				"2025-01-01T00:00:00.000",
				"2025-02-15T00:00:00.000",
			},
		},
		{
			name:  "decades",
			start: "2000-06-01",
			stop:  "2030-06-01",
			count: 6,
			exp: []string{
				"2000-06-01T00:00:00.000",
				"2010-01-01T00:00:00.000",
				"2020-01-01T00:00:00.000",
				"2030-01-01T00:00:00.000",
				"2030-06-01T00:00:00.000",
			},
		},
		{
			name:  "seconds",
			start: "2024-01-01T00:00:00.5",
			stop:  "2024-01-01T00:00:04",
			count: 10,
			exp: []string{
				"2024-01-01T00:00:00.500",
				"2024-01-01T00:00:01.000",
				"2024-01-01T00:00:02.000",
				"2024-01-01T00:00:03.000",
				"2024-01-01T00:00:04.000",
			},
		},
		{
			name:  "even_seconds",
			start: "1970-01-01T00:00:00.5",
			stop:  "1970-01-01T00:00:10.5",
			count: 10,
			exp: []string{
				"1970-01-01T00:00:00.500",
				"1970-01-01T00:00:02.000",
				"1970-01-01T00:00:04.000",
				"1970-01-01T00:00:06.000",
				"1970-01-01T00:00:08.000",
				"1970-01-01T00:00:10.000",
				"1970-01-01T00:00:10.500",
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			start, stop := epoch(t, tc.start), epoch(t, tc.stop)

			got := Generate(context.Background(), start, stop, tc.count)
			if diff := cmp.Diff(tc.exp, isoStrings(t, got)); diff != "" {
				t.Errorf("Generate mismatch (-want +got):\n%s", diff)
			}

			// Swapped bounds produce the same ticks.
			swapped := Generate(context.Background(), stop, start, tc.count)
			if diff := cmp.Diff(got, swapped); diff != "" {
				t.Errorf("swapped mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGenerateEdges(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	ctx := context.Background()

	a.Equal([]float64{42}, Generate(ctx, 42, 42, 10))
	a.Nil(Generate(ctx, math.NaN(), 42, 10))
	a.Nil(Generate(ctx, 0, math.Inf(1), 10))
	a.Nil(Generate(ctx, 0, 100, 0))
	a.Nil(Generate(ctx, 0, 1e16, 10))
	a.Nil(Generate(ctx, -1e16, 0, 10))
	a.Equal([]float64{1, 2}, Generate(ctx, 1, 2, 1))
}

func TestGenerateBounds(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for _, tc := range []struct {
		name  string
		start float64
		stop  float64
	}{
		{"millis", 0.25, 0.75},
		{"seconds", 0.5, 10.5},
		{"minutes", 100, 5000},
		{"hours", 1e5, 3e5},
		{"days", 1.7e9, 1.7e9 + 40*cal.SecondsPerDay},
		{"months", 1e8, 1.5e8},
		{"years", 1e8, 1e9},
		{"millennia", -6e10, 6e10},
		{"extremes", -cal.MaxEpochSeconds, cal.MaxEpochSeconds},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			for _, count := range []int{1, 2, 3, 5, 7, 10, 20, 100} {
				got := Generate(ctx, tc.start, tc.stop, count)
				require.NotEmpty(t, got)
				assert.LessOrEqual(t, len(got), max(count, 2), "count %d: %v", count, got)
				assert.InDelta(t, tc.start, got[0], 0)
				assert.InDelta(t, tc.stop, got[len(got)-1], 0)
				for i := 1; i < len(got); i++ {
					assert.Less(t, got[i-1], got[i], "count %d index %d", count, i)
				}
			}
		})
	}
}

func TestGenerateLogs(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := diag.WithLogger(context.Background(), zap.New(core))

	ticks := Generate(ctx, 0, 10*cal.SecondsPerDay, 10)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "ticks", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "day", fields["field"])
	assert.Equal(t, int64(2), fields["stride"])
	assert.Equal(t, int64(len(ticks)), fields["count"])
}

func TestNextNice(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		d    float64
		nice []int
		exp  int
	}{
		{"below_one", 0.25, sixties, 1},
		{"one", 1, sixties, 1},
		{"exact", 15, sixties, 15},
		{"round_up", 7, sixties, 10},
		{"last", 60, sixties, 60},
		{"beyond", 61, sixties, 120},
		{"days_beyond", 7.5, []int{1, 2, 5, 7}, 14},
		{"nan", math.NaN(), sixties, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.exp, NextNice(tc.d, tc.nice))
		})
	}
}

func TestRoundToIdeal(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name  string
		input string
		n     int
		field cal.Field
		exp   string
	}{
		{"year_up", "2024-08-20", 1, cal.Year, "2025-01-01T00:00:00.000"},
		{"year_down", "2024-05-01", 1, cal.Year, "2024-01-01T00:00:00.000"},
		{"decade", "2016-01-01", 10, cal.Year, "2020-01-01T00:00:00.000"},
		{"quarter", "2024-05-20", 3, cal.Month, "2024-04-01T00:00:00.000"},
		{"month_up", "2024-05-20", 1, cal.Month, "2024-05-01T00:00:00.000"},
		{"six_hours", "2024-01-01T10:00", 6, cal.Hour, "2024-01-01T12:00:00.000"},
		{"day", "2024-01-01T13:00", 1, cal.Day, "2024-01-02T00:00:00.000"},
		{"fifteen_minutes", "2024-01-01T10:08", 15, cal.Minute, "2024-01-01T10:15:00.000"},
		{"seconds", "2024-01-01T10:00:04", 5, cal.Second, "2024-01-01T10:00:05.000"},
		{"millis", "2024-01-01T10:00:00.123", 10, cal.Millisecond, "2024-01-01T10:00:00.120"},
		{"zero_n", "2024-01-01T13:00", 0, cal.Day, "2024-01-02T00:00:00.000"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			v, err := RoundToIdeal(epoch(t, tc.input), tc.n, tc.field)
			require.NoError(t, err)
			assert.Equal(t, tc.exp, v.String())
		})
	}

	_, err := RoundToIdeal(math.NaN(), 1, cal.Day)
	require.ErrorIs(t, err, cal.ErrRange)
}
