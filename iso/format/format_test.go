package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theory/isotime/iso/cal"
)

func TestLayoutFormat(t *testing.T) {
	t.Parallel()
	v := cal.Value{Year: 2006, Month: 1, Day: 2, Hour: 15, Minute: 4, Second: 5, Millisecond: 67}
	bc := cal.Value{Year: -1, Month: 1, Day: 2, Hour: 14}
	midnight := cal.Value{Year: 2006, Month: 1, Day: 2, Minute: 3, Second: 4}

	for _, tc := range []struct {
		name   string
		layout Layout
		val    cal.Value
		exp    string
	}{
		{"isot", ISOT, v, "2006-01-02T15:04:05"},
		{"isot3", ISOT3, v, "2006-01-02T15:04:05.067"},
		{"isotz", ISOTZ, v, "2006-01-02T15:04:05Z"},
		{"isot3z", ISOT3Z, v, "2006-01-02T15:04:05.067Z"},
		{"isospace", ISOSpace, v, "2006-01-02 15:04:05"},
		{"isodate", ISODate, v, "2006-01-02"},
		{"isodate_bc", ISODate, bc, "-0001-01-02"},
		{"isot_small_year", ISOT, cal.Date(98, 11, 12, cal.Zulu), "0098-11-12T00:00:00"},
		{"compact", Compact, v, "20060102150405"},
		{"yyyyddd", YYYYDDD, cal.Date(2004, 12, 31, cal.Zulu), "2004366"},
		{"yyyyddd_small", YYYYDDD, v, "2006002"},
		{"yyyymm", YYYYMM, v, "200601"},
		{"ddmonyyyy", DDMonYYYY, v, "02-Jan-2006 15:04:05"},
		{"usslashampm_pm", USSlashAmPm, v, "1/2/2006 3:04:05 pm"},
		{"usslashampm_midnight", USSlashAmPm, midnight, "1/2/2006 12:03:04 am"},
		{"usslashampm_bc", USSlashAmPm, bc, "1/2/-0001 2:00:00 pm"},
		{"usslashampm_noon", USSlashAmPm, cal.Value{Year: 2006, Month: 12, Day: 25, Hour: 12}, "12/25/2006 12:00:00 pm"},
		{"usslash24", USSlash24, v, "1/2/2006 15:04:05"},
		{"rfc822gmt", RFC822GMT, v, "Mon, 02 Jan 2006 15:04:05 GMT"},
		{"esri", Esri, v, "2006/01/02 15:04:05 UTC"},
		{"unknown", Layout(99), v, "2006-01-02T15:04:05"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.exp, tc.layout.Format(tc.val))
		})
	}
}

func TestParseLayout(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	for _, name := range LayoutNames() {
		l, err := ParseLayout(name)
		require.NoError(t, err)
		a.Equal(name, l.String())
	}

	l, err := ParseLayout(" RFC822GMT ")
	require.NoError(t, err)
	a.Equal(RFC822GMT, l)

	_, err = ParseLayout("nope")
	require.ErrorIs(t, err, ErrLayout)
	require.EqualError(t, err, `layout: unknown layout "nope"`)

	a.Equal("layout(99)", Layout(99).String())
	a.Len(LayoutNames(), 14)
	a.Equal("compact", LayoutNames()[0])
}

func TestPrecision(t *testing.T) {
	t.Parallel()
	v := cal.Value{Year: 1970, Month: 1, Day: 2, Hour: 3, Minute: 4, Second: 5, Millisecond: 678}

	for _, tc := range []struct {
		prec string
		exp  string
	}{
		{"1970", "1970"},
		{"1970Z", "1970"},
		{"1970-01", "1970-01"},
		{"1970-01-01", "1970-01-02"},
		{"1970-01-01Z", "1970-01-02"},
		{"1970-01-01T00", "1970-01-02T03"},
		{"1970-01-01T00Z", "1970-01-02T03Z"},
		{"1970-01-01T00:00", "1970-01-02T03:04"},
		{"1970-01-01T00:00Z", "1970-01-02T03:04Z"},
		{"1970-01-01T00:00:00", "1970-01-02T03:04:05"},
		{"1970-01-01T00:00:00Z", "1970-01-02T03:04:05Z"},
		{"1970-01-01T00:00:00.0", "1970-01-02T03:04:05.6"},
		{"1970-01-01T00:00:00.00Z", "1970-01-02T03:04:05.67Z"},
		{"1970-01-01T00:00:00.000", "1970-01-02T03:04:05.678"},
		{"1970-01-01T00:00:00.000Z", "1970-01-02T03:04:05.678Z"},
		{"", "1970-01-02T03:04:05Z"},
		{"Z", "1970-01-02T03:04:05Z"},
		{"1980", "1970-01-02T03:04:05Z"},
		{"nonsense", "1970-01-02T03:04:05Z"},
	} {
		t.Run(tc.prec, func(t *testing.T) {
			t.Parallel()
			p := ParsePrecision(tc.prec)
			assert.Equal(t, tc.exp, Limited(p, v))
		})
	}
}

func TestPrecisionString(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.Equal("1970-01-01T00:00:00Z", DefaultPrecision.String())
	a.Equal("1970-01", Precision{Level: PrecMonth}.String())
	for _, s := range precisionExemplars {
		a.Equal(s, ParsePrecision(s).String())
		a.Equal(s+"Z", ParsePrecision(s+"Z").String())
	}
	a.Equal("-0003", Limited(Precision{Level: PrecYear}, cal.Date(-3, 1, 1, cal.Zulu)))
}

func TestLookupPrecision(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		prec string
		exp  Precision
		ok   bool
	}{
		{"", DefaultPrecision, true},
		{"Z", DefaultPrecision, true},
		{"1970-01", Precision{Level: PrecMonth}, true},
		{"1970-01-01T00:00Z", Precision{Level: PrecMinute, Zulu: true}, true},
		{"1970-1", DefaultPrecision, false},
		{"ZZ", DefaultPrecision, false},
		{"nonsense", DefaultPrecision, false},
	} {
		t.Run(tc.prec, func(t *testing.T) {
			t.Parallel()
			p, ok := LookupPrecision(tc.prec)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.exp, p)
		})
	}
}

func TestElapsedString(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		millis float64
		exp    string
	}{
		{0, "0 ms"},
		{783, "783 ms"},
		{-783, "-783 ms"},
		{782.5, "783 ms"},
		{5783, "5.783 s"},
		{5003, "5.003 s"},
		{-5783, "-5.783 s"},
		{(7*3600 + 4*60 + 5) * 1000, "7h 4m 5s"},
		{(4*60 + 5) * 1000, "4m 5s"},
		{60 * 1000, "1m 0s"},
		{86400 * 1000, "1 day"},
		{2 * 86400 * 1000, "2 days"},
		{(86400 + 5*60) * 1000, "1 day 0h 5m 0s"},
		{-(2*86400 + 3600 + 1) * 1000, "-2 days 1h 0m 1s"},
		{math.NaN(), "infinity"},
		{math.Inf(1), "infinity"},
		{math.Inf(-1), "infinity"},
	} {
		assert.Equal(t, tc.exp, ElapsedString(tc.millis), "millis %v", tc.millis)
	}
}
