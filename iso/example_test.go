//nolint:godot
package iso_test

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/theory/isotime/iso"
	"github.com/theory/isotime/iso/format"
)

// Parse is tolerant: field widths are not enforced, a space may replace
// the "T", out-of-range fields roll over, and offsets are applied.
func ExampleParse() {
	for _, text := range []string{
		"2001-1-2",
		"2001-01-32 10:30",
		"2001-01-01T12:00-05:00",
		"-0001-03-01",
	} {
		t, err := iso.Parse(text)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(t)
	}
	// Output:
	// 2001-01-02T00:00:00.000Z
	// 2001-02-01T10:30:00.000Z
	// 2001-01-01T17:00:00.000Z
	// -0001-03-01T00:00:00.000Z
}

func ExampleFormat() {
	for _, layout := range []format.Layout{format.ISOT, format.DDMonYYYY, format.YYYYDDD, format.RFC822GMT} {
		str, err := iso.Format(951782400, layout)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(str)
	}
	// Output:
	// 2000-02-29T00:00:00
	// 29-Feb-2000 00:00:00
	// 2000060
	// Tue, 29 Feb 2000 00:00:00 GMT
}

// Month and year units use calendar arithmetic, so one month after January
// 31 is the last day of February.
func ExampleUnitsToEpochSeconds() {
	for _, val := range []float64{1, 1.5, 12} {
		sec, err := iso.UnitsToEpochSeconds("months since 2024-01-31", val)
		if err != nil {
			log.Fatal(err)
		}
		str, _ := iso.Limited(format.Precision{Level: format.PrecDay}, sec)
		fmt.Println(str)
	}
	// Output:
	// 2024-02-29
	// 2024-03-15
	// 2025-01-31
}

func ExampleSafeToEpochSeconds() {
	ctx := context.Background()
	fmt.Println(iso.SafeToEpochSeconds(ctx, "1970-01-02"))
	fmt.Println(math.IsNaN(iso.SafeToEpochSeconds(ctx, "yesterday")))
	fmt.Println(iso.SafeFormat(ctx, math.NaN(), format.ISOT, "unknown"))
	// Output:
	// 86400
	// true
	// unknown
}
