// Package main converts a date time in order to test WASM compilation.
package main

import (
	"context"
	"fmt"

	"github.com/theory/isotime/iso"
	"github.com/theory/isotime/iso/format"
	"github.com/theory/isotime/iso/ticks"
)

func main() {
	ctx := context.Background()

	// Parse a tolerant ISO 8601 date time.
	sec := iso.SafeToEpochSeconds(ctx, "2024-02-29 12:00")

	// Convert it to units and back.
	days := iso.SafeEpochSecondsToUnits(ctx, "days since 2024-01-01", sec)
	back := iso.SafeUnitsToEpochSeconds(ctx, "days since 2024-01-01", days)

	// Show the results.
	//nolint:forbidigo
	fmt.Printf("%v %v %s\n", sec, days, iso.SafeFormat(ctx, back, format.RFC822GMT, "NaN"))

	//nolint:forbidigo
	fmt.Println(len(ticks.Generate(ctx, sec, sec+30*86400, 10)))
}
