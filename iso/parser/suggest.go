package parser

import (
	"regexp"

	"github.com/theory/isotime/iso/format"
)

// suggestion maps a sample pattern to the layout whose parser reads it.
// Patterns with no matching layout claim samples that would otherwise be
// mistaken for a later pattern.
type suggestion struct {
	re     *regexp.Regexp
	layout format.Layout
	none   bool
}

// Years start with 0-2, months with 0-1, days with 0-3, hours with 0-2, and
// minutes and seconds with 0-5, so that runs of digits are not mistaken
// for dates. Order matters: ordinal dates must precede ISO dates.
//
//nolint:gochecknoglobals
var suggestions = []suggestion{
	{re: regexp.MustCompile(`^[0-2]\d{3}-[0-3]\d{2}$`), none: true},
	{re: regexp.MustCompile(`^[0-2]\d{3}[0-3]\d{2}$`), layout: format.YYYYDDD},
	{re: regexp.MustCompile(`^[0-2]\d{3}-[0-1]\d`), layout: format.ISOTZ},
	{re: regexp.MustCompile(`^[0-2]\d{3}[0-1]\d[0-3]\d(?:[0-2]\d(?:[0-5]\d(?:[0-5]\d)?)?)?$`), layout: format.Compact},
	{re: regexp.MustCompile(`^[0-2]\d{3}[0-1]\d$`), layout: format.YYYYMM},
	{re: regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2,4}(?: \d{1,2}:\d{2}:\d{2})?$`), layout: format.USSlash24},
	{re: regexp.MustCompile(`^\d{2}-[a-zA-Z]{3}-\d{4}(?: \d{2}:\d{2}:\d{2})?$`), layout: format.DDMonYYYY},
	{
		re:     regexp.MustCompile(`^[a-zA-Z]{3}, \d{2} [a-zA-Z]{3} \d{4} \d{2}:\d{2}:\d{2} GMT$`),
		layout: format.RFC822GMT,
	},
}

// SuggestLayout returns the layout of sample and true, or false if sample
// matches none of the layouts readable by this package:
//
//   - [format.YYYYDDD]: 2024123
//   - [format.ISOTZ]: anything starting 2024-01, read by [Parse]
//   - [format.Compact]: 20240102, 2024010203, 202401020304, 20240102030405
//   - [format.YYYYMM]: 202401
//   - [format.USSlash24]: 1/2/2024, 1/2/24 03:04:05
//   - [format.DDMonYYYY]: 02-Jan-2024, 02-Jan-2024 03:04:05
//   - [format.RFC822GMT]: Tue, 02 Jan 2024 03:04:05 GMT
//
// Dates with a dash before the ordinal day, as in 2024-123, have no layout.
func SuggestLayout(sample string) (format.Layout, bool) {
	for _, s := range suggestions {
		if s.re.MatchString(sample) {
			return s.layout, !s.none
		}
	}
	return 0, false
}

// SuggestLayouts returns the layout shared by every non-empty sample and
// true. Returns false if any non-empty sample has no layout or a different
// layout than the others, or if there are no non-empty samples.
func SuggestLayouts(samples []string) (format.Layout, bool) {
	var (
		layout format.Layout
		found  bool
	)
	for _, sample := range samples {
		if sample == "" {
			continue
		}
		l, ok := SuggestLayout(sample)
		if !ok || (found && l != layout) {
			return 0, false
		}
		layout, found = l, true
	}
	return layout, found
}
