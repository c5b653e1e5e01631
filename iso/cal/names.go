package cal

import (
	"strings"
	"time"
)

//nolint:gochecknoglobals
var (
	monthNames3 = [...]string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	}
	monthNames = [...]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	weekdayNames3 = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	weekdayNames  = [...]string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	}

	// zulu is the zone descriptor for Zulu values.
	zulu = time.FixedZone("Zulu", 0)
)

// MonthName3 returns the three-letter English name of month 1-12, or ""
// if month is out of range.
func MonthName3(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames3[month-1]
}

// MonthName returns the full English name of month 1-12, or "" if month is
// out of range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// MonthFromName3 returns the month number for a case-insensitive
// three-letter English month name.
func MonthFromName3(name string) (int, bool) {
	for i, n := range monthNames3 {
		if strings.EqualFold(n, name) {
			return i + 1, true
		}
	}
	return 0, false
}

// WeekdayName3 returns the three-letter English name of w.
func WeekdayName3(w time.Weekday) string { return weekdayNames3[w%7] }

// WeekdayName returns the full English name of w.
func WeekdayName(w time.Weekday) string { return weekdayNames[w%7] }
