// Package dates holds the calendar and clock-string conversions used by the
// workout editor: "YYYY-MM-DD" day strings (the URL/query and API date format)
// and "HH:mm" clock strings (session start/end times).
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Day is a calendar date without a time component.
type Day struct {
	Year  int
	Month int
	Day   int
}

// ParseDay parses a strict "YYYY-MM-DD" string into a Day.
// Malformed input (wrong field count, non-numeric fields, out-of-range
// calendar dates like 2025-02-30) is rejected with an error rather than
// producing garbage components.
func ParseDay(s string) (Day, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Day{}, fmt.Errorf("parsing day %q: want YYYY-MM-DD", s)
	}
	if len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return Day{}, fmt.Errorf("parsing day %q: want YYYY-MM-DD", s)
	}

	y, err := parseDigits(parts[0])
	if err != nil {
		return Day{}, fmt.Errorf("parsing day %q: year: %w", s, err)
	}
	m, err := parseDigits(parts[1])
	if err != nil {
		return Day{}, fmt.Errorf("parsing day %q: month: %w", s, err)
	}
	d, err := parseDigits(parts[2])
	if err != nil {
		return Day{}, fmt.Errorf("parsing day %q: day: %w", s, err)
	}

	day := Day{Year: y, Month: m, Day: d}
	if !day.valid() {
		return Day{}, fmt.Errorf("parsing day %q: not a calendar date", s)
	}
	return day, nil
}

// parseDigits parses a field of ASCII digits only. strconv.Atoi would also
// accept a leading sign, which lets strings like "2025-+1-15" through the
// fixed-width checks.
func parseDigits(s string) (int, error) {
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("non-digit character %q", c)
		}
	}
	return strconv.Atoi(s)
}

// valid reports whether the components name a real calendar date.
// time.Date normalizes out-of-range components (Feb 30 -> Mar 2), so a
// round-trip through it detects them.
func (d Day) valid() bool {
	if d.Year < 1 || d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return false
	}
	t := d.Time()
	return t.Year() == d.Year && int(t.Month()) == d.Month && t.Day() == d.Day
}

// String formats the day as zero-padded "YYYY-MM-DD".
func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Time returns the day at midnight UTC.
func (d Day) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// Today decomposes the given instant into a Day in its location.
func Today(now time.Time) Day {
	return Day{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
}

// AddMonths shifts the day by n calendar months, clamping the day-of-month
// to the target month's length (Jan 31 + 1 month = Feb 28/29). This is the
// behavior the monthly calendar strip needs when paging.
func (d Day) AddMonths(n int) Day {
	y := d.Year
	m := d.Month + n
	for m > 12 {
		m -= 12
		y++
	}
	for m < 1 {
		m += 12
		y--
	}
	dom := d.Day
	if last := daysIn(y, m); dom > last {
		dom = last
	}
	return Day{Year: y, Month: m, Day: dom}
}

// daysIn returns the number of days in the given month.
func daysIn(year, month int) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Clock is a wall-clock time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses a strict "HH:mm" string.
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return Clock{}, fmt.Errorf("parsing clock %q: want HH:mm", s)
	}
	h, err := parseDigits(parts[0])
	if err != nil {
		return Clock{}, fmt.Errorf("parsing clock %q: hour: %w", s, err)
	}
	m, err := parseDigits(parts[1])
	if err != nil {
		return Clock{}, fmt.Errorf("parsing clock %q: minute: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return Clock{}, fmt.Errorf("parsing clock %q: out of range", s)
	}
	return Clock{Hour: h, Minute: m}, nil
}

// String formats the clock as zero-padded "HH:mm".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
