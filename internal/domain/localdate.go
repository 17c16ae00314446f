package domain

import "time"

// ─── Local Calendar Days ────────────────────────────────────────────────────
// Every day-boundary computation in the engine goes through these helpers.
// Deriving "today" by slicing a UTC ISO timestamp is off by one day near
// midnight in timezones ahead of UTC, so the wall-clock location of the
// input time is authoritative here.

// DayFormat is the canonical local calendar day layout.
const DayFormat = "2006-01-02"

// LocalDay returns the calendar day string (YYYY-MM-DD) of t in t's own
// location. Callers pass time.Now() for the device-local day.
func LocalDay(t time.Time) string {
	return t.Format(DayFormat)
}

// ParseDay parses a YYYY-MM-DD day string. Returns the zero time on
// malformed input.
func ParseDay(day string) time.Time {
	t, err := time.Parse(DayFormat, day)
	if err != nil {
		return time.Time{}
	}
	return t
}

// DiffDays returns the signed number of calendar days from-day to to-day.
// Either side malformed → 0.
func DiffDays(from, to string) int {
	a, b := ParseDay(from), ParseDay(to)
	if a.IsZero() || b.IsZero() {
		return 0
	}
	return int(b.Sub(a).Hours() / 24)
}

// WeekdayOf returns the weekday of a local day string.
func WeekdayOf(day string) time.Weekday {
	return ParseDay(day).Weekday()
}

// IsWeekend reports whether the day falls on Saturday or Sunday.
func IsWeekend(day string) bool {
	wd := WeekdayOf(day)
	return wd == time.Saturday || wd == time.Sunday
}
