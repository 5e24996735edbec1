package domain

import "time"

// DayFormat is the only string form of a calendar day used inside the
// engine. Adapters convert whatever the outside world uses (locale
// strings, timestamps) to midnight-UTC time.Time values at the boundary.
const DayFormat = "2006-01-02"

// Midnight normalizes t to midnight UTC of its calendar day.
func Midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayKey returns the canonical map key for the calendar day of t.
func DayKey(t time.Time) string {
	return t.UTC().Format(DayFormat)
}

// ParseDay parses a YYYY-MM-DD string into a midnight-UTC day.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayFormat, s)
}

// IsNextDay reports whether next is exactly the calendar day after prev.
func IsNextDay(prev, next time.Time) bool {
	return Midnight(prev).AddDate(0, 0, 1).Equal(Midnight(next))
}
