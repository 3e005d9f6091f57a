package utils

import "time"

const DateLayout = "2006-01-02"

// ParseDate parses a strict YYYY-MM-DD value.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// DateKey normalizes any timestamp to its YYYY-MM-DD form so differently
// formatted representations of the same day land in the same bucket.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// DayStart truncates t to local midnight.
func DayStart(t time.Time) time.Time {
	tt := t.In(time.Local)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.Local)
}

// DaysAgo returns local midnight n days before now.
func DaysAgo(n int) time.Time {
	return DayStart(time.Now().AddDate(0, 0, -n))
}

// IsFuture reports whether t falls on a calendar day after today.
func IsFuture(t time.Time) bool {
	return DayStart(t).After(DayStart(time.Now()))
}
