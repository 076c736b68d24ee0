package utils

import "time"

// TimeNow is the clock used for run timestamps and job bookkeeping. Stored
// times are always UTC.
var TimeNow = func() time.Time {
	return time.Now().UTC()
}

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD trading date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, s, time.UTC)
}
