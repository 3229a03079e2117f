package domain

import (
	"fmt"
	"time"
)

// TimeLayout is the naive wall-clock format used everywhere: second
// precision, local time, no zone. DST transitions are unsupported.
const TimeLayout = "2006-01-02 15:04:05"

// DayLayout is the calendar-date format.
const DayLayout = "2006-01-02"

// DayStart returns 00:00:00 on t's calendar day.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayEnd returns 23:59:59 on t's calendar day.
func DayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// NextDay returns 00:00:00 on the day after t.
func NextDay(t time.Time) time.Time {
	return DayStart(t).AddDate(0, 0, 1)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// WeekStart returns 00:00:00 on the Monday of t's week.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return DayStart(t).AddDate(0, 0, -offset)
}

// TruncateSecond drops sub-second precision.
func TruncateSecond(t time.Time) time.Time {
	return t.Truncate(time.Second)
}

// FormatClock renders seconds as zero-padded HH:MM:SS with unbounded
// hours.
func FormatClock(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := seconds % 3600 / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatHours renders seconds as decimal hours, e.g. "6.5h".
func FormatHours(seconds int64) string {
	return fmt.Sprintf("%.1fh", float64(seconds)/3600)
}
