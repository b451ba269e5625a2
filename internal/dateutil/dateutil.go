// Package dateutil provides JST-anchored date helpers.
//
// The daily post is scheduled against Japanese working hours, so "today"
// always means today in Asia/Tokyo regardless of where the binary runs.
package dateutil

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDay indicates a date string that is not YYYY-MM-DD.
var ErrInvalidDay = errors.New("invalid date, expected YYYY-MM-DD")

// DayFormat is the wire format for dates in config and env lists.
const DayFormat = "2006-01-02"

// JST is the Asia/Tokyo fixed offset. Loaded without tzdata dependency so
// the binary works in scratch containers and on Lambda.
var JST = time.FixedZone("JST", 9*60*60)

// Today returns the current date in JST, truncated to midnight.
func Today(now func() time.Time) time.Time {
	t := now().In(JST)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, JST)
}

// ParseDay parses a YYYY-MM-DD string into a JST midnight time.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DayFormat, s, JST)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDay, s)
	}
	return t, nil
}

// FormatDay renders a time as YYYY-MM-DD in JST.
func FormatDay(t time.Time) string {
	return t.In(JST).Format(DayFormat)
}

// SameDay reports whether two times fall on the same JST calendar day.
func SameDay(a, b time.Time) bool {
	return FormatDay(a) == FormatDay(b)
}

// IsWeekend reports whether the time falls on Saturday or Sunday in JST.
func IsWeekend(t time.Time) bool {
	switch t.In(JST).Weekday() {
	case time.Saturday, time.Sunday:
		return true
	default:
		return false
	}
}
