package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format used by clients and the appointment store
const DateLayout = "01/02/2006" // MM/DD/YYYY

var (
	// ErrInvalidDate is returned when a date string is not MM/DD/YYYY
	ErrInvalidDate = errors.New("invalid date, expected MM/DD/YYYY")

	// ErrInvalidWeekday is returned for an unknown day-of-week name
	ErrInvalidWeekday = errors.New("invalid day of week")
)

// ParseDate parses a MM/DD/YYYY date at midnight in loc
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	date, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return date, nil
}

// FormatDate formats t as MM/DD/YYYY
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// IsSameDay reports whether a and b fall on the same calendar day in a's location
func IsSameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// ParseWeekday parses an English day name ("Monday", "monday", "Mon")
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || (len(name) == 3 && strings.HasPrefix(full, name)) {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
}
