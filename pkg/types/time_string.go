package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeString is returned when a value is not a valid "HH:MM" time of day
var ErrInvalidTimeString = errors.New("invalid time string, expected HH:MM")

// TimeString is a time of day in "HH:MM" format (24h clock).
// Used for opening hours and staff shifts, which are stored without a date.
type TimeString string

// NewTimeStringFromString parses "HH:MM" (or "HH:MM:SS" as returned by Postgres TIME columns)
// and returns the normalized "HH:MM" value. Seconds are dropped.
func NewTimeStringFromString(s string) (TimeString, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 || minutes < 0 || minutes > 59 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", hours, minutes)), nil
}

// NewTimeString returns the time of day of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// Clock returns hours and minutes. The value must be normalized (see NewTimeStringFromString).
func (t TimeString) Clock() (hours, minutes int, err error) {
	normalized, err := NewTimeStringFromString(string(t))
	if err != nil {
		return 0, 0, err
	}
	hours, _ = strconv.Atoi(string(normalized[:2]))
	minutes, _ = strconv.Atoi(string(normalized[3:]))
	return hours, minutes, nil
}

// On combines the calendar day of date with this time of day, in date's location
func (t TimeString) On(date time.Time) (time.Time, error) {
	hours, minutes, err := t.Clock()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hours, minutes, 0, 0, date.Location()), nil
}

func (t TimeString) String() string {
	return string(t)
}

// Scan implements sql.Scanner
func (t *TimeString) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case nil:
		*t = ""
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeString, src)
	}

	parsed, err := NewTimeStringFromString(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}
