package domain

import (
	"fmt"
	"time"

	"github.com/tradewire/marketcodec/internal/codecerr"
)

// Date represents a calendar date with no time-of-day. It is deliberately not
// a time.Time: a date is never promoted to midnight of a timestamp.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate creates a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate parses an ISO-8601 calendar date (YYYY-MM-DD).
// Returns an error rooted in ErrMalformedDate on any other input.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, codecerr.WrapMalformedDate(s)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// String renders the date in ISO-8601 form.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Timestamp layouts accepted on input. Output always uses time.RFC3339Nano,
// which carries the UTC offset and preserves sub-second precision.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999", // offset-less ISO, tolerated on input
}

// ParseTimestamp parses an ISO-8601 timestamp. An offset-less timestamp is
// accepted and interpreted as UTC; output formatting always emits the offset.
// Returns an error rooted in ErrMalformedTimestamp on any other input.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, codecerr.WrapMalformedTimestamp(s)
}

// FormatTimestamp renders a timestamp in the wire form.
func FormatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}
