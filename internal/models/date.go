package models

import (
	"errors"
	"time"
)

// DateLayout renders calendar dates as day-of-week, month, day, year with no
// time component, e.g. "Mon Jan 15 2024".
const DateLayout = "Mon Jan 02 2006"

// dateInputLayouts are the accepted input formats for exercise dates and log
// range bounds, tried in order.
var dateInputLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	DateLayout,
	"Jan 02 2006",
	"January 2 2006",
	"01/02/2006",
}

// ErrInvalidDate is returned when a date string matches none of the accepted
// input formats.
var ErrInvalidDate = errors.New("invalid date")

// ParseDate parses s into a calendar date normalized to UTC midnight.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateInputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NormalizeDate(t), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// NormalizeDate truncates t to its calendar date in UTC.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a normalized date using DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
